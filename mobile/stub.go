//go:build !mobile

// Package mobile 的普通构建占位，真正的绑定入口在 mobile.go（-tags mobile）
package mobile

// Dummy 保证包在桌面构建中也能被引用
func Dummy() {}
