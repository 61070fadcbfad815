//go:build !mobile

package utils

import "os"

// IsMobile 是否按移动端运行
// 桌面端编译时默认 false，设置 GALAGA_MOBILE_EMULATE=1 可在桌面上模拟移动端（关闭 F11 和全屏设置）
func IsMobile() bool {
	return os.Getenv("GALAGA_MOBILE_EMULATE") == "1"
}
