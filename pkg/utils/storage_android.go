//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在打开 gdata 之前创建 Android 的存档目录
// gdata 在 Android 上写入 /data/data/{包名}/saves，但不会自己创建该目录。
// 排行榜和设置都存放在这里，目录不可写时返回错误，调用方降级为内存存储。
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}
	saves := filepath.Join(dir, "saves")
	if err := os.MkdirAll(saves, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", saves, err)
	}

	marker := filepath.Join(saves, ".write_test")
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", saves, err)
	}
	return os.Remove(marker)
}

// GetStoragePath 应用私有目录 /data/data/{包名}
// 包名取自 /proc/self/cmdline
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	pkg := strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", ""))
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
