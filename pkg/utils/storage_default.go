//go:build !android

package utils

// EnsureStorageDir 非 Android 平台由 gdata 自动创建目录
func EnsureStorageDir(object string) error {
	return nil
}
