//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端按移动端方式运行（本地调试触摸流程）
const MobileEmulateEnv = "MONSTERHUNT_MOBILE_EMULATE"

// IsMobile 是否运行在移动设备上
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
