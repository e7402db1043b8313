//go:build !mobile

// Package mobile 移动端入口，只在 -tags mobile 时编译实际内容
package mobile

// Dummy 让普通构建也能引用本包
func Dummy() {}
