package utils

import "math"

// Vector2 二维向量（世界坐标，单位：像素）
type Vector2 struct {
	X, Y float64
}

// Add 向量加法
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 标量乘法
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Length 向量长度
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized 返回单位向量
// 零向量没有方向，第二个返回值为 false
func (v Vector2) Normalized() (Vector2, bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vector2{}, false
	}
	return Vector2{X: v.X / l, Y: v.Y / l}, true
}

// Lerp 在 v 与 target 之间线性插值，t ∈ [0, 1]
func (v Vector2) Lerp(target Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + (target.X-v.X)*t,
		Y: v.Y + (target.Y-v.Y)*t,
	}
}
