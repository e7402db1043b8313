package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionKind 过场类型
type TransitionKind int

const (
	// TransitionNone 立即切换
	TransitionNone TransitionKind = iota
	// TransitionFlipHorizontal 水平翻转：旧场景绕竖直中轴翻走，新场景翻入
	TransitionFlipHorizontal
)

// Transition 场景过场描述
type Transition struct {
	Kind     TransitionKind
	Duration float64 // 秒
}

// NoTransition 立即切换
func NoTransition() Transition {
	return Transition{Kind: TransitionNone}
}

// FlipHorizontal 创建水平翻转过场
func FlipHorizontal(duration float64) Transition {
	return Transition{Kind: TransitionFlipHorizontal, Duration: duration}
}

// IsInstant 是否无需过场动画
func (t Transition) IsInstant() bool {
	return t.Kind == TransitionNone || t.Duration <= 0
}

// flipScale 返回翻转过场在进度 progress (0~1) 时的水平缩放
// 以及应绘制哪一个场景（前半程为旧场景，后半程为新场景）
func flipScale(progress float64) (scaleX float64, showIncoming bool) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	c := math.Cos(math.Pi * progress)
	return math.Abs(c), progress >= 0.5
}

// drawFlipped 将 src 以水平缩放 scaleX 居中绘制到 dst
func drawFlipped(dst, src *ebiten.Image, scaleX float64) {
	w := float64(src.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, 0)
	op.GeoM.Scale(scaleX, 1)
	op.GeoM.Translate(w/2, 0)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}
