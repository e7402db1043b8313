package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以 PositionComponent 为中心绘制
type SpriteComponent struct {
	Image  *ebiten.Image
	Width  float64 // 精灵宽度（像素），由图像尺寸决定
	Height float64 // 精灵高度（像素）
}
