package systems

import (
	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有拥有位置和精灵组件的实体
// 精灵以位置为中心绘制，绘制顺序为创建顺序（后创建的在上层）
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制游戏世界实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X-sprite.Width/2, pos.Y-sprite.Height/2)
		screen.DrawImage(sprite.Image, op)
	}
}
