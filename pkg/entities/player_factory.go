package entities

import (
	"fmt"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
)

// NewPlayer 创建玩家实体
// 玩家是静止的精灵，仅作为子弹的发射锚点
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器
//   - x, y: 玩家中心的世界坐标
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 图像加载失败时返回错误
func NewPlayer(em *ecs.EntityManager, rl ResourceLoader, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rl == nil {
		return 0, fmt.Errorf("resource loader cannot be nil")
	}

	img, w, h, err := loadSprite(rl, ImagePlayer)
	if err != nil {
		return 0, fmt.Errorf("failed to load player image: %w", err)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PlayerComponent{})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.SpriteComponent{Image: img, Width: w, Height: h})
	return id, nil
}
