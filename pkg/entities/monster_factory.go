package entities

import (
	"fmt"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/decker502/monsterhunt/pkg/utils"
)

// MonsterSpawnParams 怪物生成参数
type MonsterSpawnParams struct {
	ScreenWidth      float64
	ScreenHeight     float64
	MinCrossDuration float64 // 穿越时长下限（含）
	MaxCrossDuration float64 // 穿越时长上限（不含）
}

// NewMonster 创建怪物实体
//
// 怪物出现在屏幕右边缘外侧（完全不可见），Y 坐标在
// [h/2, ScreenHeight-h/2) 内随机，然后匀速向左移动到左边缘外侧，到达后自动移除。
// 穿越时长在 [MinCrossDuration, MaxCrossDuration) 内均匀采样。
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器
//   - rng: 随机数源
//   - params: 生成参数
//
// 返回:
//   - ecs.EntityID: 怪物实体ID
//   - error: 图像加载失败时返回错误
func NewMonster(em *ecs.EntityManager, rl ResourceLoader, rng utils.RandomSource, params MonsterSpawnParams) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if rl == nil || rng == nil {
		return 0, fmt.Errorf("resource loader and random source cannot be nil")
	}

	img, w, h, err := loadSprite(rl, ImageMonster)
	if err != nil {
		return 0, fmt.Errorf("failed to load monster image: %w", err)
	}

	// 先采样 Y 再采样时长，保持随机序列的消费顺序稳定
	actualY := utils.RandomRange(rng, h/2, params.ScreenHeight-h/2)
	duration := utils.RandomRange(rng, params.MinCrossDuration, params.MaxCrossDuration)

	start := utils.Vector2{X: params.ScreenWidth + w/2, Y: actualY}
	target := utils.Vector2{X: -w / 2, Y: actualY}
	velocity := target.Sub(start).Scale(1 / duration)

	id := em.CreateEntity()
	em.AddComponent(id, &components.MonsterComponent{CrossDuration: duration})
	em.AddComponent(id, &components.PositionComponent{X: start.X, Y: start.Y})
	em.AddComponent(id, &components.VelocityComponent{VX: velocity.X, VY: velocity.Y})
	em.AddComponent(id, &components.SpriteComponent{Image: img, Width: w, Height: h})
	em.AddComponent(id, &components.PhysicsBodyComponent{
		Shape:              components.ShapeRectangle,
		Width:              w,
		Height:             h,
		CategoryBitMask:    components.CategoryMonster,
		ContactTestBitMask: components.CategoryProjectile,
		CollisionBitMask:   components.CategoryNone,
	})
	em.AddComponent(id, &components.MoveToComponent{
		TargetX:         target.X,
		TargetY:         target.Y,
		Duration:        duration,
		RemoveOnArrival: true,
	})

	return id, nil
}
