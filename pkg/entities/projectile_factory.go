package entities

import (
	"fmt"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/decker502/monsterhunt/pkg/utils"
)

// ProjectileParams 子弹发射参数
type ProjectileParams struct {
	Distance float64 // 飞行距离（像素），保证飞出屏幕
	Duration float64 // 飞行时长（秒）
}

// LaunchDirection 计算从 origin 指向 touch 的发射方向
//
// 向后方发射（offset.X < 0）会被拒绝；touch 与 origin 重合时没有方向，同样拒绝。
//
// 返回:
//   - utils.Vector2: 单位方向向量
//   - bool: 方向是否有效
func LaunchDirection(origin, touch utils.Vector2) (utils.Vector2, bool) {
	offset := touch.Sub(origin)
	if offset.X < 0 {
		return utils.Vector2{}, false
	}
	return offset.Normalized()
}

// NewProjectile 创建子弹实体
// 子弹从 origin 出发，沿指向 touch 的方向匀速飞行 params.Distance 像素，到达后自动移除
//
// 参数:
//   - em: 实体管理器
//   - rl: 资源加载器
//   - origin: 发射点（玩家位置）
//   - touch: 触摸/点击位置
//   - params: 发射参数
//
// 返回:
//   - ecs.EntityID: 子弹实体ID，方向无效时为 0
//   - bool: 是否创建了子弹（方向无效时为 false，且不返回错误）
//   - error: 图像加载失败时返回错误
func NewProjectile(em *ecs.EntityManager, rl ResourceLoader, origin, touch utils.Vector2, params ProjectileParams) (ecs.EntityID, bool, error) {
	if em == nil {
		return 0, false, fmt.Errorf("entity manager cannot be nil")
	}
	if rl == nil {
		return 0, false, fmt.Errorf("resource loader cannot be nil")
	}

	direction, ok := LaunchDirection(origin, touch)
	if !ok {
		return 0, false, nil
	}

	img, w, h, err := loadSprite(rl, ImageProjectile)
	if err != nil {
		return 0, false, fmt.Errorf("failed to load projectile image: %w", err)
	}

	target := origin.Add(direction.Scale(params.Distance))
	velocity := direction.Scale(params.Distance / params.Duration)

	id := em.CreateEntity()
	em.AddComponent(id, &components.ProjectileComponent{DirectionX: direction.X, DirectionY: direction.Y})
	em.AddComponent(id, &components.PositionComponent{X: origin.X, Y: origin.Y})
	em.AddComponent(id, &components.VelocityComponent{VX: velocity.X, VY: velocity.Y})
	em.AddComponent(id, &components.SpriteComponent{Image: img, Width: w, Height: h})
	em.AddComponent(id, &components.PhysicsBodyComponent{
		Shape:              components.ShapeCircle,
		Radius:             w / 2,
		CategoryBitMask:    components.CategoryProjectile,
		ContactTestBitMask: components.CategoryMonster,
		CollisionBitMask:   components.CategoryNone,
	})
	em.AddComponent(id, &components.MoveToComponent{
		TargetX:         target.X,
		TargetY:         target.Y,
		Duration:        params.Duration,
		RemoveOnArrival: true,
	})

	return id, true, nil
}
