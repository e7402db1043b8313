package systems

import (
	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
)

// MovementSystem 按速度积分实体位置，并推进 MoveTo 动作
//
// MoveTo 到期时实体被精确放到终点，速度清零；
// 设置了 RemoveOnArrival 的实体随后被标记删除。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	onArrival     func(id ecs.EntityID)
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// SetArrivalHandler 设置到达终点回调
func (s *MovementSystem) SetArrivalHandler(fn func(id ecs.EntityID)) {
	s.onArrival = fn
}

// Update 更新所有移动中的实体
func (s *MovementSystem) Update(deltaTime float64) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](em) {
		if em.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.MoveToComponent](em) {
		if em.IsMarkedForDestruction(id) {
			continue
		}
		move, _ := ecs.GetComponent[*components.MoveToComponent](em, id)
		if move.Arrived {
			continue
		}

		move.Elapsed += deltaTime
		if move.Elapsed < move.Duration {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		pos.X, pos.Y = move.TargetX, move.TargetY
		move.Arrived = true
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
			vel.VX, vel.VY = 0, 0
		}

		if move.RemoveOnArrival {
			em.DestroyEntity(id)
		}
		if s.onArrival != nil {
			s.onArrival(id)
		}
	}
}
