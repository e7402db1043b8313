package main

import (
	"math"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/decker502/monsterhunt/pkg/utils"
)

// solveIntercept 计算匀速子弹拦截匀速目标的瞄准点
//
// 求解 |d + v·t| = speed·t 的最小正根，d 为目标相对射手的位移
//
// 参数:
//   - shooter: 射手位置
//   - target: 目标当前位置
//   - velocity: 目标速度（像素/秒）
//   - speed: 子弹速度（像素/秒）
//
// 返回:
//   - utils.Vector2: 瞄准点
//   - float64: 命中所需时间（秒）
//   - bool: 是否有解
func solveIntercept(shooter, target, velocity utils.Vector2, speed float64) (utils.Vector2, float64, bool) {
	if speed <= 0 {
		return utils.Vector2{}, 0, false
	}

	d := target.Sub(shooter)
	a := velocity.X*velocity.X + velocity.Y*velocity.Y - speed*speed
	b := 2 * (d.X*velocity.X + d.Y*velocity.Y)
	c := d.X*d.X + d.Y*d.Y

	var t float64
	if math.Abs(a) < 1e-9 {
		// 目标与子弹同速，退化为一次方程
		if b >= 0 {
			return utils.Vector2{}, 0, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return utils.Vector2{}, 0, false
		}
		sq := math.Sqrt(disc)
		t1 := (-b - sq) / (2 * a)
		t2 := (-b + sq) / (2 * a)
		t = math.Inf(1)
		for _, r := range []float64{t1, t2} {
			if r > 0 && r < t {
				t = r
			}
		}
		if math.IsInf(t, 1) {
			return utils.Vector2{}, 0, false
		}
	}

	return target.Add(velocity.Scale(t)), t, true
}

// aimBot 自动瞄准怪物并发射
// 每只怪物只瞄准一次，两次发射之间有冷却
type aimBot struct {
	speed    float64
	maxRange float64
	cooldown float64

	untilNextShot float64
	targeted      map[ecs.EntityID]bool
}

func newAimBot(speed, maxRange, cooldown float64) *aimBot {
	return &aimBot{
		speed:    speed,
		maxRange: maxRange,
		cooldown: cooldown,
		targeted: make(map[ecs.EntityID]bool),
	}
}

// reset 新一局开始时清空已瞄准记录
func (b *aimBot) reset() {
	b.untilNextShot = 0
	b.targeted = make(map[ecs.EntityID]bool)
}

// pickTarget 选出下一个可拦截的怪物
//
// 返回:
//   - utils.Vector2: 瞄准点
//   - ecs.EntityID: 目标怪物
//   - bool: 本帧是否发射
func (b *aimBot) pickTarget(em *ecs.EntityManager, shooter utils.Vector2, deltaTime float64) (utils.Vector2, ecs.EntityID, bool) {
	if b.untilNextShot > 0 {
		b.untilNextShot -= deltaTime
		return utils.Vector2{}, 0, false
	}

	best := math.Inf(1)
	var aim utils.Vector2
	var chosen ecs.EntityID
	for _, id := range ecs.GetEntitiesWith3[*components.MonsterComponent, *components.PositionComponent, *components.VelocityComponent](em) {
		if b.targeted[id] || em.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		point, t, ok := solveIntercept(shooter, utils.Vector2{X: pos.X, Y: pos.Y}, utils.Vector2{X: vel.VX, Y: vel.VY}, b.speed)
		if !ok || point.X < shooter.X || b.speed*t > b.maxRange {
			continue
		}
		if move, ok := ecs.GetComponent[*components.MoveToComponent](em, id); ok {
			if t > move.Duration-move.Elapsed {
				continue
			}
		}
		if t < best {
			best = t
			aim = point
			chosen = id
		}
	}

	if math.IsInf(best, 1) {
		return utils.Vector2{}, 0, false
	}
	b.targeted[chosen] = true
	b.untilNextShot = b.cooldown
	return aim, chosen, true
}
