package systems

import (
	"testing"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
)

func addMover(em *ecs.EntityManager, x, y, vx, vy, tx, ty, duration float64, remove bool) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.MoveToComponent{
		TargetX:         tx,
		TargetY:         ty,
		Duration:        duration,
		RemoveOnArrival: remove,
	})
	return id
}

// TestMovementSystem_IntegratesVelocity 测试速度积分
func TestMovementSystem_IntegratesVelocity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 10, Y: 20})
	em.AddComponent(id, &components.VelocityComponent{VX: 100, VY: -50})

	sys := NewMovementSystem(em)
	sys.Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 60 || pos.Y != -5 {
		t.Errorf("Expected (60, -5), got (%.2f, %.2f)", pos.X, pos.Y)
	}
}

// TestMovementSystem_ArrivesAndRemoves 测试到达终点后精确落点并移除
func TestMovementSystem_ArrivesAndRemoves(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addMover(em, 100, 400, 500, 0, 1100, 400, 2, true)

	var arrived []ecs.EntityID
	sys := NewMovementSystem(em)
	sys.SetArrivalHandler(func(id ecs.EntityID) {
		arrived = append(arrived, id)
	})

	for i := 0; i < 3; i++ {
		sys.Update(0.5)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 850 {
		t.Errorf("Expected X=850 after 1.5s, got %.2f", pos.X)
	}
	if em.IsMarkedForDestruction(id) {
		t.Fatal("Entity should not be removed before arrival")
	}

	sys.Update(0.5)
	if pos.X != 1100 || pos.Y != 400 {
		t.Errorf("Expected target (1100, 400), got (%.2f, %.2f)", pos.X, pos.Y)
	}
	if !em.IsMarkedForDestruction(id) {
		t.Error("Entity should be marked for removal on arrival")
	}
	if len(arrived) != 1 || arrived[0] != id {
		t.Errorf("Expected one arrival for %d, got %v", id, arrived)
	}

	em.RemoveMarkedEntities()
	sys.Update(0.5)
	if len(arrived) != 1 {
		t.Errorf("Arrival should fire once, got %d", len(arrived))
	}
}

// TestMovementSystem_SnapsOnOvershoot 测试大步长越过终点时被夹到终点
func TestMovementSystem_SnapsOnOvershoot(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addMover(em, 0, 0, 10, 10, 20, 20, 2, false)

	sys := NewMovementSystem(em)
	sys.Update(5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 20 || pos.Y != 20 {
		t.Errorf("Expected (20, 20), got (%.2f, %.2f)", pos.X, pos.Y)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 0 || vel.VY != 0 {
		t.Errorf("Velocity should be zero after arrival, got (%.2f, %.2f)", vel.VX, vel.VY)
	}
	if em.IsMarkedForDestruction(id) {
		t.Error("Entity without RemoveOnArrival should stay")
	}

	move, _ := ecs.GetComponent[*components.MoveToComponent](em, id)
	if !move.Arrived {
		t.Error("Arrived flag should be set")
	}
}

// TestMovementSystem_SkipsMarkedEntities 测试已标记删除的实体不再移动
func TestMovementSystem_SkipsMarkedEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addMover(em, 0, 0, 100, 0, 1000, 0, 10, true)
	em.DestroyEntity(id)

	arrivals := 0
	sys := NewMovementSystem(em)
	sys.SetArrivalHandler(func(ecs.EntityID) { arrivals++ })
	sys.Update(20)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 0 {
		t.Errorf("Marked entity moved to %.2f", pos.X)
	}
	if arrivals != 0 {
		t.Errorf("Marked entity should not arrive, got %d", arrivals)
	}
}
