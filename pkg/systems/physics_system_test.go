package systems

import (
	"testing"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
)

// TestPhysicsSystem_ReportsBeginOnce 测试重叠期间只上报一次
func TestPhysicsSystem_ReportsBeginOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	monster := addBody(em, 100, 100, monsterBody())
	projectile := addBody(em, 110, 100, projectileBody())

	rec := &contactRecorder{}
	ps := NewPhysicsSystem(em, rec)

	ps.Update(1.0 / 60)
	ps.Update(1.0 / 60)

	if len(rec.contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(rec.contacts))
	}
	c := rec.contacts[0]
	ids := map[ecs.EntityID]bool{c.BodyA.Entity: true, c.BodyB.Entity: true}
	if !ids[monster] || !ids[projectile] {
		t.Errorf("Contact bodies = %d,%d, want %d,%d", c.BodyA.Entity, c.BodyB.Entity, monster, projectile)
	}

	// 分开后再次重叠，重新上报
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, projectile)
	pos.X = 500
	ps.Update(1.0 / 60)
	pos.X = 100
	ps.Update(1.0 / 60)

	if len(rec.contacts) != 2 {
		t.Errorf("Expected contact to begin again, got %d", len(rec.contacts))
	}
}

// TestPhysicsSystem_Geometry 测试矩形与圆的相交判定
func TestPhysicsSystem_Geometry(t *testing.T) {
	tests := []struct {
		name        string
		px, py      float64
		wantContact bool
	}{
		{"center", 100, 100, true},
		{"touching right edge", 125, 100, true},
		{"far right", 200, 100, false},
		{"far below", 100, 200, false},
		{"outside corner", 132, 127, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			// 矩形 40x30 中心 (100,100) => x∈[80,120], y∈[85,115]
			addBody(em, 100, 100, monsterBody())
			addBody(em, tt.px, tt.py, projectileBody())

			rec := &contactRecorder{}
			NewPhysicsSystem(em, rec).Update(1.0 / 60)

			if got := len(rec.contacts) == 1; got != tt.wantContact {
				t.Errorf("contact = %v, want %v", got, tt.wantContact)
			}
		})
	}
}

// TestPhysicsSystem_RespectsContactMask 测试同类别实体不检测接触
func TestPhysicsSystem_RespectsContactMask(t *testing.T) {
	em := ecs.NewEntityManager()
	addBody(em, 100, 100, monsterBody())
	addBody(em, 100, 100, monsterBody())
	addBody(em, 300, 300, projectileBody())
	addBody(em, 300, 300, projectileBody())

	rec := &contactRecorder{}
	NewPhysicsSystem(em, rec).Update(1.0 / 60)

	if len(rec.contacts) != 0 {
		t.Errorf("Expected no contacts between same categories, got %d", len(rec.contacts))
	}
}

// TestPhysicsSystem_SkipsRemovedBodies 测试处理过程中被移除的实体不再上报
func TestPhysicsSystem_SkipsRemovedBodies(t *testing.T) {
	em := ecs.NewEntityManager()
	addBody(em, 100, 100, monsterBody())
	addBody(em, 100, 100, projectileBody())
	addBody(em, 105, 100, projectileBody())

	rec := &contactRecorder{}
	rec.onBegin = func(c Contact) {
		em.DestroyEntity(c.BodyA.Entity)
		em.DestroyEntity(c.BodyB.Entity)
	}
	NewPhysicsSystem(em, rec).Update(1.0 / 60)

	if len(rec.contacts) != 1 {
		t.Errorf("Monster should be consumed by first contact, got %d contacts", len(rec.contacts))
	}
}

// TestPhysicsSystem_NilListener 测试未设置接收者时不崩溃
func TestPhysicsSystem_NilListener(t *testing.T) {
	em := ecs.NewEntityManager()
	addBody(em, 100, 100, monsterBody())
	addBody(em, 100, 100, projectileBody())

	ps := NewPhysicsSystem(em, nil)
	ps.Update(1.0 / 60)

	count := 0
	ps.SetContactListener(ContactListenerFunc(func(Contact) { count++ }))
	ps.Update(1.0 / 60)
	if count != 0 {
		t.Errorf("Ongoing contact should not be reported again, got %d", count)
	}
}

// TestShapeFor_RectangleAgainstCircle 测试矩形以中心对齐构建，并与圆正确相交
func TestShapeFor_RectangleAgainstCircle(t *testing.T) {
	// 40x40 矩形中心 (100,100) => 左上角 (80,80)
	rect := shapeFor(&components.PositionComponent{X: 100, Y: 100}, &components.PhysicsBodyComponent{
		Shape: components.ShapeRectangle, Width: 40, Height: 40,
	})

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"overlapping right edge", 118, true},
		{"far right", 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circle := shapeFor(&components.PositionComponent{X: tt.x, Y: 100}, &components.PhysicsBodyComponent{
				Shape: components.ShapeCircle, Radius: 5,
			})
			if got := rect.IsIntersecting(circle); got != tt.want {
				t.Errorf("IsIntersecting = %v, want %v", got, tt.want)
			}
		})
	}
}
