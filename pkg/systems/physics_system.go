package systems

import (
	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/solarlune/resolv"
)

// ContactBody 接触事件中的一方
type ContactBody struct {
	Entity          ecs.EntityID
	CategoryBitMask uint32
}

// Contact 两个碰撞体开始接触的事件
// BodyA/BodyB 的顺序不作保证，处理方需自行按类别排序
type Contact struct {
	BodyA ContactBody
	BodyB ContactBody
}

// ContactListener 接收接触开始事件
type ContactListener interface {
	DidBeginContact(contact Contact)
}

// ContactListenerFunc 允许普通函数作为 ContactListener
type ContactListenerFunc func(contact Contact)

// DidBeginContact 调用 f(contact)
func (f ContactListenerFunc) DidBeginContact(contact Contact) {
	f(contact)
}

type contactKey struct {
	a, b ecs.EntityID
}

func newContactKey(a, b ecs.EntityID) contactKey {
	if a > b {
		a, b = b, a
	}
	return contactKey{a: a, b: b}
}

// PhysicsSystem 处理碰撞体之间的接触检测
//
// 只有当一方的 CategoryBitMask 与另一方的 ContactTestBitMask 相交时才检测该对实体。
// 同一对实体只在开始重叠的那一帧上报一次，保持重叠期间不重复上报。
// 几何相交测试由 resolv 完成（矩形由 NewRectangleTopLeft 构建为凸多边形，圆形使用 NewCircle）。
type PhysicsSystem struct {
	em       *ecs.EntityManager
	listener ContactListener
	active   map[contactKey]struct{}
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - listener: 接触事件接收者，可为 nil
func NewPhysicsSystem(em *ecs.EntityManager, listener ContactListener) *PhysicsSystem {
	return &PhysicsSystem{
		em:       em,
		listener: listener,
		active:   make(map[contactKey]struct{}),
	}
}

// SetContactListener 设置接触事件接收者
func (ps *PhysicsSystem) SetContactListener(listener ContactListener) {
	ps.listener = listener
}

type physicsEntry struct {
	id    ecs.EntityID
	body  *components.PhysicsBodyComponent
	shape resolv.IShape
}

// shapeFor 根据碰撞体定义构建 resolv 形状（中心对齐实体位置）
func shapeFor(pos *components.PositionComponent, body *components.PhysicsBodyComponent) resolv.IShape {
	if body.Shape == components.ShapeCircle {
		return resolv.NewCircle(pos.X, pos.Y, body.Radius)
	}
	return resolv.NewRectangleTopLeft(pos.X-body.Width/2, pos.Y-body.Height/2, body.Width, body.Height)
}

// shouldTest 判断两个碰撞体是否需要检测接触
func shouldTest(a, b *components.PhysicsBodyComponent) bool {
	return a.CategoryBitMask&b.ContactTestBitMask != 0 || b.CategoryBitMask&a.ContactTestBitMask != 0
}

// Update 检测所有碰撞体对，上报新开始的接触
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.PhysicsBodyComponent](ps.em)

	entries := make([]physicsEntry, 0, len(ids))
	for _, id := range ids {
		if ps.em.IsMarkedForDestruction(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](ps.em, id)
		entries = append(entries, physicsEntry{id: id, body: body, shape: shapeFor(pos, body)})
	}

	current := make(map[contactKey]struct{})
	var begun []Contact

	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a, b := entries[i], entries[j]
			if !shouldTest(a.body, b.body) {
				continue
			}
			if !a.shape.IsIntersecting(b.shape) {
				continue
			}

			key := newContactKey(a.id, b.id)
			current[key] = struct{}{}
			if _, already := ps.active[key]; already {
				continue
			}
			begun = append(begun, Contact{
				BodyA: ContactBody{Entity: a.id, CategoryBitMask: a.body.CategoryBitMask},
				BodyB: ContactBody{Entity: b.id, CategoryBitMask: b.body.CategoryBitMask},
			})
		}
	}
	ps.active = current

	if ps.listener == nil {
		return
	}
	for _, contact := range begun {
		// 前一个接触的处理可能已经移除了其中一方
		if ps.em.IsMarkedForDestruction(contact.BodyA.Entity) || ps.em.IsMarkedForDestruction(contact.BodyB.Entity) {
			continue
		}
		ps.listener.DidBeginContact(contact)
	}
}
