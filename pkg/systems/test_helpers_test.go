package systems

import (
	"fmt"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/decker502/monsterhunt/pkg/entities"
	"github.com/decker502/monsterhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockResourceLoader 按资源ID返回固定尺寸的空白图像
type mockResourceLoader struct{}

func (mockResourceLoader) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	switch resourceID {
	case entities.ImagePlayer:
		return ebiten.NewImage(30, 60), nil
	case entities.ImageMonster:
		return ebiten.NewImage(40, 30), nil
	case entities.ImageProjectile:
		return ebiten.NewImage(20, 20), nil
	}
	return nil, fmt.Errorf("resource ID not found: %s", resourceID)
}

type failingResourceLoader struct{}

func (failingResourceLoader) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	return nil, fmt.Errorf("resource ID not found: %s", resourceID)
}

// fakePointerSource 可编程的输入源
type fakePointerSource struct {
	released [][]utils.Vector2 // 每帧返回的松开点
	frame    int
	pressed  map[ebiten.Key]bool
}

func (f *fakePointerSource) JustReleasedPoints() []utils.Vector2 {
	if f.frame >= len(f.released) {
		f.frame++
		return nil
	}
	points := f.released[f.frame]
	f.frame++
	return points
}

func (f *fakePointerSource) IsKeyJustPressed(key ebiten.Key) bool {
	return f.pressed[key]
}

// addBody 创建一个仅带位置和碰撞体的实体
func addBody(em *ecs.EntityManager, x, y float64, body *components.PhysicsBodyComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, body)
	return id
}

func monsterBody() *components.PhysicsBodyComponent {
	return &components.PhysicsBodyComponent{
		Shape:              components.ShapeRectangle,
		Width:              40,
		Height:             30,
		CategoryBitMask:    components.CategoryMonster,
		ContactTestBitMask: components.CategoryProjectile,
	}
}

func projectileBody() *components.PhysicsBodyComponent {
	return &components.PhysicsBodyComponent{
		Shape:              components.ShapeCircle,
		Radius:             10,
		CategoryBitMask:    components.CategoryProjectile,
		ContactTestBitMask: components.CategoryMonster,
	}
}

// contactRecorder 记录收到的接触事件
type contactRecorder struct {
	contacts []Contact
	onBegin  func(c Contact)
}

func (r *contactRecorder) DidBeginContact(c Contact) {
	r.contacts = append(r.contacts, c)
	if r.onBegin != nil {
		r.onBegin(c)
	}
}
