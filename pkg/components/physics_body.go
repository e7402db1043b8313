package components

// 物理类别位掩码
// 用于区分实体类别，决定哪些实体之间需要进行接触检测
const (
	CategoryNone       uint32 = 0
	CategoryAll        uint32 = ^uint32(0)
	CategoryMonster    uint32 = 0b1  // 1
	CategoryProjectile uint32 = 0b10 // 2
)

// BodyShape 碰撞体形状
type BodyShape int

const (
	// ShapeRectangle 轴对齐矩形，尺寸为 Width x Height
	ShapeRectangle BodyShape = iota
	// ShapeCircle 圆形，半径为 Radius
	ShapeCircle
)

// PhysicsBodyComponent 定义实体的碰撞体
// 碰撞体中心与 PositionComponent 对齐
type PhysicsBodyComponent struct {
	Shape  BodyShape
	Width  float64 // 矩形宽度（像素）
	Height float64 // 矩形高度（像素）
	Radius float64 // 圆形半径（像素）

	// CategoryBitMask 本实体所属类别
	CategoryBitMask uint32
	// ContactTestBitMask 需要上报接触事件的对方类别
	ContactTestBitMask uint32
	// CollisionBitMask 需要产生物理碰撞响应的对方类别（本游戏中全部为 CategoryNone）
	CollisionBitMask uint32
}
