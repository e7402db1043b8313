package components

// PositionComponent 存储实体在世界坐标中的位置（精灵中心点）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的线速度（像素/秒）
// MovementSystem 每帧按速度积分位置
type VelocityComponent struct {
	VX float64
	VY float64
}
