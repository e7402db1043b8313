package components

// MoveToComponent 匀速直线移动动作
// 实体在 Duration 秒内从起点移动到 (TargetX, TargetY)，到达后可自动移除
type MoveToComponent struct {
	TargetX  float64
	TargetY  float64
	Duration float64 // 总时长（秒）
	Elapsed  float64 // 已经过时间（秒）

	// RemoveOnArrival 到达终点后是否销毁实体
	RemoveOnArrival bool
	// Arrived 是否已到达终点
	Arrived bool
}
