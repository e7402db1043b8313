package components

// PlayerComponent 标记玩家实体
type PlayerComponent struct{}

// MonsterComponent 标记怪物实体
type MonsterComponent struct {
	CrossDuration float64 // 穿越屏幕所需时间（秒）
}

// ProjectileComponent 标记子弹实体
type ProjectileComponent struct {
	DirectionX float64 // 单位方向向量X
	DirectionY float64 // 单位方向向量Y
}
