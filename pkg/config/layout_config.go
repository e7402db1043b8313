package config

// 布局配置常量
// 本文件定义了窗口尺寸和场景中固定元素的位置

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 游戏逻辑画面宽度（像素）
	GameWindowWidth = 1024

	// GameWindowHeight 游戏逻辑画面高度（像素）
	GameWindowHeight = 768

	// TicksPerSecond 每秒更新次数，与 Ebitengine 默认 TPS 一致
	TicksPerSecond = 60
)

// Player Configuration (玩家配置)
const (
	// PlayerAnchorXRatio 玩家X坐标占画面宽度的比例
	PlayerAnchorXRatio = 0.1

	// PlayerAnchorYRatio 玩家Y坐标占画面高度的比例
	PlayerAnchorYRatio = 0.5
)

// Label Configuration (文字配置)
const (
	// ScoreLabelX 分数标签X坐标（距左边缘）
	ScoreLabelX = 16.0

	// ScoreLabelY 分数标签Y坐标（距上边缘）
	ScoreLabelY = 12.0

	// ScoreFontSize 分数标签字号
	ScoreFontSize = 24.0

	// GameOverFontSize 结算文字字号
	GameOverFontSize = 40.0
)
