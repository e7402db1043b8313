package systems

import (
	"github.com/decker502/monsterhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 提供本帧刚松开的指针位置（鼠标左键或触摸）
type PointerSource interface {
	JustReleasedPoints() []utils.Vector2
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenPointerSource 从 Ebitengine 读取鼠标与触摸输入
type EbitenPointerSource struct {
	touchIDs []ebiten.TouchID
}

// JustReleasedPoints 返回本帧松开的所有指针位置，触摸优先
func (s *EbitenPointerSource) JustReleasedPoints() []utils.Vector2 {
	var points []utils.Vector2

	s.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		// 触摸已经结束，位置取上一帧
		x, y := inpututil.TouchPositionInPreviousTick(id)
		points = append(points, utils.Vector2{X: float64(x), Y: float64(y)})
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, utils.Vector2{X: float64(x), Y: float64(y)})
	}

	return points
}

// IsKeyJustPressed 检查按键是否在本帧按下
func (s *EbitenPointerSource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// InputSystem 处理玩家输入
// 每帧只处理第一个松开的指针，没有输入时不做任何事
type InputSystem struct {
	source    PointerSource
	onRelease func(point utils.Vector2)
	keys      map[ebiten.Key]func()
}

// NewInputSystem 创建输入系统
func NewInputSystem(source PointerSource) *InputSystem {
	return &InputSystem{
		source: source,
		keys:   make(map[ebiten.Key]func()),
	}
}

// SetReleaseHandler 设置指针松开回调
func (s *InputSystem) SetReleaseHandler(fn func(point utils.Vector2)) {
	s.onRelease = fn
}

// BindKey 绑定按键回调
func (s *InputSystem) BindKey(key ebiten.Key, fn func()) {
	s.keys[key] = fn
}

// Update 读取输入并分发
func (s *InputSystem) Update(deltaTime float64) {
	if s.source == nil {
		return
	}

	for key, fn := range s.keys {
		if s.source.IsKeyJustPressed(key) {
			fn()
		}
	}

	points := s.source.JustReleasedPoints()
	if len(points) == 0 || s.onRelease == nil {
		return
	}
	s.onRelease(points[0])
}
