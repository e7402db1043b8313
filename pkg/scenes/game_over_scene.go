package scenes

import (
	"log"

	"github.com/decker502/monsterhunt/pkg/config"
	"github.com/decker502/monsterhunt/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

const (
	wonMessage  = "You Won!"
	loseMessage = "You Lose!"
)

// GameOverScene 结算场景
// 显示胜负文字，经过 DisplayDuration 秒后翻转过场到新一局
type GameOverScene struct {
	ctx       Context
	won       bool
	message   string
	face      *text.GoTextFace
	elapsed   float64
	restarted bool
}

// NewGameOverScene 创建结算场景
func NewGameOverScene(ctx Context, won bool) (*GameOverScene, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}

	message := loseMessage
	if won {
		message = wonMessage
	}
	return &GameOverScene{
		ctx:     ctx,
		won:     won,
		message: message,
		face:    ctx.fontFace(config.GameOverFontSize),
	}, nil
}

// Message 返回显示的文字
func (s *GameOverScene) Message() string {
	return s.message
}

// Won 是否为胜利结算
func (s *GameOverScene) Won() bool {
	return s.won
}

// Update 计时，到时后开始新一局
func (s *GameOverScene) Update(deltaTime float64) {
	if s.restarted {
		return
	}
	s.elapsed += deltaTime
	if s.elapsed < s.ctx.Config.GameOver.DisplayDuration {
		return
	}

	next, err := NewPlayScene(s.ctx)
	if err != nil {
		// 下一帧重试
		log.Printf("[GameOverScene] ERROR: Failed to create play scene: %v", err)
		return
	}
	s.restarted = true
	log.Printf("[GameOverScene] Restarting after %.2fs", s.elapsed)
	s.ctx.Navigator.Present(next, game.FlipHorizontal(s.ctx.Config.GameOver.TransitionDuration))
}

// Draw 白底居中显示黑色文字
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.White)
	if s.face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(s.ctx.Width/2, s.ctx.Height/2)
	op.ColorScale.ScaleWithColor(colornames.Black)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s.message, s.face, op)
}
