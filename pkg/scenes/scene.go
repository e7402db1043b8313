package scenes

import (
	"fmt"

	"github.com/decker502/monsterhunt/pkg/config"
	"github.com/decker502/monsterhunt/pkg/entities"
	"github.com/decker502/monsterhunt/pkg/game"
	"github.com/decker502/monsterhunt/pkg/systems"
	"github.com/decker502/monsterhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// SoundPlayer 场景使用的音频接口，由 game.AudioManager 实现
type SoundPlayer interface {
	PlaySound(soundID string) bool
	PlayMusic(musicID string) bool
	ToggleMusic() bool
	ToggleSound() bool
}

// FontProvider 提供文字渲染用的字体
type FontProvider interface {
	DefaultFontFace(size float64) (*text.GoTextFace, error)
}

// Context 场景共享的依赖
// 由 App 创建一次，传递给每个新场景
type Context struct {
	Navigator game.Navigator
	Loader    entities.ResourceLoader
	Sound     SoundPlayer  // 可为 nil（静音）
	Fonts     FontProvider // 可为 nil（不绘制文字）
	Pointer   systems.PointerSource
	RNG       utils.RandomSource
	Config    *config.GameConfig
	Width     float64
	Height    float64
}

// validate 检查必需的依赖
func (c Context) validate() error {
	switch {
	case c.Navigator == nil:
		return fmt.Errorf("scene context: navigator is nil")
	case c.Loader == nil:
		return fmt.Errorf("scene context: resource loader is nil")
	case c.RNG == nil:
		return fmt.Errorf("scene context: random source is nil")
	case c.Config == nil:
		return fmt.Errorf("scene context: game config is nil")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("scene context: invalid screen size %.0fx%.0f", c.Width, c.Height)
	}
	return nil
}

func (c Context) playSound(id string) {
	if c.Sound != nil && id != "" {
		c.Sound.PlaySound(id)
	}
}

func (c Context) fontFace(size float64) *text.GoTextFace {
	if c.Fonts == nil {
		return nil
	}
	face, err := c.Fonts.DefaultFontFace(size)
	if err != nil {
		return nil
	}
	return face
}
