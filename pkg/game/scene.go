package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (play field, game-over screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景成为活动场景时被调用 OnEnter()
//
// 过场动画期间新场景尚未激活，OnEnter 在过场结束后才调用。
type Enterable interface {
	OnEnter()
}

// Navigator 场景切换接口
// 场景通过它请求切换，而不直接依赖 SceneManager
type Navigator interface {
	Present(scene Scene, transition Transition)
}
