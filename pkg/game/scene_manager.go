package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update method is called at any given time.
//
// Present 可带过场动画切换场景。过场期间两个场景都不更新，
// 过场结束后新场景成为活动场景。
type SceneManager struct {
	currentScene Scene

	// 过场状态
	incoming   Scene
	transition Transition
	elapsed    float64

	// 过场绘制用离屏缓冲
	outgoingBuf *ebiten.Image
	incomingBuf *ebiten.Image
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene immediately, cancelling any running transition.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.incoming = nil
	sm.elapsed = 0
	sm.activate(scene)
}

// Present 切换到新场景
//
// 参数:
//   - scene: 新场景
//   - transition: 过场描述，IsInstant() 时等同于 SwitchTo
func (sm *SceneManager) Present(scene Scene, transition Transition) {
	if scene == nil {
		log.Printf("[SceneManager] 错误: 尝试切换到 nil 场景")
		return
	}
	if transition.IsInstant() || sm.currentScene == nil {
		sm.SwitchTo(scene)
		return
	}

	log.Printf("[SceneManager] 开始过场 (%.2fs)", transition.Duration)
	sm.incoming = scene
	sm.transition = transition
	sm.elapsed = 0
}

// GetCurrentScene 返回当前活动的场景
// 过场期间返回旧场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// IsTransitioning 是否正在播放过场
func (sm *SceneManager) IsTransitioning() bool {
	return sm.incoming != nil
}

// TransitionProgress 返回过场进度 (0~1)，无过场时返回 0
func (sm *SceneManager) TransitionProgress() float64 {
	if sm.incoming == nil {
		return 0
	}
	p := sm.elapsed / sm.transition.Duration
	if p > 1 {
		return 1
	}
	return p
}

func (sm *SceneManager) activate(scene Scene) {
	sm.currentScene = scene
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
}

// Update updates the currently active scene, or advances the running transition.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.incoming != nil {
		sm.elapsed += deltaTime
		if sm.elapsed >= sm.transition.Duration {
			next := sm.incoming
			sm.incoming = nil
			sm.elapsed = 0
			log.Printf("[SceneManager] 过场结束")
			sm.activate(next)
		}
		return
	}

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// During a flip transition, the scene on display is squeezed horizontally.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.incoming == nil {
		if sm.currentScene != nil {
			sm.currentScene.Draw(screen)
		}
		return
	}

	scaleX, showIncoming := flipScale(sm.TransitionProgress())
	var buf *ebiten.Image
	if showIncoming {
		sm.incomingBuf = ensureBuffer(sm.incomingBuf, screen)
		buf = sm.incomingBuf
		buf.Clear()
		sm.incoming.Draw(buf)
	} else {
		sm.outgoingBuf = ensureBuffer(sm.outgoingBuf, screen)
		buf = sm.outgoingBuf
		buf.Clear()
		if sm.currentScene != nil {
			sm.currentScene.Draw(buf)
		}
	}
	drawFlipped(screen, buf, scaleX)
}

// ensureBuffer 返回与 screen 同尺寸的离屏图像，尺寸变化时重建
func ensureBuffer(buf, screen *ebiten.Image) *ebiten.Image {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if buf != nil && buf.Bounds().Dx() == w && buf.Bounds().Dy() == h {
		return buf
	}
	if buf != nil {
		buf.Deallocate()
	}
	return ebiten.NewImage(w, h)
}
