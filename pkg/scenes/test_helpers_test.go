package scenes

import (
	"fmt"

	"github.com/decker502/monsterhunt/pkg/config"
	"github.com/decker502/monsterhunt/pkg/entities"
	"github.com/decker502/monsterhunt/pkg/game"
	"github.com/decker502/monsterhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockResourceLoader 按资源ID返回固定尺寸的空白图像
type mockResourceLoader struct {
	missing string
}

func (m mockResourceLoader) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if resourceID == m.missing {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	switch resourceID {
	case entities.ImagePlayer:
		return ebiten.NewImage(30, 60), nil
	case entities.ImageMonster:
		return ebiten.NewImage(40, 30), nil
	case entities.ImageProjectile:
		return ebiten.NewImage(20, 20), nil
	}
	return nil, fmt.Errorf("resource ID not found: %s", resourceID)
}

// presented 一次场景切换请求
type presented struct {
	scene      game.Scene
	transition game.Transition
}

// fakeNavigator 记录场景切换请求
type fakeNavigator struct {
	calls []presented
}

func (n *fakeNavigator) Present(scene game.Scene, transition game.Transition) {
	n.calls = append(n.calls, presented{scene: scene, transition: transition})
}

// fakeSound 记录播放请求的无声实现
type fakeSound struct {
	sounds       []string
	music        []string
	musicToggles int
	soundToggles int
}

func (f *fakeSound) PlaySound(id string) bool {
	f.sounds = append(f.sounds, id)
	return true
}

func (f *fakeSound) PlayMusic(id string) bool {
	f.music = append(f.music, id)
	return true
}

func (f *fakeSound) ToggleMusic() bool {
	f.musicToggles++
	return f.musicToggles%2 == 0
}

func (f *fakeSound) ToggleSound() bool {
	f.soundToggles++
	return f.soundToggles%2 == 0
}

func (f *fakeSound) count(id string) int {
	n := 0
	for _, s := range f.sounds {
		if s == id {
			n++
		}
	}
	return n
}

// fakePointer 可编程输入源
// releases 的键为帧序号（从 0 开始）
type fakePointer struct {
	frame    int
	releases map[int]utils.Vector2
	keys     map[int]ebiten.Key
}

func (p *fakePointer) JustReleasedPoints() []utils.Vector2 {
	// 每帧先调用 IsKeyJustPressed，再调用 JustReleasedPoints，在这里推进帧
	defer func() { p.frame++ }()
	if pt, ok := p.releases[p.frame]; ok {
		return []utils.Vector2{pt}
	}
	return nil
}

func (p *fakePointer) IsKeyJustPressed(key ebiten.Key) bool {
	k, ok := p.keys[p.frame]
	return ok && k == key
}

// testEnv 场景测试环境
type testEnv struct {
	ctx     Context
	nav     *fakeNavigator
	sound   *fakeSound
	pointer *fakePointer
}

// newTestEnv 创建使用默认配置的测试环境
// rngValues 为怪物生成使用的随机序列
func newTestEnv(rngValues ...float64) *testEnv {
	env := &testEnv{
		nav:     &fakeNavigator{},
		sound:   &fakeSound{},
		pointer: &fakePointer{releases: map[int]utils.Vector2{}, keys: map[int]ebiten.Key{}},
	}
	env.ctx = Context{
		Navigator: env.nav,
		Loader:    mockResourceLoader{},
		Sound:     env.sound,
		Pointer:   env.pointer,
		RNG:       utils.NewSequenceSource(rngValues...),
		Config:    config.DefaultGameConfig(),
		Width:     config.GameWindowWidth,
		Height:    config.GameWindowHeight,
	}
	return env
}

const frame = 1.0 / 60

// runFrames 以 60 TPS 推进场景
func runFrames(s game.Scene, n int) {
	for i := 0; i < n; i++ {
		s.Update(frame)
	}
}
