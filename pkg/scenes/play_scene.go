package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/monsterhunt/pkg/components"
	"github.com/decker502/monsterhunt/pkg/config"
	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/decker502/monsterhunt/pkg/entities"
	"github.com/decker502/monsterhunt/pkg/game"
	"github.com/decker502/monsterhunt/pkg/systems"
	"github.com/decker502/monsterhunt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
)

// PlayScene 游戏主场景
//
// 玩家固定在画面左侧，怪物从右侧不断出现并向左移动；
// 玩家点击/触摸画面向右发射子弹，子弹命中怪物得分，达到胜利分数后进入结算场景。
type PlayScene struct {
	ctx   Context
	state *PlayState

	entityManager *ecs.EntityManager
	player        ecs.EntityID
	playerPos     utils.Vector2

	spawnSystem    *systems.MonsterSpawnSystem
	inputSystem    *systems.InputSystem
	movementSystem *systems.MovementSystem
	physicsSystem  *systems.PhysicsSystem
	renderSystem   *systems.RenderSystem

	projectileParams entities.ProjectileParams
	scoreFace        *text.GoTextFace
	launched         int
	gameOverPending  bool // 本局已结束但结算场景尚未切换
}

// NewPlayScene 创建新一局的游戏场景
//
// 参数:
//   - ctx: 场景依赖
//
// 返回:
//   - *PlayScene: 场景实例
//   - error: 依赖缺失或玩家图像加载失败
func NewPlayScene(ctx Context) (*PlayScene, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}

	cfg := ctx.Config
	em := ecs.NewEntityManager()
	s := &PlayScene{
		ctx:           ctx,
		state:         NewPlayState(cfg.WinScore),
		entityManager: em,
		playerPos: utils.Vector2{
			X: ctx.Width * config.PlayerAnchorXRatio,
			Y: ctx.Height * config.PlayerAnchorYRatio,
		},
		projectileParams: entities.ProjectileParams{
			Distance: cfg.Projectile.Distance,
			Duration: cfg.Projectile.Duration,
		},
		scoreFace: ctx.fontFace(config.ScoreFontSize),
	}

	player, err := entities.NewPlayer(em, ctx.Loader, s.playerPos.X, s.playerPos.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	s.player = player

	// 预先检查怪物和子弹图像，避免运行中才发现资源缺失
	for _, id := range []string{entities.ImageMonster, entities.ImageProjectile} {
		if _, err := ctx.Loader.LoadImageByID(id); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", id, err)
		}
	}

	s.spawnSystem = systems.NewMonsterSpawnSystem(em, ctx.Loader, ctx.RNG, entities.MonsterSpawnParams{
		ScreenWidth:      ctx.Width,
		ScreenHeight:     ctx.Height,
		MinCrossDuration: cfg.Spawn.MinCrossDuration,
		MaxCrossDuration: cfg.Spawn.MaxCrossDuration,
	}, cfg.Spawn.Interval)

	s.inputSystem = systems.NewInputSystem(ctx.Pointer)
	s.inputSystem.SetReleaseHandler(s.launchProjectile)
	if ctx.Sound != nil {
		s.inputSystem.BindKey(ebiten.KeyM, func() { ctx.Sound.ToggleMusic() })
		s.inputSystem.BindKey(ebiten.KeyS, func() { ctx.Sound.ToggleSound() })
	}

	s.movementSystem = systems.NewMovementSystem(em)
	s.movementSystem.SetArrivalHandler(s.handleArrival)

	s.physicsSystem = systems.NewPhysicsSystem(em, systems.ContactListenerFunc(s.DidBeginContact))
	s.renderSystem = systems.NewRenderSystem(em)

	log.Printf("[PlayScene] New round: player at (%.1f, %.1f), win at %d", s.playerPos.X, s.playerPos.Y, cfg.WinScore)
	return s, nil
}

// OnEnter 场景激活时开始播放背景音乐
func (s *PlayScene) OnEnter() {
	if s.ctx.Sound != nil && s.ctx.Config.Audio.BackgroundMusic != "" {
		s.ctx.Sound.PlayMusic(s.ctx.Config.Audio.BackgroundMusic)
	}
}

// State 返回本局状态
func (s *PlayScene) State() *PlayState {
	return s.state
}

// ScoreLabel 返回分数标签文字
func (s *PlayScene) ScoreLabel() string {
	return s.state.Label()
}

// PlayerPosition 返回玩家位置
func (s *PlayScene) PlayerPosition() utils.Vector2 {
	return s.playerPos
}

// EntityManager 返回场景的实体管理器
func (s *PlayScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// SpawnedMonsters 返回已生成的怪物数量
func (s *PlayScene) SpawnedMonsters() int {
	return s.spawnSystem.Spawned()
}

// LaunchedProjectiles 返回已发射的子弹数量
func (s *PlayScene) LaunchedProjectiles() int {
	return s.launched
}

// Update 更新一帧
// 系统顺序：输入 → 生成 → 移动 → 碰撞 → 清理
func (s *PlayScene) Update(deltaTime float64) {
	if s.state.IsOver() {
		if s.gameOverPending {
			s.presentGameOver()
		}
		return
	}

	s.inputSystem.Update(deltaTime)
	s.spawnSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.physicsSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.White)
	s.renderSystem.Draw(screen)

	if s.scoreFace == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScoreLabelX, config.ScoreLabelY)
	op.ColorScale.ScaleWithColor(colornames.Black)
	text.Draw(screen, s.state.Label(), s.scoreFace, op)
}

// Launch 向指定位置发射子弹，供输入系统和自动测试调用
//
// 返回:
//   - bool: 是否发射（向后方或与玩家重合时为 false）
func (s *PlayScene) Launch(target utils.Vector2) bool {
	if s.state.IsOver() {
		return false
	}
	_, ok, err := entities.NewProjectile(s.entityManager, s.ctx.Loader, s.playerPos, target, s.projectileParams)
	if err != nil {
		log.Printf("[PlayScene] WARNING: Failed to launch projectile: %v", err)
		return false
	}
	if !ok {
		return false
	}
	s.launched++
	s.ctx.playSound(s.ctx.Config.Audio.LaunchSound)
	return true
}

func (s *PlayScene) launchProjectile(target utils.Vector2) {
	s.Launch(target)
}

// DidBeginContact 处理碰撞开始事件
// 两个物体按类别位掩码排序，只处理 怪物-子弹 组合
func (s *PlayScene) DidBeginContact(contact systems.Contact) {
	first, second := contact.BodyA, contact.BodyB
	if first.CategoryBitMask > second.CategoryBitMask {
		first, second = second, first
	}

	if first.CategoryBitMask&components.CategoryMonster != 0 &&
		second.CategoryBitMask&components.CategoryProjectile != 0 {
		s.projectileDidCollideWithMonster(second.Entity, first.Entity)
	}
}

// projectileDidCollideWithMonster 子弹命中怪物
func (s *PlayScene) projectileDidCollideWithMonster(projectile, monster ecs.EntityID) {
	if s.state.IsOver() {
		return
	}
	if s.entityManager.IsMarkedForDestruction(projectile) || s.entityManager.IsMarkedForDestruction(monster) {
		return
	}

	s.entityManager.DestroyEntity(projectile)
	s.entityManager.DestroyEntity(monster)

	won := s.state.RecordHit()
	s.ctx.playSound(s.ctx.Config.Audio.HitSound)
	log.Printf("[PlayScene] Hit! %s", s.state.Label())

	if won {
		s.finish(true)
	}
}

// handleArrival 实体到达移动终点
// 开启 LoseOnEscape 时，怪物穿过屏幕判负
func (s *PlayScene) handleArrival(id ecs.EntityID) {
	if !s.ctx.Config.LoseOnEscape {
		return
	}
	if !ecs.HasComponent[*components.MonsterComponent](s.entityManager, id) {
		return
	}
	log.Printf("[PlayScene] Monster %d escaped", id)
	if s.state.RecordLoss() {
		s.finish(false)
	}
}

// finish 结束本局并切换到结算场景
func (s *PlayScene) finish(won bool) {
	s.spawnSystem.Disable()
	log.Printf("[PlayScene] Round over: won=%v, %s", won, s.state.Label())

	s.gameOverPending = true
	s.presentGameOver()
}

// presentGameOver 切换到结算场景，失败时在下一帧重试
func (s *PlayScene) presentGameOver() {
	over, err := NewGameOverScene(s.ctx, s.state.Won())
	if err != nil {
		log.Printf("[PlayScene] ERROR: Failed to create game over scene: %v", err)
		return
	}
	s.gameOverPending = false
	s.ctx.Navigator.Present(over, game.FlipHorizontal(s.ctx.Config.GameOver.TransitionDuration))
}
