// verify_gameplay 无窗口运行一局游戏，由自动瞄准打完整局
//
// 用法:
//
//	go run ./cmd/verify_gameplay -seed 42 -verbose
//
// 检查项:
//   - 分数逐一增加到胜利分数
//   - 达到胜利分数后进入结算场景并显示 "You Won!"
//   - 结算结束后翻转过场到新一局，新一局分数为 0
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/monsterhunt/pkg/config"
	"github.com/decker502/monsterhunt/pkg/embedded"
	"github.com/decker502/monsterhunt/pkg/game"
	"github.com/decker502/monsterhunt/pkg/scenes"
	"github.com/decker502/monsterhunt/pkg/utils"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	seed      = flag.Int64("seed", 42, "随机种子")
	root      = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
	maxFrames = flag.Int("max-frames", 60*120, "最多运行的帧数")
	cooldown  = flag.Float64("cooldown", 0.2, "两次发射之间的冷却（秒）")
)

// 验证阶段
type phase int

const (
	phasePlaying phase = iota
	phaseGameOver
	phaseRestarted
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Printf("❌ 验证失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ 验证通过")
}

func run() error {
	embedded.Init(os.DirFS(*root), os.DirFS(*root))

	cfg, err := config.LoadGameConfig(config.GameConfigPath)
	if err != nil {
		return fmt.Errorf("玩法配置加载失败: %w", err)
	}

	// 无音频上下文：只加载图像
	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(game.DefaultResourceConfigPath); err != nil {
		return fmt.Errorf("资源配置加载失败: %w", err)
	}

	sm := game.NewSceneManager()
	ctx := scenes.Context{
		Navigator: sm,
		Loader:    rm,
		RNG:       utils.NewRandomSource(*seed),
		Config:    cfg,
		Width:     config.GameWindowWidth,
		Height:    config.GameWindowHeight,
	}

	first, err := scenes.NewPlayScene(ctx)
	if err != nil {
		return fmt.Errorf("创建游戏场景失败: %w", err)
	}
	sm.SwitchTo(first)

	bot := newAimBot(cfg.Projectile.Speed(), cfg.Projectile.Distance, *cooldown)
	dt := 1.0 / float64(config.TicksPerSecond)

	fmt.Printf("=== Monster Hunt 玩法验证 (seed=%d, win=%d) ===\n", *seed, cfg.WinScore)

	current := phasePlaying
	lastScore := 0
	for frame := 0; frame < *maxFrames; frame++ {
		if play, ok := sm.GetCurrentScene().(*scenes.PlayScene); ok && play == first && !sm.IsTransitioning() {
			if target, id, fire := bot.pickTarget(play.EntityManager(), play.PlayerPosition(), dt); fire {
				if play.Launch(target) {
					log.Printf("[Verify] Frame %d: fire at monster %d -> (%.1f, %.1f)", frame, id, target.X, target.Y)
				}
			}
		}

		sm.Update(dt)

		switch current {
		case phasePlaying:
			if score := first.State().Score(); score != lastScore {
				if score != lastScore+1 {
					return fmt.Errorf("frame %d: score jumped from %d to %d", frame, lastScore, score)
				}
				lastScore = score
				fmt.Printf("  [%6.2fs] %s (monsters %d, shots %d)\n",
					float64(frame+1)*dt, first.ScoreLabel(), first.SpawnedMonsters(), first.LaunchedProjectiles())
			}
			if over, ok := sm.GetCurrentScene().(*scenes.GameOverScene); ok {
				if !over.Won() || over.Message() != "You Won!" {
					return fmt.Errorf("frame %d: expected win message, got %q", frame, over.Message())
				}
				if lastScore != cfg.WinScore {
					return fmt.Errorf("frame %d: game over at score %d, want %d", frame, lastScore, cfg.WinScore)
				}
				fmt.Printf("  [%6.2fs] 结算场景: %s\n", float64(frame+1)*dt, over.Message())
				current = phaseGameOver
			}

		case phaseGameOver:
			next, ok := sm.GetCurrentScene().(*scenes.PlayScene)
			if !ok || next == first || sm.IsTransitioning() {
				continue
			}
			if next.State().Score() != 0 {
				return fmt.Errorf("frame %d: new round starts at score %d", frame, next.State().Score())
			}
			if first.State().Score() != cfg.WinScore {
				return fmt.Errorf("frame %d: finished round changed to score %d", frame, first.State().Score())
			}
			fmt.Printf("  [%6.2fs] 新一局开始: %s\n", float64(frame+1)*dt, next.ScoreLabel())
			bot.reset()
			current = phaseRestarted
		}

		if current == phaseRestarted {
			return nil
		}
	}

	return fmt.Errorf("reached %d frames without completing a round (score %d)", *maxFrames, lastScore)
}
