package main

import (
	"flag"
	"log"

	"github.com/decker502/monsterhunt/pkg/app"
	"github.com/decker502/monsterhunt/pkg/config"
	"github.com/decker502/monsterhunt/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Monster Hunt")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
