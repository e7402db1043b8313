// check_resources 检查资源清单与玩法配置是否一致
//
// 用法:
//
//	go run ./cmd/check_resources -root .
//
// 检查项:
//   - 清单中的每张图片都能解码
//   - 清单中的每个音频文件存在且格式受支持
//   - 玩法配置和实体引用的资源ID都在清单中
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/monsterhunt/pkg/config"
	"github.com/decker502/monsterhunt/pkg/embedded"
	"github.com/decker502/monsterhunt/pkg/entities"
	"github.com/decker502/monsterhunt/pkg/game"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	root    = flag.String("root", ".", "项目根目录（包含 assets/ 和 data/）")
)

var supportedAudio = map[string]bool{".wav": true, ".ogg": true, ".mp3": true, ".au": true}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*root), os.DirFS(*root))

	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(game.DefaultResourceConfigPath); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	failures := 0
	fail := func(format string, args ...interface{}) {
		failures++
		fmt.Printf("  ❌ "+format+"\n", args...)
	}

	for _, name := range rm.GroupNames() {
		group, _ := rm.Group(name)
		fmt.Printf("=== 资源组 %s (%d images, %d sounds) ===\n", name, len(group.Images), len(group.Sounds))

		for _, img := range group.Images {
			image, err := rm.LoadImageByID(img.ID)
			if err != nil {
				fail("%s: %v", img.ID, err)
				continue
			}
			b := image.Bounds()
			fmt.Printf("  ✓ %-20s %dx%d\n", img.ID, b.Dx(), b.Dy())
		}

		for _, snd := range group.Sounds {
			path, _ := rm.ResolvePath(snd.ID)
			if ext := strings.ToLower(filepath.Ext(path)); !supportedAudio[ext] {
				fail("%s: unsupported audio format %s", snd.ID, ext)
				continue
			}
			data, err := embedded.ReadFile(path)
			if err != nil {
				fail("%s: %v", snd.ID, err)
				continue
			}
			fmt.Printf("  ✓ %-20s %d bytes, md5 %x, loop=%v\n", snd.ID, len(data), md5.Sum(data), snd.Loop)
		}
	}

	fmt.Println("=== 资源引用 ===")
	cfg, err := config.LoadGameConfig(config.GameConfigPath)
	if err != nil {
		fail("%v", err)
	} else {
		refs := []string{entities.ImagePlayer, entities.ImageMonster, entities.ImageProjectile,
			cfg.Audio.BackgroundMusic, cfg.Audio.HitSound, cfg.Audio.LaunchSound}
		for _, id := range refs {
			if id == "" {
				continue
			}
			if _, ok := rm.ResolvePath(id); !ok {
				fail("%s: referenced but not in manifest", id)
				continue
			}
			fmt.Printf("  ✓ %s\n", id)
		}
	}

	if failures > 0 {
		fmt.Printf("❌ %d problem(s) found\n", failures)
		os.Exit(1)
	}
	fmt.Println("✅ 所有资源检查通过")
}
