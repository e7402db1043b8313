package entities

import "github.com/hajimehoshi/ebiten/v2"

// 图像资源ID（定义于 assets/config/resources.yaml）
const (
	ImagePlayer     = "IMAGE_PLAYER"
	ImageMonster    = "IMAGE_MONSTER"
	ImageProjectile = "IMAGE_PROJECTILE"
)

// ResourceLoader 是实体工厂需要的最小资源接口
// game.ResourceManager 实现此接口；测试中使用 mock 避免文件 I/O
type ResourceLoader interface {
	LoadImageByID(resourceID string) (*ebiten.Image, error)
}

// loadSprite 按资源ID加载图像并返回其尺寸
func loadSprite(rl ResourceLoader, resourceID string) (*ebiten.Image, float64, float64, error) {
	img, err := rl.LoadImageByID(resourceID)
	if err != nil {
		return nil, 0, 0, err
	}
	b := img.Bounds()
	return img, float64(b.Dx()), float64(b.Dy()), nil
}
