package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockResourceLoader 实现 ResourceLoader 接口，避免文件 I/O
// 按资源ID返回固定尺寸的空白图像
type mockResourceLoader struct {
	sizes map[string][2]int
}

func newMockResourceLoader() *mockResourceLoader {
	return &mockResourceLoader{
		sizes: map[string][2]int{
			ImagePlayer:     {30, 60},
			ImageMonster:    {40, 30},
			ImageProjectile: {20, 20},
		},
	}
}

func (m *mockResourceLoader) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	size, ok := m.sizes[resourceID]
	if !ok {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return ebiten.NewImage(size[0], size[1]), nil
}

// failingResourceLoader 模拟资源缺失
type failingResourceLoader struct{}

func (failingResourceLoader) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	return nil, fmt.Errorf("resource ID not found: %s", resourceID)
}

var (
	_ ResourceLoader = (*mockResourceLoader)(nil)
	_ ResourceLoader = failingResourceLoader{}
)
