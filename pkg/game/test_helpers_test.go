package game

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/decker502/monsterhunt/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	testAudioContext     *audio.Context
	testAudioContextOnce sync.Once
)

// getTestAudioContext 返回共享的音频上下文
// 一个进程只能创建一个 audio.Context
func getTestAudioContext() *audio.Context {
	testAudioContextOnce.Do(func() {
		testAudioContext = audio.NewContext(48000)
	})
	return testAudioContext
}

const testResourceYAML = `version: "1.0"
base_path: assets
groups:
  play:
    images:
      - id: IMAGE_PLAYER
        path: images/player.png
      - id: IMAGE_BROKEN
        path: images/broken.png
    sounds:
      - id: SOUND_HIT
        path: sounds/hit.wav
      - id: MUSIC_BACKGROUND
        path: sounds/music.wav
        loop: true
      - id: SOUND_MIDI
        path: sounds/tune.mid
      - id: SOUND_BLIP
        path: sounds/blip.au
  images_only:
    images:
      - id: IMAGE_MONSTER
        path: images/monster.png
`

// encodeTestPNG 生成指定尺寸的纯色 PNG
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// encodeTestWAV 生成 16-bit 立体声 48kHz 的静音 WAV
func encodeTestWAV(samples int) []byte {
	const (
		channels   = 2
		bitsPerSmp = 16
		sampleRate = 48000
	)
	dataSize := samples * channels * bitsPerSmp / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bitsPerSmp/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bitsPerSmp/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSmp))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

// encodeTestAU 生成 8kHz 单声道 μ-law 的静音 .au
func encodeTestAU(samples int) []byte {
	var buf bytes.Buffer
	for _, v := range []uint32{0x2e736e64, 24, uint32(samples), 1, 8000, 1} {
		binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(bytes.Repeat([]byte{0xff}, samples))
	return buf.Bytes()
}

// initTestAssets 初始化内存中的嵌入资源
func initTestAssets(t *testing.T) {
	t.Helper()
	assets := fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testResourceYAML)},
		"assets/images/player.png":     {Data: encodeTestPNG(t, 30, 60)},
		"assets/images/monster.png":    {Data: encodeTestPNG(t, 40, 30)},
		"assets/images/broken.png":     {Data: []byte("not a png")},
		"assets/sounds/hit.wav":        {Data: encodeTestWAV(480)},
		"assets/sounds/music.wav":      {Data: encodeTestWAV(4800)},
		"assets/sounds/tune.mid":       {Data: []byte{0x4d, 0x54, 0x68, 0x64}},
		"assets/sounds/blip.au":        {Data: encodeTestAU(800)},
	}
	embedded.Init(assets, fstest.MapFS{})
}

// newTestResourceManager 创建已加载测试清单的资源管理器
func newTestResourceManager(t *testing.T, ctx *audio.Context) *ResourceManager {
	t.Helper()
	initTestAssets(t)
	rm := NewResourceManager(ctx)
	if err := rm.LoadResourceConfig(DefaultResourceConfigPath); err != nil {
		t.Fatalf("LoadResourceConfig: %v", err)
	}
	return rm
}
