package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decker502/monsterhunt/internal/au"
	"github.com/decker502/monsterhunt/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// DefaultResourceConfigPath 资源清单默认路径
const DefaultResourceConfigPath = "assets/config/resources.yaml"

// ResourceManager is responsible for centralized management of game resources.
// It loads images and audio from the embedded file system and caches them,
// so each resource is decoded only once.
//
// Resources are addressed by ID through the YAML manifest
// (assets/config/resources.yaml); the path-based Load* methods remain
// available for callers that already know the file.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The game loop is single-threaded.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000))
//	if err := rm.LoadResourceConfig(DefaultResourceConfigPath); err != nil {
//	    return err
//	}
//	img, err := rm.LoadImageByID("IMAGE_PLAYER")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path -> Image
	audioCache    map[string]*audio.Player    // path -> Player
	audioContext  *audio.Context              // 可为 nil（无声模式，音频加载返回错误）
	fontSource    *text.GoTextFaceSource      // 内置 Go Regular 字体
	fontFaceCache map[float64]*text.GoTextFace // size -> face

	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
	loopMap     map[string]bool   // Resource ID -> 是否循环播放
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context, may be nil for headless use.
//
// Returns:
//   - A pointer to a newly initialized ResourceManager with empty caches.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		loopMap:       make(map[string]bool),
	}
}

// LoadResourceConfig loads the resource manifest from the embedded file system.
// It must be called before any *ByID method.
//
// Parameters:
//   - configPath: Path to the YAML manifest (e.g., "assets/config/resources.yaml")
//
// Returns:
//   - An error if the file cannot be read or parsed
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	log.Printf("[ResourceManager] Loaded resource config %s (%d resources)", configPath, len(rm.resourceMap))
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	IMAGE_PLAYER -> assets/images/player.png
//	SOUND_HIT    -> assets/sounds/hit.wav
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	rm.loopMap = make(map[string]bool)
	if rm.config == nil {
		return
	}

	for groupName, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.addResource(groupName, img.ID, img.Path)
		}
		for _, snd := range group.Sounds {
			rm.addResource(groupName, snd.ID, snd.Path)
			rm.loopMap[snd.ID] = snd.Loop
		}
	}
}

func (rm *ResourceManager) addResource(groupName, id, path string) {
	if existing, ok := rm.resourceMap[id]; ok {
		log.Printf("[ResourceManager] Warning: Duplicate resource ID %s in group %s (keeping %s)", id, groupName, existing)
		return
	}
	rm.resourceMap[id] = buildFullPath(rm.config.BasePath, path)
}

// ResolvePath 返回资源ID对应的完整路径
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImage loads a PNG image from the embedded file system and caches it.
//
// Parameters:
//   - path: The file path, e.g. "assets/images/player.png".
//
// Returns:
//   - The loaded ebiten.Image, or an error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadImageByID loads an image using its resource ID from the manifest.
//
// Parameters:
//   - resourceID: e.g. "IMAGE_MONSTER"
//
// Returns:
//   - The loaded image, or an error if the ID is unknown or loading fails.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded, call LoadResourceConfig first")
	}
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(path)
}

// LoadAudio loads a looping audio player (background music).
// Supported formats: .wav, .ogg, .mp3.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundEffect loads a one-shot audio player (sound effect).
// Supported formats: .wav, .ogg, .mp3.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

// LoadAudioByID 按资源ID加载音频，是否循环由清单中的 loop 字段决定
func (rm *ResourceManager) LoadAudioByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded, call LoadResourceConfig first")
	}
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.loadPlayer(path, rm.loopMap[resourceID])
}

// GetAudioPlayer 返回已加载的音频播放器，未加载时返回 nil
// 参数可以是资源ID或文件路径
func (rm *ResourceManager) GetAudioPlayer(idOrPath string) *audio.Player {
	if path, ok := rm.resourceMap[idOrPath]; ok {
		return rm.audioCache[path]
	}
	return rm.audioCache[idOrPath]
}

func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if cached, exists := rm.audioCache[path]; exists {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not initialized, cannot load %s", path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, err := decodeAudio(path, bytes.NewReader(data), rm.audioContext.SampleRate())
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// audioStream 解码后的音频流
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio 按扩展名选择解码器
// sampleRate 只用于 .au 文件，其余格式保持原采样率
func decodeAudio(path string, r io.ReadSeeker, sampleRate int) (audioStream, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		s, err := wav.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".au":
		s, err := au.Decode(r, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("failed to decode AU audio %s: %w", path, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg, .mp3, .au)", ext)
}

// DefaultFontFace 返回指定字号的内置字体（Go Regular）
func (rm *ResourceManager) DefaultFontFace(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// LoadResourceGroup 预加载一个资源组的全部图片和音频
//
// 无音频上下文时跳过音频，只加载图片。
//
// 返回:
//   - error: 组不存在或任一资源加载失败
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded, call LoadResourceConfig first")
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("group %s: %w", groupName, err)
		}
	}

	if rm.audioContext == nil {
		log.Printf("[ResourceManager] No audio context, skipping %d sounds in group %s", len(group.Sounds), groupName)
	} else {
		for _, snd := range group.Sounds {
			if _, err := rm.LoadAudioByID(snd.ID); err != nil {
				return fmt.Errorf("group %s: %w", groupName, err)
			}
		}
	}

	log.Printf("[ResourceManager] Loaded resource group %s (%d images, %d sounds)", groupName, len(group.Images), len(group.Sounds))
	return nil
}

// GroupNames 返回所有资源组名（排序）
func (rm *ResourceManager) GroupNames() []string {
	if rm.config == nil {
		return nil
	}
	names := make([]string, 0, len(rm.config.Groups))
	for name := range rm.config.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group 返回资源组定义
func (rm *ResourceManager) Group(groupName string) (ResourceGroup, bool) {
	if rm.config == nil {
		return ResourceGroup{}, false
	}
	group, ok := rm.config.Groups[groupName]
	return group, ok
}
