package config

import (
	"fmt"

	"github.com/decker502/monsterhunt/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GameConfigPath 默认玩法配置文件路径
const GameConfigPath = "data/game.yaml"

// GameConfig 玩法调参配置
//
// 配置文件位置: data/game.yaml
// 文件中缺失的字段保留 DefaultGameConfig 中的默认值。
type GameConfig struct {
	// Spawn 怪物生成配置
	Spawn SpawnConfig `yaml:"spawn"`

	// Projectile 子弹配置
	Projectile ProjectileConfig `yaml:"projectile"`

	// WinScore 胜利所需击杀数
	WinScore int `yaml:"winScore"`

	// LoseOnEscape 怪物穿过屏幕左边缘时是否判负
	LoseOnEscape bool `yaml:"loseOnEscape"`

	// GameOver 结算场景配置
	GameOver GameOverConfig `yaml:"gameOver"`

	// Audio 音频资源ID
	Audio AudioConfig `yaml:"audio"`
}

// SpawnConfig 怪物生成配置
type SpawnConfig struct {
	// Interval 生成间隔（秒）
	Interval float64 `yaml:"interval"`

	// MinCrossDuration 穿越屏幕的最短时间（秒，含）
	MinCrossDuration float64 `yaml:"minCrossDuration"`

	// MaxCrossDuration 穿越屏幕的最长时间（秒，不含）
	MaxCrossDuration float64 `yaml:"maxCrossDuration"`
}

// ProjectileConfig 子弹配置
type ProjectileConfig struct {
	// Distance 飞行距离（像素），需足够飞出可视区域
	Distance float64 `yaml:"distance"`

	// Duration 飞完 Distance 所需时间（秒）
	Duration float64 `yaml:"duration"`
}

// Speed 子弹速度（像素/秒）
func (p ProjectileConfig) Speed() float64 {
	return p.Distance / p.Duration
}

// GameOverConfig 结算场景配置
type GameOverConfig struct {
	// DisplayDuration 结算文字显示时长（秒）
	DisplayDuration float64 `yaml:"displayDuration"`

	// TransitionDuration 翻转过场时长（秒）
	TransitionDuration float64 `yaml:"transitionDuration"`
}

// AudioConfig 音频资源ID配置，空字符串表示不播放
type AudioConfig struct {
	BackgroundMusic string `yaml:"backgroundMusic"`
	HitSound        string `yaml:"hitSound"`
	LaunchSound     string `yaml:"launchSound"`
}

// DefaultGameConfig 返回默认玩法配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Spawn: SpawnConfig{
			Interval:         1.0,
			MinCrossDuration: 2.0,
			MaxCrossDuration: 4.0,
		},
		Projectile: ProjectileConfig{
			Distance: 1000.0,
			Duration: 2.0,
		},
		WinScore:     20,
		LoseOnEscape: false,
		GameOver: GameOverConfig{
			DisplayDuration:    3.0,
			TransitionDuration: 0.5,
		},
		Audio: AudioConfig{
			BackgroundMusic: "MUSIC_BACKGROUND",
			HitSound:        "SOUND_HIT",
			LaunchSound:     "SOUND_PEW",
		},
	}
}

// LoadGameConfig 从嵌入资源加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的玩法配置
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Spawn.Interval <= 0 {
		return fmt.Errorf("spawn interval must be > 0, got %.2f", c.Spawn.Interval)
	}
	if c.Spawn.MinCrossDuration <= 0 {
		return fmt.Errorf("min cross duration must be > 0, got %.2f", c.Spawn.MinCrossDuration)
	}
	if c.Spawn.MinCrossDuration > c.Spawn.MaxCrossDuration {
		return fmt.Errorf("cross duration range invalid: min(%.2f) > max(%.2f)",
			c.Spawn.MinCrossDuration, c.Spawn.MaxCrossDuration)
	}
	if c.Projectile.Distance <= 0 || c.Projectile.Duration <= 0 {
		return fmt.Errorf("projectile distance and duration must be > 0, got %.1f / %.2f",
			c.Projectile.Distance, c.Projectile.Duration)
	}
	if c.WinScore <= 0 {
		return fmt.Errorf("win score must be > 0, got %d", c.WinScore)
	}
	if c.GameOver.DisplayDuration < 0 || c.GameOver.TransitionDuration < 0 {
		return fmt.Errorf("game over durations must be >= 0")
	}
	return nil
}
