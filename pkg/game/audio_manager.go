package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
//
// 所有音效和背景音乐都通过资源ID播放，音量与开关从 SettingsManager 读取。
// 同一时间只播放一首背景音乐。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 资源ID -> 音效播放器
	musicPlayers    map[string]*audio.Player // 资源ID -> 音乐播放器
	currentMusic    *audio.Player
	currentMusicID  string
	failed          map[string]bool // 加载失败的资源ID，只记录一次日志
}

// NewAudioManager 创建新的音频管理器
//
// 参数:
//   - rm: ResourceManager 实例
//   - sm: SettingsManager 实例，可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		failed:          make(map[string]bool),
	}
}

// PlaySound 从头播放一次音效
//
// 每个音效ID只缓存一个播放器，同一帧内重复播放会重新开始而不是叠加。
//
// 返回:
//   - bool: 是否成功播放（音效关闭或资源缺失时为 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if soundID == "" || !am.soundEnabled() {
		return false
	}

	player := am.getPlayer(soundID, am.soundPlayers, false)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐
// 请求的音乐已在播放时不重新开始
//
// 返回:
//   - bool: 是否正在播放该音乐
func (am *AudioManager) PlayMusic(musicID string) bool {
	if musicID == "" {
		return false
	}
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()
	// 音乐关闭时仍记住当前曲目，重新打开后可恢复
	am.currentMusicID = musicID
	if !am.musicEnabled() {
		return false
	}

	player := am.getPlayer(musicID, am.musicPlayers, true)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()
	am.currentMusic = player

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
	}
	am.currentMusicID = ""
}

// CurrentMusicID 返回当前背景音乐ID
func (am *AudioManager) CurrentMusicID() string {
	return am.currentMusicID
}

// ToggleMusic 切换音乐开关并保存设置
//
// 返回:
//   - bool: 切换后的开关状态
func (am *AudioManager) ToggleMusic() bool {
	enabled := !am.musicEnabled()
	if am.settingsManager != nil {
		am.settingsManager.SetMusicEnabled(enabled)
		am.saveSettings()
	}

	musicID := am.currentMusicID
	if enabled {
		if musicID != "" {
			am.PlayMusic(musicID)
		}
	} else if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
	}

	log.Printf("[AudioManager] Music enabled: %v", enabled)
	return enabled
}

// ToggleSound 切换音效开关并保存设置
func (am *AudioManager) ToggleSound() bool {
	enabled := !am.soundEnabled()
	if am.settingsManager != nil {
		am.settingsManager.SetSoundEnabled(enabled)
		am.saveSettings()
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// SetMusicVolume 设置音乐音量并立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	v := am.getMusicVolume()
	for _, player := range am.musicPlayers {
		player.SetVolume(v)
	}
}

// SetSoundVolume 设置音效音量
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	v := am.getSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(v)
	}
}

// Preload 预加载音效，避免首次播放时的解码延迟
func (am *AudioManager) Preload(soundIDs ...string) {
	loaded := 0
	for _, id := range soundIDs {
		if id == "" {
			continue
		}
		if am.getPlayer(id, am.soundPlayers, false) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

// getPlayer 获取或加载播放器
func (am *AudioManager) getPlayer(id string, cache map[string]*audio.Player, loop bool) *audio.Player {
	if player, ok := cache[id]; ok {
		return player
	}
	if am.failed[id] || am.resourceManager == nil {
		return nil
	}

	path, ok := am.resourceManager.ResolvePath(id)
	if !ok {
		log.Printf("[AudioManager] Warning: Audio resource not found: %s", id)
		am.failed[id] = true
		return nil
	}

	var (
		player *audio.Player
		err    error
	)
	if loop {
		player, err = am.resourceManager.LoadAudio(path)
	} else {
		player, err = am.resourceManager.LoadSoundEffect(path)
	}
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", id, err)
		am.failed[id] = true
		return nil
	}

	cache[id] = player
	return player
}

func (am *AudioManager) saveSettings() {
	if err := am.settingsManager.Save(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to save settings: %v", err)
	}
}

func (am *AudioManager) musicEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().MusicEnabled
}

func (am *AudioManager) soundEnabled() bool {
	return am.settingsManager == nil || am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return DefaultSettings().MusicVolume
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
