package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate ebiten 音频上下文的采样率
const AudioSampleRate = 44100

// AudioManager 音频管理器
// 职责：
//   - 按名称合成并缓存所有音效的播放器
//   - 实现 SoundPlayer，供游戏逻辑播放即忘
//   - 按 SettingsManager 中的开关和音量播放
type AudioManager struct {
	context         *audio.Context           // 为 nil 时静音（无音频设备）
	settingsManager *SettingsManager         // 可为 nil，使用默认设置
	players         map[string]*audio.Player // 音效名称 -> 播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		players:         make(map[string]*audio.Player),
	}
}

// Preload 预先合成所有音效，避免第一次播放时卡顿
func (am *AudioManager) Preload() {
	for _, name := range SoundNames {
		am.getPlayer(name)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.players))
}

// PlaySound 从头播放一个音效
// 同名音效正在播放时会被重新开始
func (am *AudioManager) PlaySound(name string) {
	cue, ok := CueFor(name)
	if !ok {
		log.Printf("[AudioManager] Unknown sound: %s", name)
		return
	}

	volume, enabled := am.volumeFor(cue)
	if !enabled {
		return
	}

	player := am.getPlayer(name)
	if player == nil {
		return
	}
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", name, err)
	}
	player.Play()
}

// StopAllSounds 停止所有正在播放的音效
func (am *AudioManager) StopAllSounds() {
	for _, player := range am.players {
		if player.IsPlaying() {
			player.Pause()
		}
	}
}

// volumeFor 返回音效的音量以及是否允许播放
func (am *AudioManager) volumeFor(cue Cue) (float64, bool) {
	settings := DefaultSettings()
	if am.settingsManager != nil {
		settings = am.settingsManager.GetSettings()
	}
	if cue.Music {
		return settings.MusicVolume, settings.MusicEnabled
	}
	return settings.SoundVolume, settings.SoundEnabled
}

// getPlayer 获取或合成播放器
func (am *AudioManager) getPlayer(name string) *audio.Player {
	if am.context == nil {
		return nil
	}
	if player, ok := am.players[name]; ok {
		return player
	}

	cue, ok := CueFor(name)
	if !ok {
		return nil
	}
	player := am.context.NewPlayerFromBytes(RenderPCM(cue, am.context.SampleRate(), 1.0))
	am.players[name] = player
	return player
}
