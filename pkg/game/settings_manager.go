package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 音频设置：主题曲、结束曲按音乐音量播放，其余按音效音量
	MusicVolume  float64 `yaml:"musicVolume"`  // 音乐音量 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 音乐开关
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏

	// Initials 上次登记排行榜时输入的名字，作为下次的默认值
	Initials string `yaml:"initials"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
		Fullscreen:   false,
		Initials:     "AAA",
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		// 文件不存在，使用默认设置
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		// 文件存在但加载失败，使用默认设置
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据，文件中缺省的字段保留默认值
	loadedSettings := *DefaultSettings()
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 YAML
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
//
// 返回：
//   - *GameSettings: 当前设置实例
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// 以下修改都只作用于内存，退出时由调用方 Save()

// SetMusicVolume 音乐音量，限制在 [0, 1]
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 音效音量，限制在 [0, 1]
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetMusicEnabled 音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
}

// SetSoundEnabled 音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetMuted 同时开关音乐和音效
func (sm *SettingsManager) SetMuted(muted bool) {
	sm.SetMusicEnabled(!muted)
	sm.SetSoundEnabled(!muted)
}

// ToggleMute 静音键：只要有一路开着就全部关闭，否则全部打开
//
// 返回：
//   - bool: 切换后是否处于静音
func (sm *SettingsManager) ToggleMute() bool {
	muted := sm.settings.MusicEnabled || sm.settings.SoundEnabled
	sm.SetMuted(muted)
	return muted
}

// AdjustVolume 音乐和音效音量一起增减 delta
func (sm *SettingsManager) AdjustVolume(delta float64) {
	sm.SetMusicVolume(sm.settings.MusicVolume + delta)
	sm.SetSoundVolume(sm.settings.SoundVolume + delta)
}

// SetFullscreen 全屏开关（F11）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetInitials 默认的排行榜名字（转为大写，最多三个字符，空串忽略）
func (sm *SettingsManager) SetInitials(initials string) {
	initials = strings.ToUpper(strings.TrimSpace(initials))
	if r := []rune(initials); len(r) > 3 {
		initials = string(r[:3])
	}
	if initials == "" {
		return
	}
	sm.settings.Initials = initials
}

// VolumeStep 音量键每次增减的量
const VolumeStep = 0.1

// AudioAction 两个前端共用的音量控制键
type AudioAction int

const (
	AudioNone AudioAction = iota
	AudioToggleMute
	AudioVolumeDown
	AudioVolumeUp
)

// ApplyAudioAction 执行音量控制键；静音时立即停止正在播放的声音
func (sm *SettingsManager) ApplyAudioAction(action AudioAction, sound SoundPlayer) {
	switch action {
	case AudioToggleMute:
		muted := sm.ToggleMute()
		if muted && sound != nil {
			sound.StopAllSounds()
		}
		log.Printf("[SettingsManager] Muted: %v", muted)
	case AudioVolumeDown:
		sm.AdjustVolume(-VolumeStep)
	case AudioVolumeUp:
		sm.AdjustVolume(VolumeStep)
	}
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

