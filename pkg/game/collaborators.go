package game

import (
	"image"
	"image/color"
)

// 核心逻辑通过下面这些窄接口与外部协作者交互：
// 渲染、音效、输入。核心从不直接操作像素或音频设备。

// SpriteDraw 一次精灵绘制请求
type SpriteDraw struct {
	X, Y  float64         // 中心位置（场地坐标）
	Frame image.Rectangle // 精灵图上的帧矩形
	FlipH bool
	FlipV bool
	Tint  color.Color // nil 表示原色
}

// Renderer 渲染协作者
type Renderer interface {
	DrawSprite(d SpriteDraw)
	DrawText(s string, x, y float64, clr color.Color)
}

// SoundPlayer 音效协作者，播放即忘
type SoundPlayer interface {
	PlaySound(name string)
	StopAllSounds()
}

// 音效名称
const (
	SoundTheme        = "theme"
	SoundStageAward   = "stage_award"
	SoundFighterFire  = "fighter_fire"
	SoundEnemyFire    = "enemy_fire"
	SoundEnemyHit     = "enemy_hit_1"
	SoundBossDamaged  = "enemy_hit_2"
	SoundBossDestroy  = "enemy_hit_3"
	SoundExplosion    = "explosion"
	SoundGameOver     = "game_over"
	SoundChallengeEnd = "challenge_end"
)

// SoundNames 所有音效名称，音频实现按此预生成音色
var SoundNames = []string{
	SoundTheme, SoundStageAward, SoundFighterFire, SoundEnemyFire, SoundEnemyHit,
	SoundBossDamaged, SoundBossDestroy, SoundExplosion, SoundGameOver, SoundChallengeEnd,
}

// NopSoundPlayer 不发声的音效实现（测试与无音频环境）
type NopSoundPlayer struct{}

func (NopSoundPlayer) PlaySound(string) {}
func (NopSoundPlayer) StopAllSounds()   {}

// Key 逻辑按键
type Key uint8

const (
	KeyLeft Key = 1 << iota
	KeyRight
	KeyFire
	KeySkip
	KeyRestart
	KeyKill
)

// InputSnapshot 一帧的输入快照
// Held 为当前按住的键，Pressed 为本帧新按下的键
type InputSnapshot struct {
	Held    Key
	Pressed Key
}

// IsHeld 某键是否按住
func (s InputSnapshot) IsHeld(k Key) bool {
	return s.Held&k != 0
}

// IsPressed 某键是否本帧按下
func (s InputSnapshot) IsPressed(k Key) bool {
	return s.Pressed&k != 0
}
