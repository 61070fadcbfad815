package main

import (
	"log"
	"sync"
	"time"

	"github.com/gonewx/galaga/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(game.AudioSampleRate)

// cueStreamer 把 game.Synth 包装成 beep.Streamer
type cueStreamer struct {
	synth *game.Synth
	gain  float64
}

func newCueStreamer(cue game.Cue, gain float64) *cueStreamer {
	return &cueStreamer{synth: game.NewSynth(cue, int(sampleRate)), gain: gain}
}

func (c *cueStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v, more := c.synth.Next()
		if !more {
			return i, i > 0
		}
		s := v * c.gain
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

func (c *cueStreamer) Err() error {
	return nil
}

// beepSound 用 beep 实现 game.SoundPlayer
// 所有音效混进同一个 Mixer；同名音效再次播放时替换旧的
type beepSound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	playing     map[string]*beep.Ctrl
	settings    *game.SettingsManager
	initialized bool
}

func newBeepSound(settings *game.SettingsManager) *beepSound {
	return &beepSound{
		mixer:    &beep.Mixer{},
		playing:  make(map[string]*beep.Ctrl),
		settings: settings,
	}
}

// Initialize 打开音频设备
func (b *beepSound) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// PlaySound 播放即忘
func (b *beepSound) PlaySound(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	cue, ok := game.CueFor(name)
	if !ok {
		log.Printf("[Sound] Unknown sound: %s", name)
		return
	}
	gain, enabled := b.gainFor(cue)
	if !enabled {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newCueStreamer(cue, gain)}
	speaker.Lock()
	if old, ok := b.playing[name]; ok {
		old.Paused = true
	}
	b.mixer.Add(ctrl)
	speaker.Unlock()
	b.playing[name] = ctrl
}

// StopAllSounds 停止所有正在播放的音效
func (b *beepSound) StopAllSounds() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.playing = make(map[string]*beep.Ctrl)
}

// Close 关闭音频设备
func (b *beepSound) Close() {
	b.StopAllSounds()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		speaker.Close()
		b.initialized = false
	}
}

// gainFor 与 ebiten 前端相同：音乐和音效分开控制，0.3 为合成器的基础增益
func (b *beepSound) gainFor(cue game.Cue) (float64, bool) {
	settings := game.DefaultSettings()
	if b.settings != nil {
		settings = b.settings.GetSettings()
	}
	if cue.Music {
		return 0.3 * settings.MusicVolume, settings.MusicEnabled
	}
	return 0.3 * settings.SoundVolume, settings.SoundEnabled
}
