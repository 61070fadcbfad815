package game

import (
	"encoding/binary"
	"math"
	"time"
)

// 没有音频资源文件，所有音效都由简单的音符序列合成

// Wave 振荡器波形
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
	WaveNoise
)

// Note 一个音符，Freq 为 0 表示休止
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Cue 一个命名音效
type Cue struct {
	Notes []Note
	// Music 为 true 时按音乐音量播放（主题曲、结束曲）
	Music bool
}

// Duration 音效总时长
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range c.Notes {
		d += n.Duration
	}
	return d
}

func notes(wave Wave, step time.Duration, freqs ...float64) []Note {
	out := make([]Note, len(freqs))
	for i, f := range freqs {
		out[i] = Note{Freq: f, Duration: step, Wave: wave}
	}
	return out
}

func sweep(wave Wave, from, to float64, steps int, total time.Duration) []Note {
	out := make([]Note, steps)
	for i := range out {
		t := float64(i) / float64(steps-1)
		out[i] = Note{Freq: from + (to-from)*t, Duration: total / time.Duration(steps), Wave: wave}
	}
	return out
}

const ms = time.Millisecond

var cues = map[string]Cue{
	SoundTheme: {Music: true, Notes: notes(WaveSquare, 150*ms,
		523, 659, 784, 1047, 0, 784, 1047, 0,
		587, 740, 880, 1175, 0, 880, 1175, 0,
		659, 831, 988, 1319, 0, 988, 1319, 1319)},
	SoundGameOver: {Music: true, Notes: notes(WaveTriangle, 220*ms,
		784, 740, 698, 659, 622, 587, 0, 523)},
	SoundStageAward:   {Notes: notes(WaveSquare, 40*ms, 1319, 1568)},
	SoundChallengeEnd: {Music: true, Notes: notes(WaveSquare, 120*ms, 784, 988, 1175, 1568, 0, 1568)},
	SoundFighterFire:  {Notes: sweep(WaveSquare, 1800, 600, 6, 90*ms)},
	SoundEnemyFire:    {Notes: sweep(WaveSquare, 900, 300, 5, 80*ms)},
	SoundEnemyHit:     {Notes: append(notes(WaveNoise, 60*ms, 1), notes(WaveSquare, 30*ms, 220)...)},
	SoundBossDamaged:  {Notes: notes(WaveSquare, 50*ms, 440, 330)},
	SoundBossDestroy:  {Notes: append(sweep(WaveSquare, 600, 120, 6, 150*ms), notes(WaveNoise, 120*ms, 1)...)},
	SoundExplosion:    {Notes: append(notes(WaveNoise, 400*ms, 1), sweep(WaveTriangle, 200, 50, 4, 200*ms)...)},
}

// CueFor 按名称查找音效
func CueFor(name string) (Cue, bool) {
	c, ok := cues[name]
	return c, ok
}

// Synth 逐采样生成音效，ebiten 与 beep 两种播放后端共用
type Synth struct {
	notes      []Note
	sampleRate int

	note     int
	pos      int // 当前音符内的采样序号
	length   int // 当前音符的采样数
	phase    float64
	noise    uint32
	finished bool
}

// NewSynth 创建合成器
func NewSynth(c Cue, sampleRate int) *Synth {
	s := &Synth{notes: c.Notes, sampleRate: sampleRate, noise: 0x2545F491}
	s.startNote()
	return s
}

func (s *Synth) startNote() {
	for s.note < len(s.notes) {
		s.length = int(s.notes[s.note].Duration.Seconds() * float64(s.sampleRate))
		if s.length > 0 {
			s.pos = 0
			return
		}
		s.note++
	}
	s.finished = true
}

// Next 返回下一个采样（-1..1），播放完毕时 ok 为 false
func (s *Synth) Next() (float64, bool) {
	if s.finished {
		return 0, false
	}
	n := s.notes[s.note]

	var v float64
	switch {
	case n.Freq <= 0:
		v = 0
	case n.Wave == WaveNoise:
		// xorshift，保证同一音效每次听起来一样
		s.noise ^= s.noise << 13
		s.noise ^= s.noise >> 17
		s.noise ^= s.noise << 5
		v = float64(s.noise)/float64(math.MaxUint32)*2 - 1
	case n.Wave == WaveTriangle:
		v = 4*math.Abs(s.phase-0.5) - 1
	default:
		if s.phase < 0.5 {
			v = 1
		} else {
			v = -1
		}
	}

	// 音符首尾各 2ms 线性淡入淡出，避免爆音
	fade := s.sampleRate / 500
	if fade > 0 {
		if s.pos < fade {
			v *= float64(s.pos) / float64(fade)
		} else if rem := s.length - s.pos; rem < fade {
			v *= float64(rem) / float64(fade)
		}
	}

	s.phase += n.Freq / float64(s.sampleRate)
	s.phase -= math.Floor(s.phase)
	s.pos++
	if s.pos >= s.length {
		s.note++
		s.startNote()
	}
	return v, true
}

// RenderPCM 把音效渲染为 16 位小端立体声 PCM（ebiten audio 的格式）
func RenderPCM(c Cue, sampleRate int, volume float64) []byte {
	total := 0
	for _, n := range c.Notes {
		total += int(n.Duration.Seconds() * float64(sampleRate))
	}
	buf := make([]byte, 0, total*4)
	s := NewSynth(c, sampleRate)
	var frame [4]byte
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		sample := int16(math.Round(v * volume * 0.3 * math.MaxInt16))
		binary.LittleEndian.PutUint16(frame[0:], uint16(sample))
		binary.LittleEndian.PutUint16(frame[2:], uint16(sample))
		buf = append(buf, frame[:]...)
	}
	return buf
}
