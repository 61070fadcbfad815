package main

import (
	"testing"

	"github.com/gonewx/galaga/pkg/game"
)

func TestCueStreamerPlaysWholeCue(t *testing.T) {
	cue, ok := game.CueFor(game.SoundFighterFire)
	if !ok {
		t.Fatal("fighter fire cue missing")
	}
	want := 0
	for _, n := range cue.Notes {
		want += int(n.Duration.Seconds() * float64(sampleRate))
	}

	s := newCueStreamer(cue, 0.5)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] != buf[i][1] {
				t.Fatal("channels differ")
			}
			if buf[i][0] > 0.5 || buf[i][0] < -0.5 {
				t.Fatalf("sample %v exceeds gain", buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if s.Err() != nil {
		t.Error("Err() should be nil")
	}
}

func TestBeepSoundGain(t *testing.T) {
	sm, _ := game.NewSettingsManager(nil)
	b := newBeepSound(sm)

	theme, _ := game.CueFor(game.SoundTheme)
	fire, _ := game.CueFor(game.SoundFighterFire)

	sm.SetMusicEnabled(false)
	if _, enabled := b.gainFor(theme); enabled {
		t.Error("music disabled but theme enabled")
	}
	if _, enabled := b.gainFor(fire); !enabled {
		t.Error("sound effects should stay enabled")
	}

	sm.SetSoundVolume(0.5)
	if gain, _ := b.gainFor(fire); gain != 0.15 {
		t.Errorf("gain = %v, want 0.15", gain)
	}
}

func TestBeepSoundUninitialized(t *testing.T) {
	b := newBeepSound(nil)
	b.PlaySound(game.SoundExplosion)
	b.StopAllSounds()
	if len(b.playing) != 0 {
		t.Error("nothing should play before the speaker is opened")
	}
}
