package main

import (
	"math"
	"testing"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/utils"
)

func newTestTermGame(t *testing.T, lives int) *termGame {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.StartingLives = lives
	return newTermGame(newSimScreen(t), cfg, utils.NewPRNGService(1), nil, game.NewScoreStore(nil), nil)
}

func TestTermGameRecordsOnceAndRestarts(t *testing.T) {
	g := newTestTermGame(t, 1)
	g.step(frameInterval.Seconds(), game.InputSnapshot{Pressed: game.KeySkip})
	if g.play.Phase() != components.PhaseActive {
		t.Fatalf("phase = %v, want active", g.play.Phase())
	}
	g.step(frameInterval.Seconds(), game.InputSnapshot{Pressed: game.KeyKill})
	for i := 0; i < 100 && !g.play.Done(); i++ {
		g.step(0.1, game.InputSnapshot{})
	}
	if !g.play.Done() {
		t.Fatal("game never finished")
	}

	g.gameState.AddScore(20000)
	g.step(frameInterval.Seconds(), game.InputSnapshot{})
	if !g.recorded || g.rank != 3 {
		t.Fatalf("recorded=%v rank=%d, want rank 3", g.recorded, g.rank)
	}
	g.step(frameInterval.Seconds(), game.InputSnapshot{})
	count := 0
	for _, s := range g.scores.Scores() {
		if s.Score == 20000 {
			count++
		}
	}
	if count != 2 {
		t.Errorf("20000 appears %d times, want the default entry plus one new record", count)
	}

	g.draw()
	if got := runeAt(g.screen, g.renderer.ox+2, g.renderer.oy+4); got != '-' {
		t.Errorf("results header = %q, want '-'", got)
	}

	g.step(frameInterval.Seconds(), game.InputSnapshot{Pressed: game.KeyFire})
	if g.play.Done() || g.recorded {
		t.Error("fire should start a new game")
	}
	if g.gameState.HighScore != 30000 {
		t.Errorf("high score = %d, want 30000", g.gameState.HighScore)
	}
}

// TestTermGameMuteKey 静音后 beepSound 不再出声，设置为 nil 时忽略音量键
func TestTermGameMuteKey(t *testing.T) {
	g := newTestTermGame(t, 3)
	g.applyAudio(game.AudioToggleMute)

	settings, _ := game.NewSettingsManager(nil)
	g.settings = settings
	g.sound = newBeepSound(settings)
	g.applyAudio(game.AudioToggleMute)
	if _, enabled := g.sound.(*beepSound).gainFor(game.Cue{}); enabled {
		t.Error("sound effects should be disabled after mute")
	}
	g.applyAudio(game.AudioVolumeDown)
	if got := settings.GetSettings().SoundVolume; math.Abs(got-0.7) > 1e-9 {
		t.Errorf("sound volume = %v, want 0.7", got)
	}
}
