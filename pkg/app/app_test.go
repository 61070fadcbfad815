package app

import (
	"testing"

	"github.com/gonewx/galaga/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestAudioKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want game.AudioAction
	}{
		{ebiten.KeyM, game.AudioToggleMute},
		{ebiten.KeyMinus, game.AudioVolumeDown},
		{ebiten.KeyEqual, game.AudioVolumeUp},
		{ebiten.KeySpace, game.AudioNone},
	}
	for _, tt := range tests {
		got := audioKey(func(k ebiten.Key) bool { return k == tt.key })
		if got != tt.want {
			t.Errorf("audioKey(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
