package utils

import (
	"testing"

	"github.com/gonewx/galaga/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestSnapshot(t *testing.T) {
	b := DefaultKeyBindings()
	tests := []struct {
		name        string
		held        []ebiten.Key
		pressed     []ebiten.Key
		wantHeld    game.Key
		wantPressed game.Key
	}{
		{"nothing", nil, nil, 0, 0},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, nil, game.KeyLeft, 0},
		{"alternate right", []ebiten.Key{ebiten.KeyD}, nil, game.KeyRight, 0},
		{"fire press", []ebiten.Key{ebiten.KeySpace}, []ebiten.Key{ebiten.KeySpace}, game.KeyFire, game.KeyFire},
		{"move and fire", []ebiten.Key{ebiten.KeyA, ebiten.KeyZ}, []ebiten.Key{ebiten.KeyZ},
			game.KeyLeft | game.KeyFire, game.KeyFire},
		{"debug keys", nil, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyR, ebiten.KeyK}, 0,
			game.KeySkip | game.KeyRestart | game.KeyKill},
		{"unbound key", []ebiten.Key{ebiten.KeyQ}, []ebiten.Key{ebiten.KeyQ}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := b.Snapshot(keySet(tt.held...), keySet(tt.pressed...))
			if s.Held != tt.wantHeld {
				t.Errorf("Held = %b, want %b", s.Held, tt.wantHeld)
			}
			if s.Pressed != tt.wantPressed {
				t.Errorf("Pressed = %b, want %b", s.Pressed, tt.wantPressed)
			}
		})
	}
}

func TestTouchDirection(t *testing.T) {
	tests := []struct {
		x     int
		width int
		want  game.Key
	}{
		{0, 224, game.KeyLeft},
		{73, 224, game.KeyLeft},
		{74, 224, 0},
		{149, 224, 0},
		{150, 224, game.KeyRight},
		{223, 224, game.KeyRight},
		{10, 0, game.KeyLeft},
	}
	for _, tt := range tests {
		if got := TouchDirection(tt.x, tt.width); got != tt.want {
			t.Errorf("TouchDirection(%d, %d) = %v, want %v", tt.x, tt.width, got, tt.want)
		}
	}
}
