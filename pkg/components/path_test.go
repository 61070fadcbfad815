package components

import (
	"image"
	"testing"
)

func TestPathStepDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []image.Point
		wantX  float64
		wantY  float64
	}{
		{name: "empty", points: nil, wantX: 5, wantY: 7},
		{name: "single point", points: []image.Point{{X: 40, Y: 60}}, wantX: 40, wantY: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PathComponent{Points: tt.points, Speed: 2}
			pos := &PositionComponent{X: 5, Y: 7}
			if !p.Step(pos) {
				t.Fatal("degenerate path should complete in one update")
			}
			if !p.Done() {
				t.Error("Done() should be true")
			}
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("position = (%v,%v), want (%v,%v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPathStepConstantSpeed(t *testing.T) {
	p := &PathComponent{Points: []image.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, Speed: 2}
	pos := &PositionComponent{X: 0, Y: 0}

	// 第一帧吸附到起点
	if p.Step(pos) {
		t.Fatal("should not be done after reaching the first waypoint")
	}
	if p.Index != 1 {
		t.Fatalf("Index = %d, want 1", p.Index)
	}

	// 之后每帧前进 2 像素
	for i := 1; i <= 4; i++ {
		if p.Step(pos) {
			t.Fatalf("done too early at step %d", i)
		}
		if pos.X != float64(2*i) {
			t.Fatalf("after %d steps X = %v, want %v", i, pos.X, 2*i)
		}
	}
	if !p.Step(pos) {
		t.Error("should complete when the last waypoint is reached")
	}
	if pos.X != 10 {
		t.Errorf("final X = %v, want 10", pos.X)
	}
}

func TestPathStepDenseWaypointsFinishWithinLength(t *testing.T) {
	// 航点间距不超过速度时，length 次更新内必然走完
	pts := make([]image.Point, 0, 60)
	for i := 0; i < 60; i++ {
		pts = append(pts, image.Point{X: i, Y: i / 2})
	}
	p := &PathComponent{Points: pts, Speed: 2}
	pos := &PositionComponent{X: 0, Y: 0}

	updates := 0
	for !p.Done() && updates <= len(pts)+1 {
		p.Step(pos)
		updates++
	}
	if !p.Done() {
		t.Fatalf("path not finished after %d updates", updates)
	}
	if updates > len(pts) {
		t.Errorf("took %d updates, want at most %d", updates, len(pts))
	}
}

func TestPathStepSparseWaypointsNeedMoreUpdates(t *testing.T) {
	// 航点相隔 10 px、速度 2：每段 5 次更新，length+1 次不够
	pts := []image.Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}}
	p := &PathComponent{Points: pts, Speed: 2}
	pos := &PositionComponent{}

	updates := 0
	for !p.Done() && updates < 100 {
		p.Step(pos)
		updates++
	}
	if !p.Done() || pos.X != 30 {
		t.Fatalf("done=%v X=%v after %d updates", p.Done(), pos.X, updates)
	}
	if updates != 16 {
		t.Errorf("updates = %d, want 16 (1 + 3 segments × 5)", updates)
	}
}
