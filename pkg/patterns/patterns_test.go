package patterns

import (
	"image"
	"math"
	"testing"

	"github.com/gonewx/galaga/pkg/types"
)

func diveContext() Context {
	c := NewContext(3, 2, 0)
	c.Start = c.Target
	c.PlayerX = 150
	return c
}

// TestAllPatternsProduceWaypoints 每个已注册图案都能生成非空路径
func TestAllPatternsProduceWaypoints(t *testing.T) {
	for _, id := range IDs() {
		c := diveContext()
		path := Generate(id, c)
		if len(path) == 0 {
			t.Errorf("%s: empty path", id)
		}
	}
}

// TestGenerateIsDeterministic 同样的输入得到同样的输出
func TestGenerateIsDeterministic(t *testing.T) {
	for _, id := range IDs() {
		c := diveContext()
		a := Generate(id, c)
		b := Generate(id, c)
		if len(a) != len(b) {
			t.Fatalf("%s: length %d vs %d", id, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: waypoint %d differs: %v vs %v", id, i, a[i], b[i])
			}
		}
	}
}

func TestSampleCounts(t *testing.T) {
	tests := []struct {
		id   PatternID
		want int
	}{
		{LeftSweep, 60},
		{RightSweep, 60},
		{TopCascade, 80},
		{Direct, 60},
		{LeftWeave, 180},
		{RightWeave, 180},
		{CenterLoopLeft, 150},
		{CenterLoopRight, 150},
		{EscortColumnLeft, 120},
		{EscortColumnRight, 120},
		{BossEscortLeft, 110 + settleSteps},
		{TopPairs, 60 + settleSteps},
		{DiveSmall, 120 + returnSteps},
		{DiveMedium, 150 + returnSteps},
		{DiveBoss, 100 + returnSteps},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			got := len(Generate(tt.id, diveContext()))
			if got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestEntrancesEndAtTarget 入场路径的终点是编队格子
func TestEntrancesEndAtTarget(t *testing.T) {
	ids := []PatternID{
		LeftSweep, RightSweep, TopCascade, Direct,
		BossEscortLeft, BossEscortRight, BeeSquadronLeft, BeeSquadronRight,
		ButterflyLoop, TopPairs, BeeBottomLeft, BeeBottomRight,
		ButterflyTopLeft, ButterflyTopRight, BossesSingleFile,
	}
	for _, id := range ids {
		for _, cell := range [][2]int{{0, 0}, {2, 5}, {4, 9}} {
			c := NewContext(cell[0], cell[1], 1)
			path := Generate(id, c)
			if path.Last() != c.Target {
				t.Errorf("%s cell %v: last = %v, want %v", id, cell, path.Last(), c.Target)
			}
		}
	}
}

// TestDivesReturnToStart 俯冲路径结束时回到起飞位置
func TestDivesReturnToStart(t *testing.T) {
	for _, kind := range []types.EnemyKind{types.EnemySmall, types.EnemyMedium, types.EnemyBoss} {
		c := diveContext()
		c.Start = image.Pt(40, 80)
		path := GenerateDive(kind, c)
		if path.Last() != c.Start {
			t.Errorf("%v: last = %v, want %v", kind, path.Last(), c.Start)
		}
		if path[0] != c.Start {
			t.Errorf("%v: first = %v, want %v", kind, path[0], c.Start)
		}
	}
}

func TestUnknownPatternFallsBackToDirect(t *testing.T) {
	c := NewContext(1, 1, 0)
	got := Generate("no_such_pattern", c)
	want := Generate(Direct, c)
	if len(got) != len(want) || got.Last() != want.Last() {
		t.Errorf("fallback path = %d points ending %v, want %d ending %v",
			len(got), got.Last(), len(want), want.Last())
	}
}

func TestPhaseAt(t *testing.T) {
	cv := weave(false)
	tests := []struct {
		name      string
		t         float64
		wantPhase int
		wantU     float64
	}{
		{"start", 0, 0, 0},
		{"mid first phase", 0.15, 0, 0.5},
		{"boundary belongs to next phase", 0.3, 1, 0},
		{"bottom crossing", 0.4, 1, 0.5},
		{"climb", 0.65, 2, 0.5},
		{"end inclusive", 1, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, u := cv.PhaseAt(tt.t)
			if idx != tt.wantPhase {
				t.Errorf("phase = %d, want %d", idx, tt.wantPhase)
			}
			if math.Abs(u-tt.wantU) > 1e-9 {
				t.Errorf("u = %f, want %f", u, tt.wantU)
			}
		})
	}
}

// TestWeaveCrossesBottom 横穿阶段贴着底部
func TestWeaveCrossesBottom(t *testing.T) {
	c := NewContext(0, 0, 0)
	path := Generate(LeftWeave, c)
	mid := path[int(0.4*float64(len(path)-1))]
	if mid.Y != int(c.FieldHeight-20) {
		t.Errorf("bottom crossing y = %d, want %d", mid.Y, int(c.FieldHeight-20))
	}
	if path.Last().Y >= 0 {
		t.Errorf("weave should exit above the field, last = %v", path.Last())
	}
}

// TestMirroredPatterns 左右图案关于场地中线对称
func TestMirroredPatterns(t *testing.T) {
	pairs := [][2]PatternID{
		{LeftWeave, RightWeave},
		{CenterLoopLeft, CenterLoopRight},
		{EscortColumnLeft, EscortColumnRight},
	}
	for _, pair := range pairs {
		c := NewContext(0, 0, 2)
		l := Generate(pair[0], c)
		r := Generate(pair[1], c)
		for i := range l {
			if l[i].Y != r[i].Y {
				t.Fatalf("%s/%s waypoint %d: y %d vs %d", pair[0], pair[1], i, l[i].Y, r[i].Y)
			}
			if d := l[i].X + r[i].X - int(c.FieldWidth); d < -1 || d > 1 {
				t.Fatalf("%s/%s waypoint %d: x %d and %d not mirrored", pair[0], pair[1], i, l[i].X, r[i].X)
			}
		}
	}
}

func TestIndexStaggersChallengeStart(t *testing.T) {
	a := Generate(LeftWeave, NewContext(0, 0, 0))
	b := Generate(LeftWeave, NewContext(0, 0, 3))
	if a[0].Y <= b[0].Y {
		t.Errorf("later member should start higher: %v vs %v", a[0], b[0])
	}
}

func TestEntranceForStage(t *testing.T) {
	tests := []struct {
		stage int
		want  PatternID
	}{
		{1, LeftSweep},
		{2, RightSweep},
		{3, TopCascade},
		{4, LeftSweep},
		{8, RightSweep},
		{0, LeftSweep},
	}
	for _, tt := range tests {
		if got := EntranceForStage(tt.stage); got != tt.want {
			t.Errorf("EntranceForStage(%d) = %s, want %s", tt.stage, got, tt.want)
		}
	}
}

func TestSampleEdgeCases(t *testing.T) {
	c := NewContext(0, 0, 0)
	one := Phase{Until: 1, Eval: func(u float64, _ *Context) (float64, float64) { return u * 10, 5 }}

	if got := (Curve{Steps: 0, Phases: []Phase{one}}).Sample(&c); len(got) != 0 {
		t.Errorf("steps 0: len = %d, want 0", len(got))
	}
	if got := (Curve{Steps: 5}).Sample(&c); len(got) != 0 {
		t.Errorf("no phases: len = %d, want 0", len(got))
	}
	got := (Curve{Steps: 1, Phases: []Phase{one}}).Sample(&c)
	if len(got) != 1 || got[0] != image.Pt(0, 5) {
		t.Errorf("steps 1: got %v, want [(0,5)]", got)
	}
	got = (Curve{Steps: 3, Phases: []Phase{one}}).Sample(&c)
	want := Path{image.Pt(0, 5), image.Pt(5, 5), image.Pt(10, 5)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("steps 3: waypoint %d = %v, want %v", i, got[i], want[i])
		}
	}
}
