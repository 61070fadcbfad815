package systems

import (
	"fmt"
	"testing"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/game"
)

type playFixture struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	sound *recordingSound
	play  *PlayPhaseSystem
}

func newPlayFixture(lives int) *playFixture {
	cfg := config.DefaultGameConfig()
	cfg.StartingLives = lives
	return newPlayFixtureWith(cfg)
}

func newPlayFixtureWith(cfg *config.GameConfig) *playFixture {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.StartingLives, 0)
	sound := &recordingSound{}
	return &playFixture{
		em:    em,
		gs:    gs,
		sound: sound,
		play:  NewPlayPhaseSystem(em, gs, &scriptedRNG{}, sound, nil, cfg),
	}
}

func (f *playFixture) tick(dt float64, pressed game.Key) {
	f.play.Update(dt, game.InputSnapshot{Pressed: pressed})
}

// runUntil 推进直到阶段满足条件，返回是否达成
func (f *playFixture) runUntil(phase components.PlayPhase, maxTicks int) bool {
	for i := 0; i < maxTicks; i++ {
		if f.play.Phase() == phase {
			return true
		}
		f.tick(0.1, 0)
	}
	return f.play.Phase() == phase
}

func TestPlayPhaseOrder(t *testing.T) {
	f := newPlayFixture(3)
	if f.play.Phase() != components.PhaseStarting {
		t.Fatalf("initial phase = %v, want starting", f.play.Phase())
	}
	if f.sound.count(game.SoundTheme) != 1 {
		t.Error("theme should play when the game starts")
	}

	seen := []components.PlayPhase{f.play.Phase()}
	for i := 0; i < 200 && f.play.Phase() != components.PhaseActive; i++ {
		f.tick(0.1, 0)
		if p := f.play.Phase(); p != seen[len(seen)-1] {
			seen = append(seen, p)
		}
	}

	want := []components.PlayPhase{
		components.PhaseStarting,
		components.PhaseStageBanner,
		components.PhaseReady,
		components.PhaseActive,
	}
	if len(seen) != len(want) {
		t.Fatalf("phases = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("phases = %v, want %v", seen, want)
		}
	}

	if f.gs.Stage != 1 {
		t.Errorf("stage = %d, want 1", f.gs.Stage)
	}
	if f.gs.Lives != 2 {
		t.Errorf("lives = %d, want 2 after the first ship spawned", f.gs.Lives)
	}
	if _, ok := f.play.Players().Player(); !ok {
		t.Error("player should be on the field")
	}
	if !f.play.Players().ControlEnabled() {
		t.Error("control should be enabled once active")
	}
	if !f.play.State().FlashEnabled {
		t.Error("1UP flashing should start after the intro")
	}
}

func TestControlDisabledBeforeActive(t *testing.T) {
	f := newPlayFixture(3)
	if !f.runUntil(components.PhaseReady, 200) {
		t.Fatal("never reached ready")
	}
	if f.play.Players().ControlEnabled() {
		t.Error("control enabled during ready")
	}

	before := f.gs.Shots
	f.tick(0.01, game.KeyFire)
	if f.gs.Shots != before {
		t.Error("player fired during ready")
	}
}

func TestSkipJumpsToActive(t *testing.T) {
	f := newPlayFixture(3)
	stops := f.sound.stopped

	f.tick(0.016, game.KeySkip)

	if f.play.Phase() != components.PhaseActive {
		t.Fatalf("phase = %v, want active", f.play.Phase())
	}
	if f.gs.Stage != 1 {
		t.Errorf("stage = %d, want 1", f.gs.Stage)
	}
	if f.sound.stopped <= stops {
		t.Error("skip should stop the intro music")
	}

	// 已经可操作时再跳过不产生任何效果
	f.tick(0.016, game.KeySkip)
	if f.play.Phase() != components.PhaseActive || f.gs.Stage != 1 {
		t.Error("skip during active changed the game")
	}
}

func TestPlayerFiresWhenActive(t *testing.T) {
	f := newPlayFixture(3)
	f.tick(0.016, game.KeySkip)

	f.tick(0.016, game.KeyFire)
	if f.gs.Shots != 1 {
		t.Fatalf("shots = %d, want 1", f.gs.Shots)
	}
	if f.sound.count(game.SoundFighterFire) != 1 {
		t.Error("firing should play the fighter sound")
	}

	// 冷却内再次按下无效
	f.tick(0.016, game.KeyFire)
	if f.gs.Shots != 1 {
		t.Errorf("shots = %d, cooldown ignored", f.gs.Shots)
	}
}

func TestKillPlayerRespawns(t *testing.T) {
	f := newPlayFixture(3)
	f.tick(0.016, game.KeySkip)
	first, _ := f.play.Players().Player()

	f.tick(0.016, game.KeyKill)

	if f.play.Phase() != components.PhaseReady {
		t.Fatalf("phase = %v, want ready", f.play.Phase())
	}
	second, ok := f.play.Players().Player()
	if !ok || second == first {
		t.Error("a fresh ship should be spawned")
	}
	if f.gs.Lives != 1 {
		t.Errorf("lives = %d, want 1", f.gs.Lives)
	}
	if f.sound.count(game.SoundExplosion) != 1 {
		t.Error("explosion sound not played")
	}
	if n := len(ecs.GetEntitiesWith1[*components.ProjectileComponent](f.em)); n != 0 {
		t.Errorf("%d projectiles survived the reform", n)
	}

	if !f.runUntil(components.PhaseActive, 100) {
		t.Error("never returned to active after respawn")
	}
}

func TestLastShipLostEndsGame(t *testing.T) {
	f := newPlayFixture(1)
	f.tick(0.016, game.KeySkip)
	if f.gs.Lives != 0 {
		t.Fatalf("lives = %d, want 0 after spawning the only ship", f.gs.Lives)
	}

	f.tick(0.016, game.KeyKill)

	if f.play.Phase() != components.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", f.play.Phase())
	}
	if f.sound.count(game.SoundGameOver) != 1 {
		t.Error("game over sound not played")
	}
	if f.play.Done() {
		t.Error("done before the game over screen finished")
	}

	for i := 0; i < 50 && !f.play.Done(); i++ {
		f.tick(0.1, 0)
	}
	if !f.play.Done() {
		t.Error("game over screen never finished")
	}
	if f.play.Phase() != components.PhaseGameOver {
		t.Error("game over must be terminal")
	}
}

func TestRestartResetsEverything(t *testing.T) {
	f := newPlayFixture(3)
	f.tick(0.016, game.KeySkip)
	f.tick(10, 0)
	f.gs.AddScore(500)
	if len(f.play.Formation().Enemies()) == 0 {
		t.Fatal("expected enemies on the field before restart")
	}

	f.tick(0.016, game.KeyRestart)

	if f.play.Phase() != components.PhaseStarting {
		t.Errorf("phase = %v, want starting", f.play.Phase())
	}
	if f.gs.Stage != 0 || f.gs.Score != 0 || f.gs.Lives != 3 {
		t.Errorf("state not reset: stage=%d score=%d lives=%d", f.gs.Stage, f.gs.Score, f.gs.Lives)
	}
	if f.gs.HighScore != 500 {
		t.Errorf("high score = %d, want 500 kept across restart", f.gs.HighScore)
	}
	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](f.em)); n != 0 {
		t.Errorf("%d enemies survived restart", n)
	}
	if _, ok := f.play.Players().Player(); ok {
		t.Error("player survived restart")
	}
	if f.play.Formation().QueueLen() != 0 || !f.play.Formation().IsEmpty() {
		t.Error("formation not cleared")
	}
	if f.sound.count(game.SoundTheme) != 2 {
		t.Error("restart should replay the theme")
	}
}

func TestStageClearAdvances(t *testing.T) {
	f := newPlayFixture(3)
	f.tick(0.016, game.KeySkip)
	f.tick(10, 0)

	fs := f.play.Formation()
	if fs.QueueLen() != 0 {
		t.Fatalf("queue not drained: %d", fs.QueueLen())
	}
	awards := f.sound.count(game.SoundStageAward)
	for _, id := range fs.Enemies() {
		fs.Remove(id)
	}
	f.tick(0.016, 0)

	if f.play.Phase() != components.PhaseAdvancingStage {
		t.Fatalf("phase = %v, want advancing-stage", f.play.Phase())
	}
	if f.sound.count(game.SoundStageAward) <= awards {
		t.Error("stage clear sound not played")
	}

	if !f.runUntil(components.PhaseStageBanner, 50) {
		t.Fatal("never reached the next stage banner")
	}
	if f.gs.Stage != 2 {
		t.Errorf("stage = %d, want 2", f.gs.Stage)
	}
	if got := fs.QueueLen() + len(fs.Enemies()); got != 50 {
		t.Errorf("stage 2 has %d enemies queued or active, want 50", got)
	}
	if !f.runUntil(components.PhaseActive, 100) {
		t.Error("never became active on stage 2")
	}
	if _, ok := f.play.Players().Player(); !ok || f.gs.Lives != 2 {
		t.Errorf("surviving ship should carry over (lives=%d)", f.gs.Lives)
	}
}

func TestStageBadgesAnimate(t *testing.T) {
	f := newPlayFixture(3)
	f.tick(0.016, game.KeySkip)

	if got := f.play.Badges().Total(); got != 1 {
		t.Fatalf("stage 1 badges = %d, want 1", got)
	}
	for i := 0; i < 10; i++ {
		f.tick(config.StageBadgeStep, 0)
	}
	pc := f.play.State()
	if pc.BadgeAnimating || pc.BadgeStep != 1 {
		t.Errorf("badge animation: animating=%v step=%d", pc.BadgeAnimating, pc.BadgeStep)
	}
}

// TestOneUpFlashTimer 1UP 只在开场结束后闪烁，且与动画节拍各自计时
func TestOneUpFlashTimer(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.AnimationBeat = 0.5
	cfg.TextFlashInterval = 0.375
	f := newPlayFixtureWith(cfg)
	const dt = 0.125

	pc := f.play.State()
	if !pc.Show1Up || pc.FlashEnabled {
		t.Fatalf("initial Show1Up=%v FlashEnabled=%v, want visible and not flashing", pc.Show1Up, pc.FlashEnabled)
	}

	// 开场 6.6 秒内：节拍照常切换，1UP 不动
	beats := 0
	beat := pc.AnimationFlag
	for i := 0; i < 52; i++ {
		f.tick(dt, 0)
		pc = f.play.State()
		if pc.Phase != components.PhaseStarting {
			t.Fatalf("tick %d: phase = %v, want starting", i, pc.Phase)
		}
		if !pc.Show1Up {
			t.Fatalf("tick %d: 1UP toggled during the intro", i)
		}
		if pc.AnimationFlag != beat {
			beats++
			beat = pc.AnimationFlag
		}
	}
	if beats != 13 {
		t.Errorf("beat flips during intro = %d, want 13", beats)
	}

	f.tick(dt, 0)
	pc = f.play.State()
	if pc.Phase != components.PhaseStageBanner || !pc.FlashEnabled {
		t.Fatalf("phase = %v flashing=%v, want stage banner with flashing", pc.Phase, pc.FlashEnabled)
	}

	var flashAt, beatAt []int
	show, beat := pc.Show1Up, pc.AnimationFlag
	for k := 1; k <= 24; k++ {
		f.tick(dt, 0)
		pc = f.play.State()
		if pc.Show1Up != show {
			flashAt = append(flashAt, k)
			show = pc.Show1Up
		}
		if pc.AnimationFlag != beat {
			beatAt = append(beatAt, k)
			beat = pc.AnimationFlag
		}
	}

	wantFlash := []int{2, 5, 8, 11, 14, 17, 20, 23}
	wantBeat := []int{3, 7, 11, 15, 19, 23}
	if fmt.Sprint(flashAt) != fmt.Sprint(wantFlash) {
		t.Errorf("1UP flips at ticks %v, want %v", flashAt, wantFlash)
	}
	if fmt.Sprint(beatAt) != fmt.Sprint(wantBeat) {
		t.Errorf("beat flips at ticks %v, want %v", beatAt, wantBeat)
	}
}

func TestAnimationBeatToggles(t *testing.T) {
	f := newPlayFixture(3)
	start := f.play.State().AnimationFlag

	f.tick(config.AnimationBeat, 0)
	if f.play.State().AnimationFlag == start {
		t.Error("animation flag should flip every beat")
	}
	f.tick(config.AnimationBeat, 0)
	if f.play.State().AnimationFlag != start {
		t.Error("animation flag should flip back on the next beat")
	}
}
