package systems

import (
	"image"
	"testing"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/types"
)

const testFrame = 1.0 / 60

func newBehaviorFixture() (*ecs.EntityManager, *FormationSystem, *EnemyBehaviorSystem, *game.GameState) {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(config.StartingLives, 0)
	fs := NewFormationSystem(em, &scriptedRNG{}, nil)
	return em, fs, NewEnemyBehaviorSystem(em, fs, gs, nil), gs
}

func projectileCount(em *ecs.EntityManager, owner components.ProjectileOwner) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		if p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id); p.Owner == owner {
			n++
		}
	}
	return n
}

func TestEntryPathCompletionJoinsFormation(t *testing.T) {
	tests := []struct {
		name   string
		points []image.Point
	}{
		{"empty path", nil},
		{"single waypoint", []image.Point{{X: 30, Y: 40}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, fs, bs, _ := newBehaviorFixture()
			id := placeEnemy(t, fs, types.EnemySmall, 3, 7, components.EnemyEntering)
			ecs.AddComponent(em, id, &components.PathComponent{Points: tt.points, Speed: config.EnemyPathSpeed})

			bs.Update(testFrame, Target{})

			enemy := enemyOf(em, id)
			if enemy.State != components.EnemyInFormation {
				t.Fatalf("state = %v, want in-formation", enemy.State)
			}
			if ecs.HasComponent[*components.PathComponent](em, id) {
				t.Error("path component should be removed")
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			wx, wy := fs.CellPosition(3, 7)
			if pos.X != wx || pos.Y != wy {
				t.Errorf("position = (%.1f,%.1f), want cell (%.1f,%.1f)", pos.X, pos.Y, wx, wy)
			}
		})
	}
}

func TestDiveReturnsToCell(t *testing.T) {
	for _, kind := range []types.EnemyKind{types.EnemySmall, types.EnemyMedium, types.EnemyBoss} {
		t.Run(kind.String(), func(t *testing.T) {
			em, fs, bs, _ := newBehaviorFixture()
			id := placeEnemy(t, fs, kind, 2, 4, components.EnemyInFormation)
			fs.launch(id, 60)
			if enemyOf(em, id).State != components.EnemyAttacking {
				t.Fatal("launch should switch to attacking")
			}

			frames := 0
			for enemyOf(em, id).State == components.EnemyAttacking && frames < 5000 {
				fs.Update(testFrame, 60)
				bs.Update(testFrame, Target{})
				frames++
			}

			if enemyOf(em, id).State != components.EnemyInFormation {
				t.Fatalf("dive did not finish after %d frames", frames)
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			wx, wy := fs.CellPosition(2, 4)
			if pos.X != wx || pos.Y != wy {
				t.Errorf("returned to (%.1f,%.1f), want (%.1f,%.1f)", pos.X, pos.Y, wx, wy)
			}
			if got, _ := fs.EnemyAt(2, 4); got != id {
				t.Error("enemy lost its cell during the dive")
			}
		})
	}
}

func TestReturningBossDropsEscortBonus(t *testing.T) {
	em, fs, bs, _ := newBehaviorFixture()
	id := placeEnemy(t, fs, types.EnemyBoss, 0, 4, components.EnemyAttacking)
	enemyOf(em, id).EscortCount = 2
	ecs.AddComponent(em, id, &components.PathComponent{Points: []image.Point{{X: 1, Y: 1}}, Speed: 2})

	bs.Update(testFrame, Target{})

	enemy := enemyOf(em, id)
	if enemy.EscortCount != 0 {
		t.Errorf("escort count = %d, want 0 after return", enemy.EscortCount)
	}
	if enemy.Points() != types.StatsFor(types.EnemyBoss).FormationPoints {
		t.Errorf("points = %d, want formation value", enemy.Points())
	}
}

func TestAttackingEnemyFiresAtPlayer(t *testing.T) {
	em, fs, bs, gs := newBehaviorFixture()
	bs.SetFireEnabled(true)
	gs.Elapsed = 10

	small := placeEnemy(t, fs, types.EnemySmall, 4, 0, components.EnemyAttacking)
	boss := placeEnemy(t, fs, types.EnemyBoss, 0, 3, components.EnemyAttacking)
	far := []image.Point{{X: 0, Y: 60}, {X: 10, Y: 60}}
	ecs.AddComponent(em, small, &components.PathComponent{Points: far, Speed: 2})
	ecs.AddComponent(em, boss, &components.PathComponent{Points: far, Speed: 2})

	target := Target{X: 112, Y: config.PlayerSpawnY, Alive: true}
	bs.Update(testFrame, target)

	if got := projectileCount(em, components.OwnerEnemy); got != 1 {
		t.Fatalf("enemy missiles = %d, want 1 (bosses never fire)", got)
	}

	// 冷却未结束时不再开火
	bs.Update(testFrame, target)
	if got := projectileCount(em, components.OwnerEnemy); got != 1 {
		t.Errorf("enemy missiles = %d after second tick, want 1", got)
	}

	// 关闭开火后即使冷却结束也不开火
	bs.SetFireEnabled(false)
	gs.Elapsed = 100
	bs.Update(testFrame, target)
	if got := projectileCount(em, components.OwnerEnemy); got != 1 {
		t.Errorf("enemy fired while fire disabled")
	}
}

func TestChallengeEnemiesPassThrough(t *testing.T) {
	em, fs, bs, gs := newBehaviorFixture()
	bs.SetFireEnabled(true)
	fs.BuildStage(3)
	fs.SetAttacksEnabled(true)

	target := Target{X: 112, Y: config.PlayerSpawnY, Alive: true}
	frames := 0
	for !fs.IsEmpty() && frames < 20000 {
		gs.Elapsed += testFrame
		fs.Update(testFrame, target.X)
		bs.Update(testFrame, target)
		if n := projectileCount(em, components.OwnerEnemy); n != 0 {
			t.Fatalf("challenge enemy fired at frame %d", frames)
		}
		if err := fs.CheckInvariants(); err != nil {
			t.Fatalf("frame %d: %v", frames, err)
		}
		em.RemoveMarkedEntities()
		frames++
	}

	if !fs.IsEmpty() {
		t.Fatalf("challenge stage not finished after %d frames", frames)
	}
	if gs.Score != 0 {
		t.Errorf("score = %d, enemies leaving the field must not score", gs.Score)
	}
	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)); n != 0 {
		t.Errorf("%d enemies left after the challenge stage", n)
	}
}

func TestOnBeatAdvancesAllFrames(t *testing.T) {
	em, fs, bs, _ := newBehaviorFixture()
	a := placeEnemy(t, fs, types.EnemySmall, 4, 0, components.EnemyInFormation)
	b := placeEnemy(t, fs, types.EnemyMedium, 1, 0, components.EnemyInFormation)

	bs.OnBeat()
	for _, id := range []ecs.EntityID{a, b} {
		enemy := enemyOf(em, id)
		if enemy.Frame != 1 {
			t.Errorf("entity %d frame = %d, want 1", id, enemy.Frame)
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if sprite.Frame != types.VariantFrame(enemy.Variant, 1) {
			t.Errorf("entity %d sprite frame not synced", id)
		}
	}

	bs.OnBeat()
	if enemyOf(em, a).Frame != 0 {
		t.Error("frame should wrap after two beats")
	}
}
