package systems

import (
	"testing"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/entities"
	"github.com/gonewx/galaga/pkg/types"
)

// scriptedRNG 按顺序返回预设值（超出 n 时取 n-1），用完后一直返回 0
type scriptedRNG struct {
	values []int
	next   int
}

func (r *scriptedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := 0
	if r.next < len(r.values) {
		v = r.values[r.next]
		r.next++
	}
	if v >= n {
		v = n - 1
	}
	return v
}

// recordingSound 记录播放过的音效
type recordingSound struct {
	played  []string
	stopped int
}

func (r *recordingSound) PlaySound(name string) { r.played = append(r.played, name) }
func (r *recordingSound) StopAllSounds()        { r.stopped++ }

func (r *recordingSound) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

// placeEnemy 直接在格子上放一架敌机（跳过入场）
func placeEnemy(t *testing.T, fs *FormationSystem, kind types.EnemyKind, row, col int, state components.EnemyState) ecs.EntityID {
	t.Helper()
	x, y := fs.CellPosition(row, col)
	id, err := entities.NewEnemyEntity(fs.entityManager, kind, types.VariantBlue, x, y)
	if err != nil {
		t.Fatalf("NewEnemyEntity: %v", err)
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](fs.entityManager, id)
	enemy.HasCell = true
	enemy.Row, enemy.Col = row, col
	enemy.State = state
	fs.grid[row][col] = id
	return id
}

// settleAll 把所有占格敌机直接放回编队
func settleAll(fs *FormationSystem) {
	em := fs.entityManager
	for _, id := range fs.Enemies() {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		enemy.State = components.EnemyInFormation
		ecs.RemoveComponent[*components.PathComponent](em, id)
	}
}

func countInState(em *ecs.EntityManager, state components.EnemyState) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if em.IsMarked(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.State == state {
			n++
		}
	}
	return n
}

func enemyOf(em *ecs.EntityManager, id ecs.EntityID) *components.EnemyComponent {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	return enemy
}
