package systems

import (
	"log"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/entities"
	"github.com/gonewx/galaga/pkg/event"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/types"
)

// Target 敌机瞄准的玩家位置
type Target struct {
	X, Y  float64
	Alive bool
}

// EnemyBehaviorSystem 敌机行为
//
// 每帧让所有带路径的敌机前进一步（与路径长度无关），
// 路径走完时切换状态；在俯冲途中按开火策略发射飞弹。
type EnemyBehaviorSystem struct {
	entityManager *ecs.EntityManager
	formation     *FormationSystem
	gameState     *game.GameState
	dispatcher    *event.Dispatcher

	fireEnabled bool
}

// NewEnemyBehaviorSystem 创建敌机行为系统
func NewEnemyBehaviorSystem(em *ecs.EntityManager, fs *FormationSystem, gs *game.GameState, dispatcher *event.Dispatcher) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{
		entityManager: em,
		formation:     fs,
		gameState:     gs,
		dispatcher:    dispatcher,
	}
}

// SetFireEnabled 开启/关闭敌机开火（只在可操作阶段开启）
func (s *EnemyBehaviorSystem) SetFireEnabled(enabled bool) {
	s.fireEnabled = enabled
}

// Update 推进所有敌机一帧
func (s *EnemyBehaviorSystem) Update(dt float64, target Target) {
	suppressed := !s.fireEnabled || s.formation.IsChallengeStage()

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager) {
		if s.entityManager.IsMarked(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if path, ok := ecs.GetComponent[*components.PathComponent](s.entityManager, id); ok {
			if enemy.State == components.EnemyEntering || enemy.State == components.EnemyAttacking {
				if path.Step(pos) {
					s.finishPath(id, enemy, pos)
					if s.entityManager.IsMarked(id) {
						continue
					}
				}
			}
		}

		if target.Alive && enemy.ShouldFire(s.gameState.Elapsed, pos.Y, target.Y, suppressed) {
			if _, err := entities.NewEnemyMissile(s.entityManager, pos.X, pos.Y, target.X, target.Y); err == nil {
				enemy.MarkFired(s.gameState.Elapsed)
				s.dispatcher.Dispatch(event.Event{Type: event.EnemyFired})
			}
		}

		s.syncSprite(id, enemy)
	}
}

// finishPath 路径走完后的状态切换
func (s *EnemyBehaviorSystem) finishPath(id ecs.EntityID, enemy *components.EnemyComponent, pos *components.PositionComponent) {
	ecs.RemoveComponent[*components.PathComponent](s.entityManager, id)

	switch enemy.State {
	case components.EnemyEntering:
		if enemy.Transit {
			// 奖励关敌机飞离场地，不计分
			s.formation.Remove(id)
			return
		}
		enemy.State = components.EnemyInFormation
	case components.EnemyAttacking:
		if enemy.Kind == types.EnemyBoss && enemy.EscortCount > 0 {
			log.Printf("[EnemyBehaviorSystem] Boss %d returned with %d escorts", id, enemy.EscortCount)
		}
		enemy.State = components.EnemyInFormation
		enemy.EscortCount = 0
		enemy.IsEscort = false
	default:
		return
	}

	if enemy.HasCell {
		pos.X, pos.Y = s.formation.CellPosition(enemy.Row, enemy.Col)
	}
}

// OnBeat 全局节拍：所有敌机在同一帧切换动画帧
func (s *EnemyBehaviorSystem) OnBeat() {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		enemy.Frame = (enemy.Frame + 1) % 2
		s.syncSprite(id, enemy)
	}
}

func (s *EnemyBehaviorSystem) syncSprite(id ecs.EntityID, enemy *components.EnemyComponent) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Frame = types.VariantFrame(enemy.Look(), enemy.Frame)
	}
}
