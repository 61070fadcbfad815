package systems

import (
	"log"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/entities"
	"github.com/gonewx/galaga/pkg/event"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/types"
)

// CollisionSystem 飞弹碰撞与计分
//
// 玩家飞弹按网格扫描顺序检测敌机，第一个重叠的敌机获得这次命中（不是最近的）；
// 敌机飞弹只检测玩家。任何飞弹离开可玩区域都会被静默移除。
// 所有移除都是延迟的，本帧内已标记的实体直接跳过。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	formation     *FormationSystem
	players       *PlayerSystem
	gameState     *game.GameState
	dispatcher    *event.Dispatcher

	// OnPlayerHit 敌机飞弹击中玩家时调用
	OnPlayerHit func()
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, fs *FormationSystem, ps *PlayerSystem, gs *game.GameState, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		formation:     fs,
		players:       ps,
		gameState:     gs,
		dispatcher:    dispatcher,
	}
}

// Update 处理本帧的所有碰撞
func (s *CollisionSystem) Update() {
	enemies := s.formation.Enemies()

	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.CollisionComponent](s.entityManager) {
		if s.entityManager.IsMarked(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		box, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		if proj.Owner == components.OwnerPlayer {
			s.checkPlayerMissile(id, pos, box, enemies)
		} else {
			s.checkEnemyMissile(id, pos, box)
		}

		if !s.entityManager.IsMarked(id) && !InStageBounds(box, pos.X, pos.Y) {
			s.entityManager.DestroyEntity(id)
		}
	}
}

func (s *CollisionSystem) checkPlayerMissile(missile ecs.EntityID, pos *components.PositionComponent, box *components.CollisionComponent, enemies []ecs.EntityID) {
	for _, enemyID := range enemies {
		if s.entityManager.IsMarked(enemyID) {
			continue
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, enemyID); ok && !sprite.Visible {
			continue
		}
		if !s.overlaps(missile, pos, box, enemyID) {
			continue
		}
		s.resolveHit(missile, enemyID)
		return
	}
}

func (s *CollisionSystem) checkEnemyMissile(missile ecs.EntityID, pos *components.PositionComponent, box *components.CollisionComponent) {
	player, ok := s.players.Player()
	if !ok {
		return
	}
	if !s.overlaps(missile, pos, box, player) {
		return
	}
	s.entityManager.DestroyEntity(missile)
	if s.OnPlayerHit != nil {
		s.OnPlayerHit()
	}
}

// resolveHit 命中结算
// 每次命中都按命中前的分值计分：Boss 第一次挨打只改变外观，同样得分
func (s *CollisionSystem) resolveHit(missile, enemyID ecs.EntityID) {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)

	points := enemy.Points()
	destroyed := enemy.Hit()
	x, y := pos.X, pos.Y

	s.entityManager.DestroyEntity(missile)
	s.gameState.Hits++
	s.gameState.AddScore(points)
	if points >= config.ScoreTextThreshold {
		if _, err := entities.NewScoreText(s.entityManager, x, y, points); err != nil {
			log.Printf("[CollisionSystem] Failed to create score text: %v", err)
		}
	}

	data := event.EnemyData{Kind: enemy.Kind, X: x, Y: y, Points: points}
	if !destroyed {
		// 受伤外观立即生效，不等下一个节拍
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, enemyID); ok {
			sprite.Frame = types.VariantFrame(enemy.Look(), enemy.Frame)
		}
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: data})
		return
	}

	s.formation.Remove(enemyID)
	if _, err := entities.NewEnemyExplosion(s.entityManager, x, y); err != nil {
		log.Printf("[CollisionSystem] Failed to create explosion: %v", err)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: data})
}

// overlaps 矩形重叠检测，边缘恰好相接不算
func (s *CollisionSystem) overlaps(a ecs.EntityID, aPos *components.PositionComponent, aBox *components.CollisionComponent, b ecs.EntityID) bool {
	bPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, b)
	if !ok {
		return false
	}
	bBox, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, b)
	if !ok {
		return false
	}
	al, at, ar, ab := aBox.Bounds(aPos.X, aPos.Y)
	bl, bt, br, bb := bBox.Bounds(bPos.X, bPos.Y)
	return al < br && bl < ar && at < bb && bt < ab
}
