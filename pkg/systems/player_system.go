package systems

import (
	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/entities"
	"github.com/gonewx/galaga/pkg/event"
	"github.com/gonewx/galaga/pkg/game"
)

// PlayerSystem 玩家飞船的移动和射击
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	dispatcher    *event.Dispatcher

	controlEnabled bool
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, gs *game.GameState, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		gameState:     gs,
		dispatcher:    dispatcher,
	}
}

// SetControlEnabled 开启/关闭玩家操作
func (s *PlayerSystem) SetControlEnabled(enabled bool) {
	s.controlEnabled = enabled
}

// ControlEnabled 玩家当前是否可操作
func (s *PlayerSystem) ControlEnabled() bool {
	return s.controlEnabled
}

// Player 返回场上存活的玩家飞船
func (s *PlayerSystem) Player() (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		if s.entityManager.IsAlive(id) {
			return id, true
		}
	}
	return 0, false
}

// Target 玩家位置（供敌机瞄准）
func (s *PlayerSystem) Target() Target {
	id, ok := s.Player()
	if !ok {
		return Target{X: config.FieldWidth / 2, Y: config.PlayerSpawnY}
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	return Target{X: pos.X, Y: pos.Y, Alive: true}
}

// Update 处理一帧输入
// 左右移动限制在可玩区域内（右侧多留 PlayerRightMargin），按下射击键时在冷却结束后发射
func (s *PlayerSystem) Update(dt float64, in game.InputSnapshot) {
	id, ok := s.Player()
	if !ok {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	if s.controlEnabled {
		if in.IsHeld(game.KeyLeft) {
			pos.X -= player.Speed * dt
		}
		if in.IsHeld(game.KeyRight) {
			pos.X += player.Speed * dt
		}
	}

	half := config.PlayerWidth / 2
	left, _, right, _ := config.StageBounds()
	if pos.X-half < left {
		pos.X = left + half
	} else if pos.X+half > right-config.PlayerRightMargin {
		pos.X = right - config.PlayerRightMargin - half
	}

	if s.controlEnabled && in.IsPressed(game.KeyFire) && player.CanFire(s.gameState.Elapsed) {
		y := pos.Y - config.PlayerHeight/2 + 10
		if _, err := entities.NewPlayerMissile(s.entityManager, pos.X, y); err == nil {
			player.LastFireTime = s.gameState.Elapsed
			player.HasFired = true
			s.gameState.Shots++
			s.dispatcher.Dispatch(event.Event{Type: event.PlayerFired})
		}
	}
}
