package systems

import (
	"log"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/entities"
	"github.com/gonewx/galaga/pkg/event"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/stages"
)

// PlayPhaseSystem 游戏阶段控制器
//
// 顶层计时状态机：
//
//	starting → stage-banner → ready → active → advancing-stage → stage-banner …
//	                                   ↘ (玩家阵亡) ready / game-over
//
// 阻塞计时器在每次切换阶段时清零，一帧最多切换一次，因此不会跳过任何阶段。
// 节拍、1UP 闪烁、徽章动画是并行的非阻塞计时器。
//
// 每帧固定顺序：输入/计时器 → 玩家 → 编队/敌机 → 飞弹/碰撞 → 爆炸/漂浮分数 → 清理。
type PlayPhaseSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	sound         game.SoundPlayer
	soundListener *SoundListener
	dispatcher    *event.Dispatcher
	cfg           config.GameConfig

	formation   *FormationSystem
	behavior    *EnemyBehaviorSystem
	player      *PlayerSystem
	projectiles *ProjectileSystem
	collision   *CollisionSystem
	explosions  *ExplosionSystem
	lifetime    *LifetimeSystem

	phaseEntity ecs.EntityID
	badges      stages.Badges
}

// NewPlayPhaseSystem 创建阶段控制器及其驱动的子系统
//
// 参数：
//   - em: 实体管理器
//   - gs: 会话状态（分数、生命、模拟时钟）
//   - rng: 攻击波随机源
//   - sound: 音效协作者，nil 时不发声
//   - dispatcher: 事件分发器，nil 时内部创建
//   - cfg: 调参，nil 时使用默认值
func NewPlayPhaseSystem(em *ecs.EntityManager, gs *game.GameState, rng RandomSource, sound game.SoundPlayer, dispatcher *event.Dispatcher, cfg *config.GameConfig) *PlayPhaseSystem {
	if sound == nil {
		sound = game.NopSoundPlayer{}
	}
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	s := &PlayPhaseSystem{
		entityManager: em,
		gameState:     gs,
		sound:         sound,
		dispatcher:    dispatcher,
		soundListener: NewSoundListener(dispatcher, sound),
		cfg:           *cfg,
	}

	s.formation = NewFormationSystem(em, rng, dispatcher)
	s.formation.PathSpeed = cfg.EnemyPathSpeed
	s.player = NewPlayerSystem(em, gs, dispatcher)
	s.behavior = NewEnemyBehaviorSystem(em, s.formation, gs, dispatcher)
	s.projectiles = NewProjectileSystem(em)
	s.collision = NewCollisionSystem(em, s.formation, s.player, gs, dispatcher)
	s.collision.OnPlayerHit = s.KillPlayer
	s.explosions = NewExplosionSystem(em)
	s.lifetime = NewLifetimeSystem(em)

	s.start()
	return s
}

// start 进入初始的 starting 阶段
func (s *PlayPhaseSystem) start() {
	s.phaseEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.phaseEntity, &components.PlayPhaseComponent{
		Phase:   components.PhaseStarting,
		Show1Up: true,
	})
	s.badges = stages.Badges{}
	s.sound.StopAllSounds()
	s.sound.PlaySound(game.SoundTheme)
	log.Printf("[PlayPhaseSystem] Starting (lives=%d)", s.gameState.Lives)
}

// State 阶段组件（供 HUD 读取）
func (s *PlayPhaseSystem) State() *components.PlayPhaseComponent {
	pc, ok := ecs.GetComponent[*components.PlayPhaseComponent](s.entityManager, s.phaseEntity)
	if !ok {
		// 阶段实体只会随 Restart 一起重建，这里不应该发生
		assertInvariant(false, "play phase entity %d missing", s.phaseEntity)
		return &components.PlayPhaseComponent{}
	}
	return pc
}

// Phase 当前阶段
func (s *PlayPhaseSystem) Phase() components.PlayPhase {
	return s.State().Phase
}

// Done 游戏结束画面已经展示完毕
func (s *PlayPhaseSystem) Done() bool {
	return s.State().Done
}

// Badges 当前关卡的徽章
func (s *PlayPhaseSystem) Badges() stages.Badges {
	return s.badges
}

// Formation 编队系统
func (s *PlayPhaseSystem) Formation() *FormationSystem {
	return s.formation
}

// Players 玩家系统
func (s *PlayPhaseSystem) Players() *PlayerSystem {
	return s.player
}

// Dispatcher 事件分发器，场景通过它订阅游戏事件
func (s *PlayPhaseSystem) Dispatcher() *event.Dispatcher {
	return s.dispatcher
}

// Result 结算快照，会话结束时写入排行榜
func (s *PlayPhaseSystem) Result() game.Result {
	return s.gameState.Result()
}

// Update 推进一帧
func (s *PlayPhaseSystem) Update(dt float64, in game.InputSnapshot) {
	s.handleDebugInput(in)

	s.gameState.Elapsed += dt
	s.updateTimers(dt)

	s.player.Update(dt, in)

	pc := s.State()
	if s.gameState.Stage > 0 {
		target := s.player.Target()
		s.formation.Update(dt, target.X)
		s.behavior.Update(dt, target)
	}

	s.projectiles.Update(dt)
	s.collision.Update()

	s.explosions.Update(dt)
	s.lifetime.Update(dt)
	s.animateBadges(dt)

	if pc.Phase == components.PhaseActive && s.formation.IsEmpty() {
		s.advanceStage()
	}

	s.entityManager.RemoveMarkedEntities()
}

// updateTimers 阻塞计时器与并行计时器
func (s *PlayPhaseSystem) updateTimers(dt float64) {
	pc := s.State()
	phases := s.cfg.Phases

	switch pc.Phase {
	case components.PhaseStarting:
		pc.BlockingTimer += dt
		if pc.BlockingTimer >= phases.Intro {
			s.doneStarting()
		}
	case components.PhaseStageBanner:
		pc.BlockingTimer += dt
		if pc.BlockingTimer >= phases.StageBanner {
			s.enterReady()
		}
	case components.PhaseReady:
		pc.BlockingTimer += dt
		if pc.BlockingTimer >= phases.Ready {
			s.enterActive()
		}
	case components.PhaseAdvancingStage:
		pc.BlockingTimer += dt
		if pc.BlockingTimer >= phases.StageAdvance {
			s.nextStage()
			s.setPhase(components.PhaseStageBanner)
		}
	case components.PhaseGameOver:
		pc.BlockingTimer += dt
		if pc.BlockingTimer >= phases.GameOver && !pc.Done {
			pc.Done = true
			log.Printf("[PlayPhaseSystem] Game over screen finished, score=%d", s.gameState.Score)
		}
	}

	pc = s.State()
	pc.BeatTimer += dt
	if pc.BeatTimer >= s.cfg.AnimationBeat {
		pc.BeatTimer = 0
		pc.AnimationFlag = !pc.AnimationFlag
		s.behavior.OnBeat()
	}

	if pc.FlashEnabled {
		pc.FlashTimer += dt
		if pc.FlashTimer >= s.cfg.TextFlashInterval {
			pc.FlashTimer = 0
			pc.Show1Up = !pc.Show1Up
		}
	}
}

// animateBadges 关卡徽章逐个出现，每出现一个播放一次音效
func (s *PlayPhaseSystem) animateBadges(dt float64) {
	pc := s.State()
	if !pc.BadgeAnimating {
		return
	}
	if pc.BadgeStep >= pc.BadgeTotal {
		pc.BadgeAnimating = false
		return
	}
	pc.BadgeTimer += dt
	if pc.BadgeTimer >= config.StageBadgeStep {
		pc.BadgeTimer = 0
		pc.BadgeStep++
		s.sound.PlaySound(game.SoundStageAward)
	}
}

func (s *PlayPhaseSystem) setPhase(p components.PlayPhase) {
	pc := s.State()
	from := pc.Phase
	pc.Phase = p
	pc.BlockingTimer = 0
	log.Printf("[PlayPhaseSystem] %v -> %v (stage %d)", from, p, s.gameState.Stage)
	s.dispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseData{From: from.String(), To: p.String()}})
}

func (s *PlayPhaseSystem) doneStarting() {
	s.State().FlashEnabled = true
	s.gameState.Stage = 0
	s.nextStage()
	s.setPhase(components.PhaseStageBanner)
}

// nextStage 关卡号加一并排队新的出场表
func (s *PlayPhaseSystem) nextStage() {
	s.gameState.Stage++
	s.formation.BuildStage(s.gameState.Stage)

	s.badges = stages.CalcStageBadges(s.gameState.Stage)
	pc := s.State()
	pc.BadgeAnimating = true
	pc.BadgeStep = 0
	pc.BadgeTimer = 0
	pc.BadgeTotal = s.badges.Total()

	s.dispatcher.Dispatch(event.Event{Type: event.StageStarted, Data: event.StageData{
		Stage:       s.gameState.Stage,
		IsChallenge: s.formation.IsChallengeStage(),
	}})
}

// enterReady 显示 READY；场上没有飞船时补一架，生命耗尽则直接结束
func (s *PlayPhaseSystem) enterReady() {
	s.setControl(false)
	if _, alive := s.player.Player(); !alive {
		if !s.spawnPlayer() {
			return
		}
	}
	s.setPhase(components.PhaseReady)
}

func (s *PlayPhaseSystem) enterActive() {
	s.setPhase(components.PhaseActive)
	s.setControl(true)
}

// setControl 玩家操作、攻击波、敌机开火一起开关
func (s *PlayPhaseSystem) setControl(enabled bool) {
	s.player.SetControlEnabled(enabled)
	s.formation.SetAttacksEnabled(enabled)
	s.behavior.SetFireEnabled(enabled)
}

// spawnPlayer 消耗一条生命生成飞船；没有生命时转入 game over
func (s *PlayPhaseSystem) spawnPlayer() bool {
	if s.gameState.Lives <= 0 {
		s.showGameOver()
		return false
	}
	s.gameState.Lives--
	_, err := entities.NewPlayerEntity(s.entityManager,
		config.FieldWidth/2, config.PlayerSpawnY, s.cfg.PlayerSpeed, s.cfg.PlayerFireCooldown)
	if err != nil {
		log.Printf("[PlayPhaseSystem] Failed to spawn player: %v", err)
		return false
	}
	log.Printf("[PlayPhaseSystem] Player spawned, %d ships in reserve", s.gameState.Lives)
	return true
}

// KillPlayer 击毁玩家飞船并开始重整
// 清空所有飞弹，回到 READY；生命耗尽时进入 game over
func (s *PlayPhaseSystem) KillPlayer() {
	id, ok := s.player.Player()
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	s.sound.PlaySound(game.SoundExplosion)
	if _, err := entities.NewPlayerExplosion(s.entityManager, pos.X, pos.Y); err != nil {
		log.Printf("[PlayPhaseSystem] Failed to create player explosion: %v", err)
	}
	s.entityManager.DestroyEntity(id)
	s.dispatcher.Dispatch(event.Event{Type: event.PlayerKilled})
	log.Printf("[PlayPhaseSystem] Player killed at stage %d", s.gameState.Stage)

	s.projectiles.Clear()
	s.setControl(false)
	if s.Phase() == components.PhaseActive || s.Phase() == components.PhaseReady {
		s.enterReady()
	}
}

// advanceStage 清版：清空飞弹，稍后进入下一关
func (s *PlayPhaseSystem) advanceStage() {
	s.projectiles.Clear()
	s.formation.SetAttacksEnabled(false)
	s.behavior.SetFireEnabled(false)
	if s.formation.IsChallengeStage() {
		s.sound.PlaySound(game.SoundChallengeEnd)
	} else {
		s.sound.PlaySound(game.SoundStageAward)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.StageCleared, Data: event.StageData{
		Stage:       s.gameState.Stage,
		IsChallenge: s.formation.IsChallengeStage(),
	}})
	s.setPhase(components.PhaseAdvancingStage)
}

func (s *PlayPhaseSystem) showGameOver() {
	s.setControl(false)
	s.sound.PlaySound(game.SoundGameOver)
	s.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	s.setPhase(components.PhaseGameOver)
}

// handleDebugInput 调试按键：跳过开场、重新开始、自毁
func (s *PlayPhaseSystem) handleDebugInput(in game.InputSnapshot) {
	if in.IsPressed(game.KeyRestart) {
		s.Restart()
		return
	}
	if in.IsPressed(game.KeySkip) {
		s.Skip()
	}
	if in.IsPressed(game.KeyKill) {
		s.KillPlayer()
	}
}

// Skip 跳过开场、关卡横幅和 READY，直接进入可操作阶段
func (s *PlayPhaseSystem) Skip() {
	switch s.Phase() {
	case components.PhaseStarting, components.PhaseStageBanner, components.PhaseReady:
	default:
		return
	}
	s.sound.StopAllSounds()
	if s.Phase() == components.PhaseStarting {
		s.doneStarting()
	}
	if s.Phase() == components.PhaseStageBanner {
		s.enterReady()
	}
	if s.Phase() == components.PhaseReady {
		s.enterActive()
	}
}

// Close 本局结束后从分发器上摘下音效监听器
func (s *PlayPhaseSystem) Close() {
	s.soundListener.Detach()
}

// Restart 原子地重置整局：所有实体、队列、计时器一起清空
func (s *PlayPhaseSystem) Restart() {
	s.entityManager.Clear()
	s.formation.Clear()
	s.setControl(false)
	s.gameState.Reset(s.cfg.StartingLives)
	log.Printf("[PlayPhaseSystem] Restart")
	s.start()
}
