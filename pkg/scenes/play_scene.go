package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayScene 游戏场景
//
// 每次进入都创建全新的实体管理器和会话状态；
// 游戏结束画面播完后登记成绩并切换到结算场景。
type PlayScene struct {
	svc *Services

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	play          *systems.PlayPhaseSystem
	render        *systems.RenderSystem
	renderer      *EbitenRenderer
	stars         *Starfield

	finished bool
}

// NewPlayScene 创建游戏场景
func NewPlayScene(svc *Services) *PlayScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(svc.Config.StartingLives, svc.Scores.HighScore())
	play := systems.NewPlayPhaseSystem(em, gs, svc.RNG, svc.Sound, nil, svc.Config)

	log.Printf("[PlayScene] New game, lives=%d high=%d seed=%d", gs.Lives, gs.HighScore, svc.RNG.Seed())
	return &PlayScene{
		svc:           svc,
		entityManager: em,
		gameState:     gs,
		play:          play,
		render:        systems.NewRenderSystem(em, gs, play),
		renderer:      NewEbitenRenderer(),
		stars:         NewStarfield(svc.RNG),
	}
}

// Update 推进一帧
func (s *PlayScene) Update(deltaTime float64) {
	in := s.svc.Keys.ReadInput(screenWidth())
	s.play.Update(deltaTime, in)

	s.stars.Scrolling = s.play.Phase() != components.PhaseGameOver
	s.stars.Update(deltaTime)

	if s.play.Done() {
		s.finish()
		s.svc.SceneManager.Load(game.SceneGameOver)
	}
}

// Draw 绘制星空、实体和 HUD
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.stars.Draw(screen)
	s.renderer.Begin(screen)
	s.render.Draw(s.renderer)
}

// Close 离开场景时登记成绩（中途关闭窗口也会登记）
func (s *PlayScene) Close() {
	s.finish()
	s.play.Close()
	if s.svc.Sound != nil {
		s.svc.Sound.StopAllSounds()
	}
}

// finish 把本局成绩写入排行榜，只执行一次
func (s *PlayScene) finish() {
	if s.finished {
		return
	}
	s.finished = true

	result := s.play.Result()
	rank, err := s.svc.Scores.AddScore(s.svc.initials(), result.Score, result.Stage)
	if err != nil {
		log.Printf("[PlayScene] Warning: Failed to save score: %v", err)
	}
	if err := s.svc.Scores.UpdateSessionHigh(result.Score); err != nil {
		log.Printf("[PlayScene] Warning: Failed to save session high: %v", err)
	}
	if s.svc.Session != nil {
		s.svc.Session.Result = result
		s.svc.Session.Rank = rank
	}
	log.Printf("[PlayScene] Game finished: score=%d stage=%d rank=%d", result.Score, result.Stage, rank)
}
