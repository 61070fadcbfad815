package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/scenes"
	"github.com/gonewx/galaga/pkg/systems"
	"github.com/gonewx/galaga/pkg/utils"
)

// termGame 终端版主循环
// 一局结束后把成绩写入排行榜并显示结算，按开火键开始新的一局
type termGame struct {
	screen   tcell.Screen
	renderer *termRenderer
	keys     *KeyState

	cfg      *config.GameConfig
	rng      *utils.PRNGService
	sound    game.SoundPlayer
	scores   *game.ScoreStore
	settings *game.SettingsManager

	entityManager *ecs.EntityManager
	gameState     *game.GameState
	play          *systems.PlayPhaseSystem
	render        *systems.RenderSystem

	recorded bool
	rank     int
}

func newTermGame(screen tcell.Screen, cfg *config.GameConfig, rng *utils.PRNGService, sound game.SoundPlayer, scores *game.ScoreStore, settings *game.SettingsManager) *termGame {
	g := &termGame{
		screen:   screen,
		renderer: newTermRenderer(screen),
		keys:     NewKeyState(defaultHoldWindow),
		cfg:      cfg,
		rng:      rng,
		sound:    sound,
		scores:   scores,
		settings: settings,
	}
	g.newGame()
	return g
}

// newGame 每局使用新的实体管理器，最高分沿用排行榜榜首
func (g *termGame) newGame() {
	if g.play != nil {
		g.play.Close()
	}
	g.entityManager = ecs.NewEntityManager()
	g.gameState = game.NewGameState(g.cfg.StartingLives, g.scores.HighScore())
	g.play = systems.NewPlayPhaseSystem(g.entityManager, g.gameState, g.rng, g.sound, nil, g.cfg)
	g.render = systems.NewRenderSystem(g.entityManager, g.gameState, g.play)
	g.recorded = false
	g.rank = 0
}

// run 事件在独立 goroutine 中读取，主循环按固定帧率推进
func (g *termGame) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					g.quit()
					return
				}
				if key, ok := keyFor(ev); ok {
					g.keys.Press(key, time.Now())
				}
				g.applyAudio(audioActionFor(ev))
			case *tcell.EventResize:
				g.renderer.center()
				g.screen.Sync()
			}
		case now := <-ticker.C:
			g.step(frameInterval.Seconds(), g.keys.Snapshot(now))
			g.draw()
		}
	}
}

// step 推进一帧
func (g *termGame) step(dt float64, in game.InputSnapshot) {
	if g.play.Done() {
		g.record()
		if in.IsPressed(game.KeyFire) || in.IsPressed(game.KeyRestart) {
			g.newGame()
		}
		return
	}
	g.play.Update(dt, in)
}

// record 把本局成绩写入排行榜，只执行一次
// 终端版不做名字输入，直接使用设置中的默认名字
func (g *termGame) record() {
	if g.recorded {
		return
	}
	g.recorded = true

	result := g.play.Result()
	rank, err := g.scores.AddScore(g.initials(), result.Score, result.Stage)
	if err != nil {
		log.Printf("[termGame] Warning: Failed to save score: %v", err)
	}
	if err := g.scores.UpdateSessionHigh(result.Score); err != nil {
		log.Printf("[termGame] Warning: Failed to save session high: %v", err)
	}
	g.rank = rank
	log.Printf("[termGame] Game finished: score=%d stage=%d rank=%d", result.Score, result.Stage, rank)
}

// quit 中途退出也登记成绩
func (g *termGame) quit() {
	if g.gameState.Score > 0 {
		g.record()
	}
	if g.sound != nil {
		g.sound.StopAllSounds()
	}
}

// applyAudio 音量键只改本次会话，终端版不回写设置
func (g *termGame) applyAudio(action game.AudioAction) {
	if g.settings == nil || action == game.AudioNone {
		return
	}
	g.settings.ApplyAudioAction(action, g.sound)
}

func (g *termGame) initials() string {
	if g.settings == nil {
		return game.DefaultSettings().Initials
	}
	return g.settings.GetSettings().Initials
}

func (g *termGame) draw() {
	g.screen.Clear()
	if g.play.Done() {
		g.drawResults()
	} else {
		g.render.Draw(g.renderer)
	}
	g.screen.Show()
}

// drawResults 结算画面：命中率和排行榜
func (g *termGame) drawResults() {
	y := 4.0 * cellSize
	for _, line := range scenes.ResultLines(g.play.Result()) {
		g.renderer.DrawText(line, 2*cellSize, y, systems.ColorValue)
		y += 2 * cellSize
	}

	y += cellSize
	g.renderer.DrawText("THE GALACTIC HEROES", 4*cellSize, y, systems.ColorBanner)
	y += 2 * cellSize
	for i, line := range scenes.ScoreLines(g.scores.Scores()) {
		clr := systems.ColorValue
		if i+1 == g.rank {
			clr = systems.ColorNotice
		}
		g.renderer.DrawText(line, 3*cellSize, y, clr)
		y += 2 * cellSize
	}

	g.renderer.DrawText("PUSH FIRE TO PLAY", 5*cellSize, float64(config.FieldHeight-4*cellSize), systems.ColorLabel)
}
