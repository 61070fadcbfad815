package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// 结算画面停留时间
const (
	resultsHold     = 10.0 // 无操作时自动开始下一局
	resultsMinShown = 1.0  // 至少显示这么久才响应按键
)

var rankLabels = [...]string{"1ST", "2ND", "3RD", "4TH", "5TH"}

// GameOverScene 结算场景：命中统计和排行榜
// 上榜时先输入名字
type GameOverScene struct {
	svc      *Services
	renderer *EbitenRenderer
	stars    *Starfield
	entry    *InitialsEntry // 未上榜时为 nil
	timer    float64
}

// NewGameOverScene 创建结算场景
func NewGameOverScene(svc *Services) *GameOverScene {
	s := &GameOverScene{
		svc:      svc,
		renderer: NewEbitenRenderer(),
		stars:    NewStarfield(svc.RNG),
	}
	if svc.Session != nil && svc.Session.Rank > 0 {
		s.entry = NewInitialsEntry(svc.initials())
	}
	return s
}

// Update 处理名字输入与返回游戏
func (s *GameOverScene) Update(deltaTime float64) {
	in := s.svc.Keys.ReadInput(screenWidth())
	s.stars.Update(deltaTime)

	if s.entry != nil && !s.entry.Done() {
		s.entry.Handle(in)
		if s.entry.Done() {
			s.commitInitials(s.entry.Name())
		}
		return
	}

	s.timer += deltaTime
	if s.timer >= resultsHold || (s.timer >= resultsMinShown && in.IsPressed(game.KeyFire|game.KeyRestart)) {
		s.svc.SceneManager.Load(game.ScenePlay)
	}
}

func (s *GameOverScene) commitInitials(name string) {
	if err := s.svc.Scores.Rename(s.svc.Session.Rank, name); err != nil {
		log.Printf("[GameOverScene] Warning: Failed to save initials: %v", err)
	}
	if s.svc.Settings != nil {
		s.svc.Settings.SetInitials(name)
		if err := s.svc.Settings.Save(); err != nil {
			log.Printf("[GameOverScene] Warning: Failed to save settings: %v", err)
		}
	}
}

// Draw 绘制结算画面
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.stars.Draw(screen)
	s.renderer.Begin(screen)

	var result game.Result
	if s.svc.Session != nil {
		result = s.svc.Session.Result
	}

	y := 40.0
	for i, line := range ResultLines(result) {
		clr := color.Color(systems.ColorValue)
		if i == 0 {
			clr = systems.ColorLabel
		}
		s.renderer.DrawText(line, 16, y, clr)
		y += 16
	}

	y += 16
	if s.entry != nil && !s.entry.Done() {
		s.renderer.DrawText("ENTER YOUR INITIALS !", 16, y, systems.ColorLabel)
		y += 16
		s.renderer.DrawText(s.entry.Name(), 96, y, systems.ColorNotice)
		s.renderer.DrawText("-", float64(96+s.entry.Cursor()*systems.HUDCharWidth), y+10, systems.ColorNotice)
		return
	}

	s.renderer.DrawText("THE GALACTIC HEROES", 16, y, systems.ColorLabel)
	y += 16
	rank := 0
	if s.svc.Session != nil {
		rank = s.svc.Session.Rank
	}
	for i, line := range ScoreLines(s.svc.Scores.Scores()) {
		clr := color.Color(systems.ColorBanner)
		if i+1 == rank {
			clr = systems.ColorNotice
		}
		s.renderer.DrawText(line, 16, y, clr)
		y += 12
	}

	if s.timer >= resultsMinShown {
		s.renderer.DrawText("PUSH FIRE TO PLAY", (config.FieldWidth-17*systems.HUDCharWidth)/2, config.StageBottomY-8, systems.ColorValue)
	}
}

// ResultLines 命中统计的几行文字
func ResultLines(r game.Result) []string {
	return []string{
		"-RESULTS-",
		fmt.Sprintf("SHOTS FIRED     %6d", r.Shots),
		fmt.Sprintf("NUMBER OF HITS  %6d", r.Hits),
		fmt.Sprintf("HIT-MISS RATIO %6.1f %%", r.HitRatio()),
	}
}

// ScoreLines 排行榜每名一行
func ScoreLines(scores []game.ScoreRecord) []string {
	lines := make([]string, 0, len(scores))
	for i, rec := range scores {
		label := fmt.Sprintf("%dTH", i+1)
		if i < len(rankLabels) {
			label = rankLabels[i]
		}
		lines = append(lines, fmt.Sprintf("%s %7d  %-3s", label, rec.Score, rec.Name))
	}
	return lines
}
