package systems

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/stages"
	"github.com/gonewx/galaga/pkg/types"
)

// HUDCharWidth HUD 文字按等宽 8 像素排版
const HUDCharWidth = 8

// HUD 颜色
var (
	ColorLabel  = color.RGBA{R: 255, A: 255}
	ColorValue  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorBanner = color.RGBA{G: 255, B: 255, A: 255}
	ColorNotice = color.RGBA{R: 255, G: 255, A: 255}
)

// RenderSystem 把实体和 HUD 交给 game.Renderer 绘制
//
// 职责范围：
//   - 游戏世界实体：敌机、玩家、飞弹、爆炸，按 SpriteComponent.Layer 从低到高
//   - 漂浮分数
//   - HUD：1UP、分数、最高分、备用飞船、关卡徽章、阶段横幅
//
// 本系统不知道像素如何落到屏幕上，ebiten 和终端两种前端共用它。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	play          *PlayPhaseSystem // 可为 nil，此时只绘制世界实体
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, play *PlayPhaseSystem) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		play:          play,
	}
}

// Draw 绘制一帧：世界实体在下，HUD 在上
func (s *RenderSystem) Draw(r game.Renderer) {
	s.DrawWorld(r)
	if s.play != nil {
		s.DrawHUD(r)
	}
}

type drawItem struct {
	id     ecs.EntityID
	layer  int
	sprite *components.SpriteComponent
	pos    *components.PositionComponent
}

// DrawWorld 绘制所有可见的世界实体
// 同一层内按实体创建顺序绘制，已标记删除的实体不绘制
func (s *RenderSystem) DrawWorld(r game.Renderer) {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)
	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !sprite.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		items = append(items, drawItem{id: id, layer: sprite.Layer, sprite: sprite, pos: pos})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].layer < items[j].layer
	})

	for _, it := range items {
		r.DrawSprite(game.SpriteDraw{
			X:     it.pos.X,
			Y:     it.pos.Y,
			Frame: it.sprite.Frame,
			FlipH: it.sprite.FlipH,
			FlipV: it.sprite.FlipV,
			Tint:  it.sprite.Tint,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ScoreTextComponent, *components.PositionComponent](s.entityManager) {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		st, _ := ecs.GetComponent[*components.ScoreTextComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		text := strconv.Itoa(st.Points)
		r.DrawText(text, pos.X-textWidth(text)/2, pos.Y-4, ColorBanner)
	}
}

// DrawHUD 绘制分数栏、底栏和阶段横幅
func (s *RenderSystem) DrawHUD(r game.Renderer) {
	pc := s.play.State()

	if pc.Show1Up {
		r.DrawText("1UP", 3*HUDCharWidth, 0, ColorLabel)
	}
	r.DrawText(fmt.Sprintf("%6d", s.gameState.Score), 0, 8, ColorValue)
	drawCentered(r, "HIGH SCORE", 0, ColorLabel)
	drawCentered(r, strconv.Itoa(s.gameState.HighScore), 8, ColorValue)

	// 备用飞船，左下角
	for i := 0; i < s.gameState.Lives; i++ {
		r.DrawSprite(game.SpriteDraw{
			X:     float64(8 + 16*i + 8),
			Y:     config.StageBottomY + 8,
			Frame: types.PlayerFrame,
		})
	}

	s.drawBadges(r, pc)

	if text, clr, ok := s.bannerText(pc.Phase); ok {
		drawCentered(r, text, config.FieldHeight/2, clr)
	}
}

// drawBadges 关卡徽章右对齐排在底栏，动画期间只显示已出现的那几颗
func (s *RenderSystem) drawBadges(r game.Renderer, pc *components.PlayPhaseComponent) {
	var frames []int
	badges := s.play.Badges()
	for i := range stages.BadgeValues {
		for n := 0; n < badges[i]; n++ {
			frames = append(frames, i)
		}
	}
	visible := len(frames)
	if pc.BadgeAnimating && pc.BadgeStep < visible {
		visible = pc.BadgeStep
	}

	width := 0
	for _, i := range frames {
		width += types.BadgeFrames[i].Dx()
	}
	x := config.FieldWidth - width
	for k, i := range frames {
		frame := types.BadgeFrames[i]
		if k < visible {
			r.DrawSprite(game.SpriteDraw{
				X:     float64(x) + float64(frame.Dx())/2,
				Y:     config.StageBottomY + 8,
				Frame: frame,
			})
		}
		x += frame.Dx()
	}
}

// bannerText 阶段横幅文字
func (s *RenderSystem) bannerText(phase components.PlayPhase) (string, color.Color, bool) {
	switch phase {
	case components.PhaseStarting:
		return "PLAYER 1", ColorBanner, true
	case components.PhaseStageBanner:
		if s.play.Formation().IsChallengeStage() {
			return "CHALLENGING STAGE", ColorBanner, true
		}
		return fmt.Sprintf("STAGE %d", s.gameState.Stage), ColorBanner, true
	case components.PhaseReady:
		return "READY", ColorLabel, true
	case components.PhaseGameOver:
		return "GAME OVER", ColorBanner, true
	default:
		return "", nil, false
	}
}

func textWidth(text string) float64 {
	return float64(len(text) * HUDCharWidth)
}

func drawCentered(r game.Renderer, text string, y float64, clr color.Color) {
	r.DrawText(text, (config.FieldWidth-textWidth(text))/2, y, clr)
}
