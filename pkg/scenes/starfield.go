package scenes

import (
	"image/color"

	"github.com/gonewx/galaga/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 背景星空参数
const (
	starCount       = 64
	starScrollSpeed = 40.0 // 像素/秒
	starBlinkPeriod = 0.6
)

var starColors = []color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 80, B: 80, A: 255},
	{R: 80, G: 160, B: 255, A: 255},
	{R: 255, G: 255, B: 80, A: 255},
	{R: 80, G: 255, B: 120, A: 255},
}

// Star 一颗背景星星
type Star struct {
	X, Y  float64
	Color color.RGBA
	Phase float64 // 闪烁相位（秒）
}

// Visible 星星当前是否亮着（亮暗各占半个周期）
func (s Star) Visible() bool {
	t := s.Phase
	for t >= starBlinkPeriod {
		t -= starBlinkPeriod
	}
	return t < starBlinkPeriod/2
}

// Starfield 向下滚动并闪烁的背景星空
type Starfield struct {
	Stars     []Star
	Scrolling bool
}

// intSource 星空只需要整数随机数
type intSource interface {
	Intn(n int) int
}

// NewStarfield 用给定随机源撒下星星
func NewStarfield(rng intSource) *Starfield {
	sf := &Starfield{Stars: make([]Star, starCount), Scrolling: true}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:     float64(rng.Intn(config.FieldWidth)),
			Y:     float64(rng.Intn(config.FieldHeight)),
			Color: starColors[rng.Intn(len(starColors))],
			Phase: float64(rng.Intn(60)) / 100,
		}
	}
	return sf
}

// Update 推进滚动与闪烁，滚出底部的星星回到顶部
func (sf *Starfield) Update(dt float64) {
	for i := range sf.Stars {
		s := &sf.Stars[i]
		s.Phase += dt
		if s.Phase >= starBlinkPeriod {
			s.Phase -= starBlinkPeriod
		}
		if !sf.Scrolling {
			continue
		}
		s.Y += starScrollSpeed * dt
		if s.Y >= config.FieldHeight {
			s.Y -= config.FieldHeight
		}
	}
}

// Draw 在可玩区域内绘制亮着的星星
func (sf *Starfield) Draw(screen *ebiten.Image) {
	for _, s := range sf.Stars {
		if !s.Visible() || s.Y < config.StageTopY || s.Y >= config.StageBottomY {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(s.X*RenderScale), float32(s.Y*RenderScale),
			RenderScale, RenderScale, s.Color, false)
	}
}
