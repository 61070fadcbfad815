package scenes

import (
	"image/color"
	"math"

	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// RenderScale 逻辑屏幕相对场地坐标的放大倍数
// 放大后 basicfont 的 7x13 字形才能放进 8 像素的 HUD 格子
const RenderScale = 2

// 字形在 HUD 格子里的缩放：7 像素宽拉到 14，13 像素高压到 15.6
const (
	glyphScaleX = 2.0
	glyphScaleY = 1.2
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// EbitenRenderer 用 ebiten 实现 game.Renderer
// 每帧绘制前调用 Begin 指定目标画布
type EbitenRenderer struct {
	atlas  *ebiten.Image
	screen *ebiten.Image
}

// NewEbitenRenderer 创建渲染器，图集在第一次绘制时生成
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// Begin 设置本帧的绘制目标
func (r *EbitenRenderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	if r.atlas == nil {
		r.atlas = ebiten.NewImageFromImage(BuildAtlasImage())
	}
}

// DrawSprite 以 (X, Y) 为中心绘制一帧
func (r *EbitenRenderer) DrawSprite(d game.SpriteDraw) {
	if r.screen == nil || d.Frame.Empty() {
		return
	}
	sub := r.atlas.SubImage(d.Frame).(*ebiten.Image)
	w, h := float64(d.Frame.Dx()), float64(d.Frame.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	sx, sy := 1.0, 1.0
	if d.FlipH {
		sx = -1
	}
	if d.FlipV {
		sy = -1
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(math.Round(d.X), math.Round(d.Y))
	op.GeoM.Scale(RenderScale, RenderScale)
	if d.Tint != nil {
		op.ColorScale.ScaleWithColor(d.Tint)
	}
	op.Filter = ebiten.FilterNearest
	r.screen.DrawImage(sub, op)
}

// DrawText 在场地坐标 (x, y) 处绘制一行等宽文字，(x, y) 为左上角
func (r *EbitenRenderer) DrawText(s string, x, y float64, clr color.Color) {
	if r.screen == nil {
		return
	}
	cell := float64(systems.HUDCharWidth * RenderScale)
	for i, ch := range []rune(s) {
		if ch == ' ' {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Scale(glyphScaleX, glyphScaleY)
		op.GeoM.Translate(x*RenderScale+float64(i)*cell+1, y*RenderScale)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(r.screen, string(ch), hudFace, op)
	}
}
