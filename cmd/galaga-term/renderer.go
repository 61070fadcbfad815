package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/types"
)

// cellSize 一个字符格对应的场地像素，场地正好是 28x36 格
const cellSize = 8

// 场地占用的字符格
const (
	fieldCols = config.FieldWidth / cellSize
	fieldRows = config.FieldHeight / cellSize
)

// termRenderer 用 tcell 字符格实现 game.Renderer
type termRenderer struct {
	screen tcell.Screen
	ox, oy int // 场地左上角所在的字符格
}

func newTermRenderer(screen tcell.Screen) *termRenderer {
	r := &termRenderer{screen: screen}
	r.center()
	return r
}

// center 场地在终端中居中，终端太小时贴左上角
func (r *termRenderer) center() {
	w, h := r.screen.Size()
	r.ox = max(0, (w-fieldCols)/2)
	r.oy = max(0, (h-fieldRows)/2)
}

type glyph struct {
	text  string
	color tcell.Color
}

var variantColors = map[types.EnemyVariant]tcell.Color{
	types.VariantBlue:   tcell.ColorBlue,
	types.VariantYellow: tcell.ColorYellow,
	types.VariantRed:    tcell.ColorRed,
	types.VariantWhite:  tcell.ColorWhite,
	types.VariantGreen:  tcell.ColorGreen,
	types.VariantPurple: tcell.ColorPurple,
}

var explosionGlyphs = []string{"..", "**", "##", "%%", "::"}

// glyphFor 帧对应的字符
func glyphFor(info types.FrameInfo) (glyph, bool) {
	switch info.Kind {
	case types.FramePlayer:
		return glyph{"/\\", tcell.ColorWhite}, true
	case types.FrameEnemy:
		clr := variantColors[info.Variant]
		switch info.Variant {
		case types.VariantBlue, types.VariantYellow:
			return glyph{[2]string{"}{", "><"}[info.Index%2], clr}, true
		case types.VariantRed, types.VariantWhite:
			return glyph{[2]string{"{}", "()"}[info.Index%2], clr}, true
		default:
			return glyph{[2]string{"[]", "]["}[info.Index%2], clr}, true
		}
	case types.FramePlayerMissile:
		return glyph{"|", tcell.ColorYellow}, true
	case types.FrameEnemyMissile:
		return glyph{"!", tcell.ColorRed}, true
	case types.FramePlayerExplosion:
		return glyph{explosionGlyphs[info.Index%len(explosionGlyphs)], tcell.ColorWhite}, true
	case types.FrameEnemyExplosion:
		return glyph{explosionGlyphs[info.Index%len(explosionGlyphs)], tcell.ColorYellow}, true
	case types.FrameBadge:
		return glyph{">", tcell.ColorRed}, true
	}
	return glyph{}, false
}

// DrawSprite 字形以 (X, Y) 为中心，宽度按字符数计
func (r *termRenderer) DrawSprite(d game.SpriteDraw) {
	info, ok := types.DescribeFrame(d.Frame)
	if !ok {
		return
	}
	g, ok := glyphFor(info)
	if !ok {
		return
	}
	runes := []rune(g.text)
	left := d.X - float64(len(runes)*cellSize)/2
	col := int(math.Floor(left/cellSize + 0.5))
	row := int(math.Floor(d.Y / cellSize))
	style := tcell.StyleDefault.Foreground(g.color)
	for i, ch := range runes {
		r.put(col+i, row, ch, style)
	}
}

// DrawText (x, y) 为第一个字符所在格的左上角
func (r *termRenderer) DrawText(s string, x, y float64, clr color.Color) {
	col := int(math.Floor(x / cellSize))
	row := int(math.Floor(y / cellSize))
	style := tcell.StyleDefault.Foreground(toTcellColor(clr))
	for i, ch := range []rune(s) {
		r.put(col+i, row, ch, style)
	}
}

// put 只在场地范围内写字符
func (r *termRenderer) put(col, row int, ch rune, style tcell.Style) {
	if col < 0 || col >= fieldCols || row < 0 || row >= fieldRows {
		return
	}
	r.screen.SetContent(r.ox+col, r.oy+row, ch, nil, style)
}

func toTcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorWhite
	}
	cr, cg, cb, _ := c.RGBA()
	return tcell.NewRGBColor(int32(cr>>8), int32(cg>>8), int32(cb>>8))
}
