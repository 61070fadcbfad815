package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/gonewx/galaga/pkg/types"
)

// 没有精灵图资源，图集在启动时按帧表逐像素画出来。
// 每个精灵只记录左半边 8 列，右半边镜像得到；'.' 透明，'1'~'3' 为调色板下标。

const atlasSize = 256

var playerArt = []string{
	"........",
	".......1",
	".......1",
	".......1",
	"......11",
	"...3..11",
	"...3..11",
	"...1.111",
	"...1.112",
	"..111112",
	".1111122",
	"11.11122",
	"1..11.11",
	"1....111",
	"......1.",
	"........",
}

var beeArt = [2][]string{
	{
		"........",
		"........",
		".....3.3",
		"......22",
		"..11.222",
		".111.222",
		"1111.112",
		"1111.112",
		".111.222",
		"..11.112",
		"......22",
		"......23",
		".......3",
		"........",
		"........",
		"........",
	},
	{
		"........",
		"........",
		"11...3.3",
		"111...22",
		"1111.222",
		".111.222",
		"..11.112",
		"....2112",
		"....2222",
		".....112",
		"......22",
		"......23",
		".......3",
		"........",
		"........",
		"........",
	},
}

var butterflyArt = [2][]string{
	{
		"........",
		"........",
		"...3...3",
		"....3..2",
		"11...222",
		"111..212",
		"1111.222",
		".111.212",
		"..111222",
		".111.212",
		"1111.222",
		"111...22",
		"11.....2",
		"........",
		"........",
		"........",
	},
	{
		"........",
		"........",
		"...3...3",
		"....3..2",
		"......22",
		"..11.212",
		".111.222",
		".1111212",
		"..111222",
		".1111212",
		".111.222",
		"..11..22",
		".......2",
		"........",
		"........",
		"........",
	},
}

var bossArt = [2][]string{
	{
		"........",
		"......11",
		".....111",
		"....1121",
		"....1111",
		"..2.1111",
		".22.1311",
		"222.1111",
		"2222.111",
		"22222.11",
		"2222..11",
		"222...11",
		".2.....1",
		"........",
		"........",
		"........",
	},
	{
		"........",
		"......11",
		".....111",
		"....1121",
		"....1111",
		"....1111",
		"...21311",
		"..221111",
		".2222111",
		".2222.11",
		"..22..11",
		"...2..11",
		".......1",
		"........",
		"........",
		"........",
	},
}

var (
	colorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRed    = color.RGBA{R: 230, G: 30, B: 30, A: 255}
	colorBlue   = color.RGBA{R: 30, G: 90, B: 255, A: 255}
	colorYellow = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	colorGreen  = color.RGBA{R: 0, G: 200, B: 90, A: 255}
	colorPurple = color.RGBA{R: 180, G: 60, B: 220, A: 255}
)

type palette [3]color.RGBA

var playerPalette = palette{colorWhite, colorRed, colorBlue}

var variantPalettes = map[types.EnemyVariant]palette{
	types.VariantBlue:   {colorBlue, colorYellow, colorRed},
	types.VariantYellow: {colorYellow, colorBlue, colorRed},
	types.VariantRed:    {colorRed, colorBlue, colorWhite},
	types.VariantWhite:  {colorWhite, colorRed, colorBlue},
	types.VariantGreen:  {colorGreen, colorYellow, colorRed},
	types.VariantPurple: {colorPurple, colorYellow, colorRed},
}

// variantArt 变体所属种类的造型
func variantArt(v types.EnemyVariant, index int) []string {
	switch v {
	case types.VariantBlue, types.VariantYellow:
		return beeArt[index%2]
	case types.VariantRed, types.VariantWhite:
		return butterflyArt[index%2]
	default:
		return bossArt[index%2]
	}
}

// badgeColors 徽章颜色，下标与 types.BadgeFrames 对应
var badgeColors = [...]color.RGBA{colorYellow, colorRed, colorBlue, colorPurple, colorGreen, colorWhite}

// BuildAtlasImage 画出包含所有已知帧的图集
func BuildAtlasImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	for r, info := range types.AllFrames() {
		paintFrame(img, r, info)
	}
	return img
}

func paintFrame(img *image.RGBA, r image.Rectangle, info types.FrameInfo) {
	switch info.Kind {
	case types.FramePlayer:
		paintArt(img, r, playerArt, playerPalette)
	case types.FrameEnemy:
		paintArt(img, r, variantArt(info.Variant, info.Index), variantPalettes[info.Variant])
	case types.FramePlayerMissile:
		fillRect(img, r, colorYellow)
		fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+2), colorRed)
	case types.FrameEnemyMissile:
		fillRect(img, r, colorRed)
		fillRect(img, image.Rect(r.Min.X, r.Max.Y-2, r.Max.X, r.Max.Y), colorWhite)
	case types.FramePlayerExplosion:
		paintBurst(img, r, info.Index, len(types.PlayerExplosionFrames), colorWhite, colorRed)
	case types.FrameEnemyExplosion:
		paintBurst(img, r, info.Index, len(types.EnemyExplosionFrames), colorYellow, colorRed)
	case types.FrameBadge:
		paintBadge(img, r, badgeColors[info.Index%len(badgeColors)])
	}
}

// paintArt 按左半边造型画出对称精灵，造型在帧内居中
func paintArt(img *image.RGBA, r image.Rectangle, art []string, pal palette) {
	width := 2 * len(art[0])
	ox := r.Min.X + (r.Dx()-width)/2
	oy := r.Min.Y + (r.Dy()-len(art))/2
	for y, row := range art {
		for x, c := range row {
			if c < '1' || c > '3' {
				continue
			}
			clr := pal[c-'1']
			img.SetRGBA(ox+x, oy+y, clr)
			img.SetRGBA(ox+width-1-x, oy+y, clr)
		}
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, clr color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, clr)
		}
	}
}

// paintBurst 爆炸：八条放射线，半径随帧序号增大，隔帧错开 22.5 度
func paintBurst(img *image.RGBA, r image.Rectangle, index, total int, inner, outer color.RGBA) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	maxRadius := math.Min(float64(r.Dx()), float64(r.Dy()))/2 - 1
	radius := maxRadius * float64(index+1) / float64(total)
	rot := float64(index%2) * math.Pi / 8

	for k := 0; k < 8; k++ {
		angle := rot + float64(k)*math.Pi/4
		for d := radius * 0.4; d <= radius; d += 0.5 {
			x := int(math.Floor(cx + d*math.Cos(angle)))
			y := int(math.Floor(cy + d*math.Sin(angle)))
			if !(image.Point{X: x, Y: y}).In(r) {
				continue
			}
			clr := outer
			if d < radius*0.7 {
				clr = inner
			}
			img.SetRGBA(x, y, clr)
		}
	}
}

// paintBadge 旗帜形徽章：左侧旗杆，右侧色块
func paintBadge(img *image.RGBA, r image.Rectangle, clr color.RGBA) {
	fillRect(img, image.Rect(r.Min.X+1, r.Min.Y+2, r.Min.X+2, r.Max.Y-1), colorWhite)
	fillRect(img, image.Rect(r.Min.X+2, r.Min.Y+2, r.Max.X-1, r.Min.Y+9), clr)
}
