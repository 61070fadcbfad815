package patterns

import "math"

// 俯冲图案
// 所有俯冲从 c.Start 出发，结束后追加 returnSteps 个点回到 c.Start

func init() {
	// 小型敌机：前 40% 朝玩家方向下冲到底部上方 50 像素，之后画半圈折返
	register(DiveSmall, Pattern{Return: returnSteps, Curve: Curve{Steps: 120, Phases: []Phase{
		{Until: 0.4, Eval: func(u float64, c *Context) (float64, float64) {
			sx, sy := float64(c.Start.X), float64(c.Start.Y)
			x := sx + (c.PlayerX-sx)*u*0.5
			y := lerp(sy, c.FieldHeight-50, u)
			return x, y
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 40.0
			sx := float64(c.Start.X)
			mid := sx + (c.PlayerX-sx)*0.5
			// 朝场地中心方向折返
			dir := 1.0
			if mid > c.FieldWidth/2 {
				dir = -1
			}
			a := u * math.Pi
			x := mid + dir*(r-math.Cos(a)*r)
			y := c.FieldHeight - 50 - math.Sin(a)*r*2
			return x, y
		}},
	}}})

	// 中型敌机（含护卫）：两圈 8 字下降
	register(DiveMedium, Pattern{Return: returnSteps, Curve: Curve{Steps: 150, Phases: []Phase{
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			sx, sy := float64(c.Start.X), float64(c.Start.Y)
			a := u * math.Pi * 4
			x := sx + math.Sin(a)*50
			y := sy + u*(c.FieldHeight-sy) + math.Sin(a*2)*20
			return x, y
		}},
	}}})

	// Boss：以起点与玩家 X 的中点为中心画一道大弧
	register(DiveBoss, Pattern{Return: returnSteps, Curve: Curve{Steps: 100, Phases: []Phase{
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 60.0
			sx, sy := float64(c.Start.X), float64(c.Start.Y)
			cx := (sx + c.PlayerX) / 2
			a := u * math.Pi * 1.5
			x := cx + math.Cos(a+math.Pi/2)*r + (sx-cx)*(1-u)
			y := sy + u*(c.FieldHeight*0.7-sy)
			return x, y
		}},
	}}})
}
