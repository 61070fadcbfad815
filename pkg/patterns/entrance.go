package patterns

import "math"

// 入场图案
// 通用图案：左右扫入（二次贝塞尔）、顶部瀑布（衰减正弦）、直线兜底

func init() {
	register(LeftSweep, Pattern{Curve: Curve{Steps: 60, Phases: []Phase{
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			startY := 50 + float64(c.Row)*20
			x := bezier2(-20, c.FieldWidth*0.3, float64(c.Target.X), u)
			y := bezier2(startY, c.FieldHeight*0.7, float64(c.Target.Y), u)
			return x, y
		}},
	}}})

	register(RightSweep, Pattern{Curve: Curve{Steps: 60, Phases: []Phase{
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			startY := 50 + float64(c.Row)*20
			x := bezier2(c.FieldWidth+20, c.FieldWidth*0.7, float64(c.Target.X), u)
			y := bezier2(startY, c.FieldHeight*0.7, float64(c.Target.Y), u)
			return x, y
		}},
	}}})

	// 正弦摆动振幅 30、频率 2，随 (1-u) 衰减，到达编队高度时归零
	register(TopCascade, Pattern{Curve: Curve{Steps: 80, Phases: []Phase{
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			startX := c.FieldWidth/2 + float64(c.Col-5)*20
			x := lerp(startX, float64(c.Target.X), u) + math.Sin(u*math.Pi*2)*30*(1-u)
			y := lerp(-20, float64(c.Target.Y), u)
			return x, y
		}},
	}}})

	register(Direct, Pattern{Curve: Curve{Steps: 60, Phases: []Phase{
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			startX := c.FieldWidth/2 + float64(c.Col-5)*20
			return lerp(startX, float64(c.Target.X), u), lerp(-30, float64(c.Target.Y), u)
		}},
	}}})
}
