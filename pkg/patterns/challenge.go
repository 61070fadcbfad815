package patterns

import "math"

// 奖励关图案
// 敌机穿过场地后离开，不进入编队。同一波次内按 c.Index 错开起点，
// 配合出场延迟保证相互不重叠。

func init() {
	register(LeftWeave, Pattern{Curve: weave(false)})
	register(RightWeave, Pattern{Curve: weave(true)})
	register(CenterLoopLeft, Pattern{Curve: centerLoop(false)})
	register(CenterLoopRight, Pattern{Curve: centerLoop(true)})
	register(EscortColumnLeft, Pattern{Curve: escortColumn(false)})
	register(EscortColumnRight, Pattern{Curve: escortColumn(true)})
}

// mirrorX 镜像时把 x 翻到场地另一侧
func mirrorX(x float64, c *Context, mirror bool) float64 {
	if mirror {
		return c.FieldWidth - x
	}
	return x
}

// weave 沿一侧下降，在底部横穿，沿另一侧上升后从上方离开
func weave(mirror bool) Curve {
	return Curve{Steps: 180, Phases: []Phase{
		{Until: 0.3, Eval: func(u float64, c *Context) (float64, float64) {
			d := float64(c.Index) * 10
			return mirrorX(-20+u*40, c, mirror), lerp(-20-d, c.FieldHeight-20, u)
		}},
		{Until: 0.5, Eval: func(u float64, c *Context) (float64, float64) {
			return mirrorX(20+u*(c.FieldWidth-40), c, mirror), c.FieldHeight - 20
		}},
		{Until: 0.8, Eval: func(u float64, c *Context) (float64, float64) {
			return mirrorX(c.FieldWidth-20, c, mirror), lerp(c.FieldHeight-20, 20, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			return mirrorX(c.FieldWidth-20+u*40, c, mirror), lerp(20, -40, u)
		}},
	}}
}

// centerLoop 从顶部中央进入，在上半场绕一整圈后从上方离开
func centerLoop(mirror bool) Curve {
	const r = 60.0
	return Curve{Steps: 150, Phases: []Phase{
		{Until: 0.1, Eval: func(u float64, c *Context) (float64, float64) {
			off := float64(c.Index) * 15
			x := lerp(c.FieldWidth/2, c.FieldWidth*0.3, u)
			y := lerp(-20-off, c.FieldHeight*0.3-r, u)
			return mirrorX(x, c, mirror), y
		}},
		{Until: 0.7, Eval: func(u float64, c *Context) (float64, float64) {
			a := -math.Pi/2 + u*math.Pi*2
			x := c.FieldWidth*0.3 + math.Cos(a)*r
			y := c.FieldHeight*0.3 + math.Sin(a)*r
			return mirrorX(x, c, mirror), y
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			x := c.FieldWidth*0.3 + u*20
			y := c.FieldHeight*0.3 - r - u*100
			return mirrorX(x, c, mirror), y
		}},
	}}
}

// escortColumn 两列纵队从上方向中间收拢并从底部离开，Boss 排在列尾
func escortColumn(mirror bool) Curve {
	return Curve{Steps: 120, Phases: []Phase{
		{Until: 0.6, Eval: func(u float64, c *Context) (float64, float64) {
			sy := -30 - float64(c.Index%4)*25
			x := c.FieldWidth*0.3 + u*c.FieldWidth*0.1
			return mirrorX(x, c, mirror), lerp(sy, sy+c.FieldHeight+60, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			sy := -30 - float64(c.Index%4)*25
			x := c.FieldWidth * 0.4
			return mirrorX(x, c, mirror), lerp(sy+c.FieldHeight+60, sy+c.FieldHeight+110, u)
		}},
	}}
}
