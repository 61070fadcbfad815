package patterns

import "math"

// 第 1、2 关的手工编排图案
// 这些图案不以格子为终点，末尾统一追加 settleSteps 个点过渡到格子

func init() {
	// 从左上角切入，绕 (0.7W, 100) 顺时针画 3/4 圆
	register(BossEscortLeft, Pattern{Settle: settleSteps, Curve: Curve{Steps: 110, Phases: []Phase{
		{Until: 0.2, Eval: func(u float64, c *Context) (float64, float64) {
			return lerp(-30, c.FieldWidth*0.7, u), lerp(30, 20, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			a := -math.Pi/2 + u*math.Pi*1.5
			return c.FieldWidth*0.7 + math.Cos(a)*80, 100 + math.Sin(a)*80
		}},
	}}})

	register(BossEscortRight, Pattern{Settle: settleSteps, Curve: Curve{Steps: 110, Phases: []Phase{
		{Until: 0.2, Eval: func(u float64, c *Context) (float64, float64) {
			return lerp(c.FieldWidth+30, c.FieldWidth*0.3, u), lerp(30, 20, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			a := -math.Pi/2 - u*math.Pi*1.5
			return c.FieldWidth*0.3 + math.Cos(a)*80, 100 + math.Sin(a)*80
		}},
	}}})

	// 从左上俯冲到中部，再向右侧倾斜
	register(BeeSquadronLeft, Pattern{Settle: settleSteps, Curve: Curve{Steps: 80, Phases: []Phase{
		{Until: 0.6, Eval: func(u float64, c *Context) (float64, float64) {
			sx := -20 - float64(c.Index%4)*10
			sy := -20 - float64(c.Index/4)*15
			return lerp(sx, c.FieldWidth*0.4, u), lerp(sy, c.FieldHeight*0.6, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			return lerp(c.FieldWidth*0.4, c.FieldWidth*0.8, u), lerp(c.FieldHeight*0.6, c.FieldHeight*0.8, u)
		}},
	}}})

	register(BeeSquadronRight, Pattern{Settle: settleSteps, Curve: Curve{Steps: 80, Phases: []Phase{
		{Until: 0.6, Eval: func(u float64, c *Context) (float64, float64) {
			sx := c.FieldWidth + 20 + float64(c.Index%4)*10
			sy := -20 - float64(c.Index/4)*15
			return lerp(sx, c.FieldWidth*0.6, u), lerp(sy, c.FieldHeight*0.6, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			return lerp(c.FieldWidth*0.6, c.FieldWidth*0.2, u), lerp(c.FieldHeight*0.6, c.FieldHeight*0.8, u)
		}},
	}}})

	// 从底部单列上升，向右翻一个半圆后回收
	register(ButterflyLoop, Pattern{Settle: settleSteps, Curve: Curve{Steps: 100, Phases: []Phase{
		{Until: 0.3, Eval: func(u float64, c *Context) (float64, float64) {
			sx := c.FieldWidth * 0.2
			sy := c.FieldHeight + 20 + float64(c.Index)*20
			return sx, lerp(sy, c.FieldHeight*0.3, u)
		}},
		{Until: 0.7, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 60.0
			a := math.Pi + u*math.Pi
			cx := c.FieldWidth*0.2 + r
			return cx + math.Cos(a)*r, c.FieldHeight*0.3 + math.Sin(a)*r
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 60.0
			sx := c.FieldWidth * 0.2
			return sx + 2*r - u*r, c.FieldHeight*0.3 - u*50
		}},
	}}})

	// 成对从顶部直线下降
	register(TopPairs, Pattern{Settle: settleSteps, Curve: Curve{Steps: 60, Phases: []Phase{
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			pair := c.Index / 2
			offset := float64(c.Index%2)*30 - 15
			sx := c.FieldWidth/2 + float64(pair)*60 - 30 + offset
			return sx, lerp(-30, c.FieldHeight*0.4, u)
		}},
	}}})

	// 第 2 关：从左下角沿边缘上升，顶部急转
	register(BeeBottomLeft, Pattern{Settle: settleSteps, Curve: Curve{Steps: 90, Phases: []Phase{
		{Until: 0.5, Eval: func(u float64, c *Context) (float64, float64) {
			sx := -20 - float64(c.Index%4)*15
			sy := c.FieldHeight + 20 + float64(c.Index/4)*15
			return sx + u*30, lerp(sy, 40, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 40.0
			sx := -20 - float64(c.Index%4)*15
			cx := sx + 30 + r
			a := math.Pi + u*math.Pi
			return cx + math.Cos(a)*r, 40 + math.Sin(a)*r
		}},
	}}})

	register(BeeBottomRight, Pattern{Settle: settleSteps, Curve: Curve{Steps: 90, Phases: []Phase{
		{Until: 0.5, Eval: func(u float64, c *Context) (float64, float64) {
			sx := c.FieldWidth + 20 + float64(c.Index%4)*15
			sy := c.FieldHeight + 20 + float64(c.Index/4)*15
			return sx - u*30, lerp(sy, 40, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 40.0
			sx := c.FieldWidth + 20 + float64(c.Index%4)*15
			cx := sx - 30 - r
			a := -u * math.Pi
			return cx + math.Cos(a)*r, 40 + math.Sin(a)*r
		}},
	}}})

	// 第 2 关：从上方两角切入中心，各转 3/4 圈
	register(ButterflyTopLeft, Pattern{Settle: settleSteps, Curve: Curve{Steps: 80, Phases: []Phase{
		{Until: 0.4, Eval: func(u float64, c *Context) (float64, float64) {
			sx := -20 - float64(c.Index%4)*10
			sy := -20 - float64(c.Index/4)*10
			return lerp(sx, c.FieldWidth*0.5, u), lerp(sy, c.FieldHeight*0.5, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 50.0
			a := u * math.Pi * 1.5
			cx := c.FieldWidth*0.5 + r
			return cx - math.Cos(a)*r, c.FieldHeight*0.5 - math.Sin(a)*r
		}},
	}}})

	register(ButterflyTopRight, Pattern{Settle: settleSteps, Curve: Curve{Steps: 80, Phases: []Phase{
		{Until: 0.4, Eval: func(u float64, c *Context) (float64, float64) {
			sx := c.FieldWidth + 20 + float64(c.Index%4)*10
			sy := -20 - float64(c.Index/4)*10
			return lerp(sx, c.FieldWidth*0.5, u), lerp(sy, c.FieldHeight*0.5, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			const r = 50.0
			a := u * math.Pi * 1.5
			cx := c.FieldWidth*0.5 - r
			return cx + math.Cos(a)*r, c.FieldHeight*0.5 - math.Sin(a)*r
		}},
	}}})

	// 第 2 关：Boss 单列下降后左右分开
	register(BossesSingleFile, Pattern{Settle: settleSteps, Curve: Curve{Steps: 90, Phases: []Phase{
		{Until: 0.4, Eval: func(u float64, c *Context) (float64, float64) {
			sy := -30 - float64(c.Index)*20
			return c.FieldWidth / 2, lerp(sy, c.FieldHeight*0.5, u)
		}},
		{Until: 1, Eval: func(u float64, c *Context) (float64, float64) {
			dir := 1.0
			if c.Index/2 == 0 {
				dir = -1
			}
			return c.FieldWidth/2 + dir*u*60, c.FieldHeight*0.5 - u*80
		}},
	}}})
}
