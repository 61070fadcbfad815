// Package patterns 生成敌机的入场、俯冲和奖励关路径
//
// 每条路径由若干"阶段"组成：阶段用结束位置（占整条路径的比例）和一个
// 参数方程描述。Sample 在 [0,1] 上均匀取样，找到 t 所在的阶段，把 t
// 映射到该阶段的局部参数后求值。这样每个阶段都可以单独测试。
//
// 所有生成函数都是纯函数：相同输入总是得到相同的航点序列，坐标取整。
package patterns

import (
	"image"
	"math"

	"github.com/gonewx/galaga/pkg/config"
)

// Path 航点序列
type Path []image.Point

// Last 返回最后一个航点，空路径返回零值
func (p Path) Last() image.Point {
	if len(p) == 0 {
		return image.Point{}
	}
	return p[len(p)-1]
}

// Context 生成路径所需的上下文
type Context struct {
	FieldWidth  float64
	FieldHeight float64

	Row, Col int // 目标编队格子
	Index    int // 在所属分组/波次中的序号，用于错开起点

	Target  image.Point // 编队格子的静止位置（入场路径终点）
	Start   image.Point // 俯冲起点
	PlayerX float64     // 俯冲时玩家的 X
}

// NewContext 按默认场地尺寸创建上下文，Target 取编队格子位置
func NewContext(row, col, index int) Context {
	x, y := config.CellPosition(row, col)
	return Context{
		FieldWidth:  config.FieldWidth,
		FieldHeight: config.FieldHeight,
		Row:         row,
		Col:         col,
		Index:       index,
		Target:      image.Pt(int(math.Round(x)), int(math.Round(y))),
	}
}

// Phase 路径中的一个阶段
type Phase struct {
	// Until 阶段结束位置（全局 t），t < Until 时落在本阶段；最后一个阶段包含 t == 1
	Until float64
	// Eval 局部参数 u ∈ [0,1] 对应的坐标
	Eval func(u float64, c *Context) (float64, float64)
}

// Curve 一段按阶段表定义的曲线
type Curve struct {
	Steps  int
	Phases []Phase
}

// PhaseAt 返回全局参数 t 所在阶段的序号以及局部参数
func (cv Curve) PhaseAt(t float64) (int, float64) {
	start := 0.0
	for i, ph := range cv.Phases {
		last := i == len(cv.Phases)-1
		if t < ph.Until || last {
			span := ph.Until - start
			if span <= 0 {
				return i, 0
			}
			u := (t - start) / span
			return i, clamp01(u)
		}
		start = ph.Until
	}
	return -1, 0
}

// Sample 在曲线上均匀取 Steps 个点
// Steps <= 0 或没有阶段时返回空路径，Steps == 1 只取 t = 0
func (cv Curve) Sample(c *Context) Path {
	if cv.Steps <= 0 || len(cv.Phases) == 0 {
		return Path{}
	}
	path := make(Path, 0, cv.Steps)
	for i := 0; i < cv.Steps; i++ {
		t := 0.0
		if cv.Steps > 1 {
			t = float64(i) / float64(cv.Steps-1)
		}
		idx, u := cv.PhaseAt(t)
		x, y := cv.Phases[idx].Eval(u, c)
		path = append(path, round(x, y))
	}
	return path
}

// leg 从 from 直线过渡到 to，返回不含起点的 steps 个点
func leg(from, to image.Point, steps int) Path {
	out := make(Path, 0, steps)
	for i := 1; i <= steps; i++ {
		u := float64(i) / float64(steps)
		out = append(out, round(
			lerp(float64(from.X), float64(to.X), u),
			lerp(float64(from.Y), float64(to.Y), u),
		))
	}
	return out
}

func round(x, y float64) image.Point {
	return image.Pt(int(math.Round(x)), int(math.Round(y)))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// bezier2 一维二次贝塞尔
func bezier2(p0, p1, p2, t float64) float64 {
	mt := 1 - t
	return mt*mt*p0 + 2*mt*t*p1 + t*t*p2
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
