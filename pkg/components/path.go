package components

import (
	"image"
	"math"
)

// PathComponent 路径跟随
//
// 以固定的每帧速度依次逼近航点：距离不超过 Speed 时直接吸附到航点并前进，
// 否则沿方向移动 Speed 像素。匀速推进使曲率密集的路段看起来不会变慢。
type PathComponent struct {
	Points []image.Point
	Index  int
	Speed  float64 // 像素/帧
}

// Done 路径是否已走完
func (p *PathComponent) Done() bool {
	return p.Index >= len(p.Points)
}

// Step 推进一帧
// 返回 true 表示本帧结束时路径已走完。
// 长度为 0 或 1 的路径属于退化路径，第一次调用即完成。
func (p *PathComponent) Step(pos *PositionComponent) bool {
	if len(p.Points) <= 1 {
		if len(p.Points) == 1 {
			pos.X = float64(p.Points[0].X)
			pos.Y = float64(p.Points[0].Y)
		}
		p.Index = len(p.Points)
		return true
	}
	if p.Done() {
		return true
	}

	target := p.Points[p.Index]
	dx := float64(target.X) - pos.X
	dy := float64(target.Y) - pos.Y
	dist := math.Hypot(dx, dy)

	if dist <= p.Speed {
		pos.X = float64(target.X)
		pos.Y = float64(target.Y)
		p.Index++
		return p.Done()
	}

	pos.X += dx / dist * p.Speed
	pos.Y += dy / dist * p.Speed
	return false
}
