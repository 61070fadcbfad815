package components

import "image"

// ExplosionComponent 逐帧播放一次的爆炸动画
// 播放完最后一帧后实体被销毁
type ExplosionComponent struct {
	Frames        []image.Rectangle
	FrameDuration float64 // 每帧时长（秒）
	Index         int
	Timer         float64
}

// Done 动画是否播放完毕
func (e *ExplosionComponent) Done() bool {
	return e.Index >= len(e.Frames)
}
