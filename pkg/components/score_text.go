package components

// ScoreTextComponent 高分值击杀后短暂显示的漂浮分数
// 生命周期由 LifetimeComponent 控制
type ScoreTextComponent struct {
	Points int
}
