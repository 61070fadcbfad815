package components

// PlayerComponent 玩家飞船
type PlayerComponent struct {
	Speed        float64 // 水平速度（像素/秒）
	FireCooldown float64 // 射击冷却（秒）
	LastFireTime float64 // 上次射击的模拟时钟时间
	HasFired     bool
}

// CanFire 冷却是否结束
func (p *PlayerComponent) CanFire(now float64) bool {
	return !p.HasFired || now >= p.LastFireTime+p.FireCooldown
}
