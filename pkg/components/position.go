package components

// PositionComponent 实体在场地中的位置（中心点）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 匀速运动速度（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
