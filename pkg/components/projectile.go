package components

// ProjectileOwner 飞弹归属
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// ProjectileComponent 飞弹
// 速度存放在 VelocityComponent 中
type ProjectileComponent struct {
	Owner ProjectileOwner
}
