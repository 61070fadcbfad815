package systems

import (
	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
)

// ProjectileSystem 飞弹匀速运动
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建飞弹系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{entityManager: em}
}

// Update 按速度移动所有飞弹
func (s *ProjectileSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos.X += vel.VX * dt
		pos.Y += vel.VY * dt
	}
}

// Clear 移除所有飞弹（玩家重生、清版时）
func (s *ProjectileSystem) Clear() {
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
}

// InStageBounds 碰撞盒是否完全位于可玩区域内
func InStageBounds(box *components.CollisionComponent, x, y float64) bool {
	l, t, r, b := box.Bounds(x, y)
	left, top, right, bottom := config.StageBounds()
	return l >= left && t >= top && r <= right && b <= bottom
}
