package systems

import (
	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/ecs"
)

// ExplosionSystem 逐帧播放爆炸动画，播完后销毁
type ExplosionSystem struct {
	entityManager *ecs.EntityManager
}

// NewExplosionSystem 创建爆炸动画系统
func NewExplosionSystem(em *ecs.EntityManager) *ExplosionSystem {
	return &ExplosionSystem{entityManager: em}
}

// Update 推进所有爆炸动画
func (s *ExplosionSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](s.entityManager) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		exp.Timer += dt
		for exp.Timer >= exp.FrameDuration && !exp.Done() {
			exp.Timer -= exp.FrameDuration
			exp.Index++
		}
		if exp.Done() {
			s.entityManager.DestroyEntity(id)
			continue
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Frame = exp.Frames[exp.Index]
		}
	}
}
