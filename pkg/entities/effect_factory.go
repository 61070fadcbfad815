package entities

import (
	"fmt"
	"image"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/types"
)

// NewEnemyExplosion 敌机被击毁时的爆炸
func NewEnemyExplosion(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	return newExplosion(em, x, y, types.EnemyExplosionFrames, config.EnemyExplosionFrameDuration)
}

// NewPlayerExplosion 玩家飞船被击毁时的爆炸
func NewPlayerExplosion(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	return newExplosion(em, x, y, types.PlayerExplosionFrames, config.PlayerExplosionFrameDuration)
}

func newExplosion(em *ecs.EntityManager, x, y float64, frames []image.Rectangle, frameDuration float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if len(frames) == 0 {
		return 0, fmt.Errorf("explosion needs at least one frame")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ExplosionComponent{
		Frames:        frames,
		FrameDuration: frameDuration,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Frame:   frames[0],
		Visible: true,
		Layer:   components.LayerEffect,
	})
	return id, nil
}

// NewScoreText 高分值击杀后在击毁位置显示分数
//
// 参数:
//   - em: 实体管理器
//   - x, y: 显示位置
//   - points: 分数
//
// 返回:
//   - ecs.EntityID: 实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewScoreText(em *ecs.EntityManager, x, y float64, points int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ScoreTextComponent{Points: points})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: config.ScoreTextLifetime})
	return id, nil
}
