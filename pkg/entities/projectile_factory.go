package entities

import (
	"fmt"
	"image"
	"math"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/types"
)

// NewPlayerMissile 创建玩家飞弹，垂直向上飞行
//
// 参数:
//   - em: 实体管理器
//   - x, y: 发射位置（飞船中心）
//
// 返回:
//   - ecs.EntityID: 飞弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayerMissile(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	return newMissile(em, components.OwnerPlayer, x, y, 0, -config.PlayerMissileSpeed, types.PlayerMissileFrame)
}

// NewEnemyMissile 创建敌机飞弹，朝发射时玩家所在位置匀速飞行
// 目标与发射点重合时垂直向下
func NewEnemyMissile(em *ecs.EntityManager, x, y, targetX, targetY float64) (ecs.EntityID, error) {
	dx, dy := targetX-x, targetY-y
	dist := math.Hypot(dx, dy)
	vx, vy := 0.0, config.EnemyMissileSpeed
	if dist > 0 {
		vx = dx / dist * config.EnemyMissileSpeed
		vy = dy / dist * config.EnemyMissileSpeed
	}
	return newMissile(em, components.OwnerEnemy, x, y, vx, vy, types.EnemyMissileFrame)
}

func newMissile(em *ecs.EntityManager, owner components.ProjectileOwner, x, y, vx, vy float64, frame image.Rectangle) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.ProjectileComponent{Owner: owner})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  config.MissileWidth,
		Height: config.MissileHeight,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Frame:   frame,
		Visible: true,
		FlipV:   owner == components.OwnerEnemy,
		Layer:   components.LayerProjectile,
	})
	return id, nil
}
