package entities

import (
	"fmt"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/types"
)

// NewPlayerEntity 创建玩家飞船
//
// 参数:
//   - em: 实体管理器
//   - x, y: 出生位置
//   - speed: 水平速度（像素/秒）
//   - fireCooldown: 射击冷却（秒）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewPlayerEntity(em *ecs.EntityManager, x, y, speed, fireCooldown float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Speed:        speed,
		FireCooldown: fireCooldown,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Frame:   types.PlayerFrame,
		Visible: true,
		Layer:   components.LayerPlayer,
	})
	return id, nil
}
