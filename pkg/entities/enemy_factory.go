package entities

import (
	"fmt"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/types"
)

// NewEnemyEntity 创建敌机实体
// 敌机以入场状态创建，路径由 FormationSystem 另行挂载
//
// 参数:
//   - em: 实体管理器
//   - kind: 敌机种类
//   - variant: 外观变体
//   - x, y: 初始位置（通常为路径第一个航点）
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewEnemyEntity(em *ecs.EntityManager, kind types.EnemyKind, variant types.EnemyVariant, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, components.NewEnemyComponent(kind, variant))
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  config.EnemyWidth,
		Height: config.EnemyHeight,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Frame:   types.VariantFrame(variant, 0),
		Visible: true,
		Layer:   components.LayerEnemy,
	})
	return id, nil
}
