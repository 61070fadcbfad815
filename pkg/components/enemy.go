package components

import (
	"math"

	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/types"
)

// EnemyState 敌机生命周期状态
type EnemyState int

const (
	// EnemyEntering 沿入场路径飞行
	EnemyEntering EnemyState = iota
	// EnemyInFormation 停留在编队格子中
	EnemyInFormation
	// EnemyAttacking 沿俯冲路径飞行，结束后返回编队
	EnemyAttacking
	// EnemyDestroyed 终态
	EnemyDestroyed
)

// String 返回状态名称
func (s EnemyState) String() string {
	switch s {
	case EnemyEntering:
		return "entering"
	case EnemyInFormation:
		return "in-formation"
	case EnemyAttacking:
		return "attacking"
	case EnemyDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// EnemyComponent 敌机
//
// 不同种类共用同一个结构体，差异全部来自 types.StatsFor(kind) 参数表。
// 编队格子由 FormationSystem 持有，这里的 Row/Col 只是回指。
type EnemyComponent struct {
	Kind    types.EnemyKind
	Variant types.EnemyVariant
	State   EnemyState

	// 编队位置（回指），HasCell 为 false 表示不占格子
	HasCell  bool
	Row, Col int

	HitsRemaining int
	EscortCount   int  // 仅 Boss 使用：本次俯冲携带的护卫数
	IsEscort      bool // 作为护卫随 Boss 俯冲

	// Transit 奖励关敌机：路径走完后直接离场，不进入编队
	Transit bool

	FireCooldown float64 // 当前关卡的开火冷却（秒）
	LastFireTime float64 // 上次开火的模拟时钟时间
	HasFired     bool

	Frame int // 当前动画帧，随全局节拍推进
}

// NewEnemyComponent 按种类参数表创建敌机组件
func NewEnemyComponent(kind types.EnemyKind, variant types.EnemyVariant) *EnemyComponent {
	stats := types.StatsFor(kind)
	return &EnemyComponent{
		Kind:          kind,
		Variant:       variant,
		State:         EnemyEntering,
		HitsRemaining: stats.HitPoints,
		FireCooldown:  FireCooldownFor(kind, 0),
	}
}

// Points 当前被击毁时的分值
// 编队中为基础分；俯冲中翻倍，Boss 则按护卫数量取 400/800/1600
func (e *EnemyComponent) Points() int {
	stats := types.StatsFor(e.Kind)
	if e.State != EnemyAttacking {
		return stats.FormationPoints
	}
	if e.Kind == types.EnemyBoss {
		n := e.EscortCount
		if n < 0 {
			n = 0
		}
		if n >= len(types.BossAttackPoints) {
			n = len(types.BossAttackPoints) - 1
		}
		return types.BossAttackPoints[n]
	}
	return stats.AttackPoints
}

// Hit 处理一次命中，返回 true 表示已被击毁
func (e *EnemyComponent) Hit() bool {
	if e.HitsRemaining > 0 {
		e.HitsRemaining--
	}
	return e.HitsRemaining <= 0
}

// Damaged Boss 是否已经挨过一枪
func (e *EnemyComponent) Damaged() bool {
	return e.HitsRemaining < types.StatsFor(e.Kind).HitPoints
}

// Look 当前外观：受伤的 Boss 显示为紫色，其余保持出生时的配色
func (e *EnemyComponent) Look() types.EnemyVariant {
	if e.Damaged() {
		return types.VariantPurple
	}
	return e.Variant
}

// ApplyDifficulty 按关卡重新计算开火冷却
func (e *EnemyComponent) ApplyDifficulty(stage int) {
	e.FireCooldown = FireCooldownFor(e.Kind, stage)
}

// ShouldFire 开火判定
//
// 参数：
//   - now: 模拟时钟（秒）
//   - y: 敌机当前 Y
//   - playerY: 玩家当前 Y
//   - suppressed: 奖励关等场合整体禁止开火
func (e *EnemyComponent) ShouldFire(now, y, playerY float64, suppressed bool) bool {
	if suppressed || e.State != EnemyAttacking {
		return false
	}
	if !types.StatsFor(e.Kind).CanFire {
		return false
	}
	if e.HasFired && now-e.LastFireTime < e.FireCooldown {
		return false
	}
	if !e.HasFired && now < e.FireCooldown {
		return false
	}
	// 只在位于玩家上方足够远时开火（俯冲途中）
	return y < playerY-config.EnemyFireMargin
}

// MarkFired 记录开火时间
func (e *EnemyComponent) MarkFired(now float64) {
	e.LastFireTime = now
	e.HasFired = true
}

// FireCooldownFor 计算某关卡下的开火冷却
// max(floor, base - min(step*stage, maxReduction))；不能开火的种类返回 +Inf
func FireCooldownFor(kind types.EnemyKind, stage int) float64 {
	stats := types.StatsFor(kind)
	if !stats.CanFire {
		return math.Inf(1)
	}
	reduction := math.Min(config.FireCooldownStep*float64(stage), config.FireCooldownMaxReduction)
	return math.Max(config.FireCooldownFloor, stats.FireCooldown-reduction)
}
