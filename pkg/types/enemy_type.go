// Package types 定义共享的基础类型
package types

import "image"

// EnemyKind 敌机种类
type EnemyKind int

const (
	// EnemySmall 小型敌机（蜜蜂），数量最多，分值最低
	EnemySmall EnemyKind = iota
	// EnemyMedium 中型敌机（蝴蝶），可以作为 Boss 护卫
	EnemyMedium
	// EnemyBoss Boss 敌机，需要两次命中，从不发射飞弹
	EnemyBoss
)

// String 返回种类名称（用于日志）
func (k EnemyKind) String() string {
	switch k {
	case EnemySmall:
		return "small"
	case EnemyMedium:
		return "medium"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// EnemyVariant 外观变体，只影响绘制
type EnemyVariant int

const (
	VariantBlue EnemyVariant = iota
	VariantYellow
	VariantRed
	VariantWhite
	VariantGreen
	VariantPurple // Boss 受伤后
)

// EnemyStats 每种敌机的参数表
type EnemyStats struct {
	FormationPoints int     // 在编队中被击毁的分值
	AttackPoints    int     // 俯冲中被击毁的基础分值
	FireCooldown    float64 // 基础开火冷却（秒），CanFire 为 false 时无意义
	CanFire         bool
	HitPoints       int
}

var enemyStats = map[EnemyKind]EnemyStats{
	EnemySmall:  {FormationPoints: 50, AttackPoints: 100, FireCooldown: 2.0, CanFire: true, HitPoints: 1},
	EnemyMedium: {FormationPoints: 80, AttackPoints: 160, FireCooldown: 1.5, CanFire: true, HitPoints: 1},
	EnemyBoss:   {FormationPoints: 150, AttackPoints: 400, CanFire: false, HitPoints: 2},
}

// StatsFor 返回种类对应的参数
func StatsFor(kind EnemyKind) EnemyStats {
	return enemyStats[kind]
}

// BossAttackPoints 俯冲中的 Boss 按护卫数量计分
var BossAttackPoints = [...]int{400, 800, 1600}

// 精灵图帧坐标，每种变体两帧，随全局节拍交替
var variantFrames = map[EnemyVariant][2]image.Rectangle{
	VariantBlue:   {image.Rect(80, 80, 96, 96), image.Rect(96, 80, 112, 96)},
	VariantYellow: {image.Rect(112, 80, 128, 96), image.Rect(128, 80, 144, 96)},
	VariantRed:    {image.Rect(80, 96, 96, 112), image.Rect(96, 96, 112, 112)},
	VariantWhite:  {image.Rect(144, 80, 160, 96), image.Rect(160, 80, 176, 96)},
	VariantGreen:  {image.Rect(112, 96, 128, 112), image.Rect(128, 96, 144, 112)},
	VariantPurple: {image.Rect(144, 96, 160, 112), image.Rect(160, 96, 176, 112)},
}

// VariantFrame 返回变体第 frame 帧（frame 取模 2）
func VariantFrame(v EnemyVariant, frame int) image.Rectangle {
	frames, ok := variantFrames[v]
	if !ok {
		return image.Rectangle{}
	}
	return frames[frame%2]
}

// 其它精灵帧
var (
	PlayerFrame        = image.Rect(184, 55, 200, 71)
	PlayerMissileFrame = image.Rect(246, 67, 249, 75)
	EnemyMissileFrame  = image.Rect(246, 51, 249, 59)

	PlayerExplosionFrames = []image.Rectangle{
		image.Rect(64, 112, 96, 144), image.Rect(96, 112, 128, 144),
		image.Rect(128, 112, 160, 144), image.Rect(160, 112, 192, 144),
	}
	EnemyExplosionFrames = []image.Rectangle{
		image.Rect(224, 80, 240, 96), image.Rect(240, 80, 256, 96), image.Rect(224, 96, 240, 112),
		image.Rect(0, 112, 32, 144), image.Rect(32, 112, 64, 144),
	}
)
