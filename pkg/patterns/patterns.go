package patterns

import (
	"github.com/gonewx/galaga/pkg/types"
)

// PatternID 路径图案标识
type PatternID string

// 通用入场图案（非手工编排关卡按关卡号循环使用）
const (
	LeftSweep  PatternID = "left_sweep"
	RightSweep PatternID = "right_sweep"
	TopCascade PatternID = "top_cascade"
	Direct     PatternID = "direct"
)

// 第 1、2 关手工编排的入场图案
const (
	BossEscortLeft    PatternID = "boss_escort_left"
	BossEscortRight   PatternID = "boss_escort_right"
	BeeSquadronLeft   PatternID = "bee_squadron_left"
	BeeSquadronRight  PatternID = "bee_squadron_right"
	ButterflyLoop     PatternID = "butterfly_loop"
	TopPairs          PatternID = "top_pairs"
	BeeBottomLeft     PatternID = "bee_bottom_left"
	BeeBottomRight    PatternID = "bee_bottom_right"
	ButterflyTopLeft  PatternID = "butterfly_top_left"
	ButterflyTopRight PatternID = "butterfly_top_right"
	BossesSingleFile  PatternID = "bosses_single_file"
)

// 俯冲图案
const (
	DiveSmall  PatternID = "dive_small"
	DiveMedium PatternID = "dive_medium"
	DiveBoss   PatternID = "dive_boss"
)

// 奖励关图案
const (
	LeftWeave         PatternID = "left_weave"
	RightWeave        PatternID = "right_weave"
	CenterLoopLeft    PatternID = "center_loop_left"
	CenterLoopRight   PatternID = "center_loop_right"
	EscortColumnLeft  PatternID = "escort_column_left"
	EscortColumnRight PatternID = "escort_column_right"
)

// Pattern 一种图案的完整描述
type Pattern struct {
	Curve Curve
	// Settle 入场路径末尾追加的、过渡到编队格子的点数
	Settle int
	// Return 俯冲路径末尾追加的、返回俯冲起点的点数
	Return int
}

// 航点数
const (
	settleSteps = 20
	returnSteps = 40
)

var registry = map[PatternID]Pattern{}

func register(id PatternID, p Pattern) {
	registry[id] = p
}

// Lookup 查询图案定义
func Lookup(id PatternID) (Pattern, bool) {
	p, ok := registry[id]
	return p, ok
}

// IDs 返回所有已注册的图案（测试用）
func IDs() []PatternID {
	ids := make([]PatternID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

// Generate 生成路径
//
// 未知图案退化为从场地上方直线飞向目标格子。
//
// 参数：
//   - id: 图案标识
//   - c: 上下文（目标格子、序号、俯冲起点等）
//
// 返回：
//   - Path: 航点序列，同样的输入总是得到同样的输出
func Generate(id PatternID, c Context) Path {
	p, ok := registry[id]
	if !ok {
		p = registry[Direct]
	}

	path := p.Curve.Sample(&c)
	if len(path) == 0 {
		return path
	}
	if p.Settle > 0 {
		path = append(path, leg(path.Last(), c.Target, p.Settle)...)
	}
	if p.Return > 0 {
		path = append(path, leg(path.Last(), c.Start, p.Return)...)
	}
	return path
}

// DiveFor 返回某种敌机的俯冲图案
// 护卫和普通中型敌机都走 8 字
func DiveFor(kind types.EnemyKind) PatternID {
	switch kind {
	case types.EnemySmall:
		return DiveSmall
	case types.EnemyBoss:
		return DiveBoss
	default:
		return DiveMedium
	}
}

// GenerateDive 生成俯冲路径
// c.Start 为起飞位置，c.PlayerX 为玩家 X
func GenerateDive(kind types.EnemyKind, c Context) Path {
	return Generate(DiveFor(kind), c)
}

// EntranceForStage 通用关卡按关卡号循环选择入场图案
func EntranceForStage(stage int) PatternID {
	cycle := []PatternID{LeftSweep, RightSweep, TopCascade}
	if stage < 1 {
		stage = 1
	}
	return cycle[(stage-1)%len(cycle)]
}
