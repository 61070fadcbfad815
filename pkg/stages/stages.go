// Package stages 关卡出场表
//
// 每个关卡由若干出场分组组成，分组给出成员（种类、外观、目标格子）、
// 入场图案和分组延迟。第 1、2 关是手工编排的表，其它普通关卡使用统一布局
// 并按关卡号循环三种通用入场图案；奖励关使用独立的五波表。
package stages

import (
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/patterns"
	"github.com/gonewx/galaga/pkg/types"
)

// Member 分组成员
type Member struct {
	Kind     types.EnemyKind
	Variant  types.EnemyVariant
	Row, Col int
}

// SpawnGroup 一个出场分组
// 第 i 个成员的出场延迟 = Delay + i*Stagger（秒）
type SpawnGroup struct {
	Pattern patterns.PatternID
	Delay   float64
	Stagger float64
	Members []Member
}

// MemberDelay 返回第 i 个成员的出场延迟
func (g SpawnGroup) MemberDelay(i int) float64 {
	return g.Delay + float64(i)*g.Stagger
}

// StagePlan 关卡出场计划
type StagePlan struct {
	Stage       int
	IsChallenge bool
	Groups      []SpawnGroup
}

// Count 计划中的敌机总数
func (p StagePlan) Count() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Members)
	}
	return n
}

// CountKind 计划中某种敌机的数量
func (p StagePlan) CountKind(kind types.EnemyKind) int {
	n := 0
	for _, g := range p.Groups {
		for _, m := range g.Members {
			if m.Kind == kind {
				n++
			}
		}
	}
	return n
}

// IsChallengeStage 奖励关判定：第 3 关，之后每隔 4 关一次
func IsChallengeStage(stage int) bool {
	return stage == 3 || (stage > 3 && (stage-3)%4 == 0)
}

// Plan 返回关卡的出场计划
func Plan(stage int) StagePlan {
	if stage < 1 {
		stage = 1
	}
	switch {
	case IsChallengeStage(stage):
		return StagePlan{Stage: stage, IsChallenge: true, Groups: challengeGroups(stage)}
	case stage == 1:
		return StagePlan{Stage: stage, Groups: stage1Groups(stage)}
	case stage == 2:
		return StagePlan{Stage: stage, Groups: stage2Groups(stage)}
	default:
		return StagePlan{Stage: stage, Groups: standardGroups(stage)}
	}
}

// VariantFor 按种类、格子和关卡选择外观
func VariantFor(kind types.EnemyKind, row, col, stage int) types.EnemyVariant {
	switch kind {
	case types.EnemySmall:
		if stage > 5 {
			return types.VariantYellow
		}
		return types.VariantBlue
	case types.EnemyMedium:
		if (row+col)%2 == 0 {
			return types.VariantRed
		}
		return types.VariantWhite
	default:
		return types.VariantGreen
	}
}

func member(kind types.EnemyKind, row, col, stage int) Member {
	return Member{Kind: kind, Variant: VariantFor(kind, row, col, stage), Row: row, Col: col}
}

// block 按行优先生成矩形区域内的成员
func block(kind types.EnemyKind, rows, cols []int, stage int) []Member {
	out := make([]Member, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			out = append(out, member(kind, r, c, stage))
		}
	}
	return out
}

func span(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// standardGroups 通用布局
// 第 0 行中间 4 格为 Boss，两侧为中型；第 1-2 行中型；第 3-4 行小型。
// 按出场序号错开：Boss 每个 0.1 秒，其它每个 0.05 秒。
func standardGroups(stage int) []SpawnGroup {
	pattern := patterns.EntranceForStage(stage)
	groups := make([]SpawnGroup, 0, config.FormationRows*config.FormationCols)
	index := 0
	for row := 0; row < config.FormationRows; row++ {
		for col := 0; col < config.FormationCols; col++ {
			kind := standardKind(row, col)
			stagger := config.SpawnStagger
			if kind == types.EnemyBoss {
				stagger = config.BossSpawnStagger
			}
			groups = append(groups, SpawnGroup{
				Pattern: pattern,
				Delay:   float64(index) * stagger,
				Members: []Member{member(kind, row, col, stage)},
			})
			index++
		}
	}
	return groups
}

func standardKind(row, col int) types.EnemyKind {
	switch {
	case row == 0 && col >= 3 && col <= 6:
		return types.EnemyBoss
	case row <= 2:
		return types.EnemyMedium
	default:
		return types.EnemySmall
	}
}
