package stages

import (
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/patterns"
	"github.com/gonewx/galaga/pkg/types"
)

// 第 1 关：两队 Boss+护卫先后从两侧入场，随后是两队小型机、一队中型机盘旋、
// 最后一队中型机补齐顶行两侧
func stage1Groups(stage int) []SpawnGroup {
	bossLeft := append(
		block(types.EnemyBoss, []int{0}, []int{3, 4}, stage),
		block(types.EnemyMedium, []int{1, 2}, span(2, 4), stage)...,
	)
	bossRight := append(
		block(types.EnemyBoss, []int{0}, []int{5, 6}, stage),
		block(types.EnemyMedium, []int{1, 2}, span(5, 7), stage)...,
	)

	return []SpawnGroup{
		{Pattern: patterns.BossEscortLeft, Delay: 0, Stagger: config.GroupMemberStagger, Members: bossLeft},
		{Pattern: patterns.BossEscortRight, Delay: 0.5, Stagger: config.GroupMemberStagger, Members: bossRight},
		{Pattern: patterns.BeeSquadronLeft, Delay: 1.0, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemySmall, []int{3, 4}, span(0, 4), stage)},
		{Pattern: patterns.BeeSquadronRight, Delay: 1.5, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemySmall, []int{3, 4}, span(5, 9), stage)},
		{Pattern: patterns.ButterflyLoop, Delay: 2.0, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemyMedium, []int{1, 2}, []int{0, 1, 8, 9}, stage)},
		{Pattern: patterns.TopPairs, Delay: 2.5, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemyMedium, []int{0}, []int{0, 1, 2, 7, 8, 9}, stage)},
	}
}

// 第 2 关：小型机从底部两侧绕上来，中型机从顶部两侧盘旋，Boss 排成一列压轴
func stage2Groups(stage int) []SpawnGroup {
	return []SpawnGroup{
		{Pattern: patterns.BeeBottomLeft, Delay: 0, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemySmall, []int{3, 4}, span(0, 4), stage)},
		{Pattern: patterns.BeeBottomRight, Delay: 0.5, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemySmall, []int{3, 4}, span(5, 9), stage)},
		{Pattern: patterns.ButterflyTopLeft, Delay: 1.0, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemyMedium, []int{1, 2}, span(0, 4), stage)},
		{Pattern: patterns.ButterflyTopRight, Delay: 1.5, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemyMedium, []int{1, 2}, span(5, 9), stage)},
		{Pattern: patterns.BossesSingleFile, Delay: 2.0, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemyBoss, []int{0}, span(3, 6), stage)},
		{Pattern: patterns.TopPairs, Delay: 2.5, Stagger: config.GroupMemberStagger,
			Members: block(types.EnemyMedium, []int{0}, []int{0, 1, 2, 7, 8, 9}, stage)},
	}
}

// 奖励关五波：左右交织各 8 架（小型与中型各半）、中央左右回环各 4 架中型、两列 Boss 护卫纵队
// 奖励关敌机不进入编队，格子只用于记账（按出场顺序依次分配）
func challengeGroups(stage int) []SpawnGroup {
	cells := &cellAllocator{}
	mixed := func(small, medium int) []Member {
		out := make([]Member, 0, small+medium)
		for i := 0; i < small; i++ {
			out = append(out, cells.next(types.EnemySmall, stage))
		}
		for i := 0; i < medium; i++ {
			out = append(out, cells.next(types.EnemyMedium, stage))
		}
		return out
	}
	column := func() []Member {
		out := mixed(0, 3)
		return append(out, cells.next(types.EnemyBoss, stage))
	}

	// 第二波与第一波相反：先 4 架中型再 4 架小型
	leftWeave := mixed(4, 4)
	rightWeave := append(mixed(0, 4), mixed(4, 0)...)

	st := config.ChallengeMemberStagger
	return []SpawnGroup{
		{Pattern: patterns.LeftWeave, Delay: 0, Stagger: st, Members: leftWeave},
		{Pattern: patterns.RightWeave, Delay: 2.0, Stagger: st, Members: rightWeave},
		{Pattern: patterns.CenterLoopLeft, Delay: 4.0, Stagger: st, Members: mixed(0, 4)},
		{Pattern: patterns.CenterLoopRight, Delay: 4.5, Stagger: st, Members: mixed(0, 4)},
		{Pattern: patterns.EscortColumnLeft, Delay: 6.0, Stagger: st, Members: column()},
		{Pattern: patterns.EscortColumnRight, Delay: 6.0, Stagger: st, Members: column()},
	}
}

// cellAllocator 按行优先依次分配格子
type cellAllocator struct {
	n int
}

func (a *cellAllocator) next(kind types.EnemyKind, stage int) Member {
	row, col := a.n/config.FormationCols, a.n%config.FormationCols
	a.n++
	return member(kind, row, col, stage)
}
