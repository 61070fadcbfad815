package types

import "image"

// BadgeFrames 关卡徽章帧，下标与 stages.BadgeValues（50, 30, 20, 10, 5, 1）对应
var BadgeFrames = [...]image.Rectangle{
	image.Rect(0, 144, 16, 160),
	image.Rect(16, 144, 32, 160),
	image.Rect(32, 144, 48, 160),
	image.Rect(48, 144, 62, 160),
	image.Rect(64, 144, 71, 160),
	image.Rect(72, 144, 79, 160),
}

// FrameKind 帧所画的内容
type FrameKind int

const (
	FrameUnknown FrameKind = iota
	FramePlayer
	FrameEnemy
	FramePlayerMissile
	FrameEnemyMissile
	FramePlayerExplosion
	FrameEnemyExplosion
	FrameBadge
)

// FrameInfo 帧矩形的含义
// 没有精灵图的渲染器（程序化绘制、终端）据此决定画什么
type FrameInfo struct {
	Kind    FrameKind
	Variant EnemyVariant // 仅 FrameEnemy
	Index   int          // 动画帧序号或徽章下标
}

var frameIndex = buildFrameIndex()

func buildFrameIndex() map[image.Rectangle]FrameInfo {
	idx := map[image.Rectangle]FrameInfo{
		PlayerFrame:        {Kind: FramePlayer},
		PlayerMissileFrame: {Kind: FramePlayerMissile},
		EnemyMissileFrame:  {Kind: FrameEnemyMissile},
	}
	for v, frames := range variantFrames {
		for i, r := range frames {
			idx[r] = FrameInfo{Kind: FrameEnemy, Variant: v, Index: i}
		}
	}
	for i, r := range PlayerExplosionFrames {
		idx[r] = FrameInfo{Kind: FramePlayerExplosion, Index: i}
	}
	for i, r := range EnemyExplosionFrames {
		idx[r] = FrameInfo{Kind: FrameEnemyExplosion, Index: i}
	}
	for i, r := range BadgeFrames {
		idx[r] = FrameInfo{Kind: FrameBadge, Index: i}
	}
	return idx
}

// DescribeFrame 查询帧矩形的含义
func DescribeFrame(r image.Rectangle) (FrameInfo, bool) {
	info, ok := frameIndex[r]
	return info, ok
}

// AllFrames 返回所有已知帧（用于预先生成图集）
func AllFrames() map[image.Rectangle]FrameInfo {
	out := make(map[image.Rectangle]FrameInfo, len(frameIndex))
	for r, info := range frameIndex {
		out[r] = info
	}
	return out
}
