package components

import (
	"image"
	"image/color"
)

// SpriteComponent 描述实体当前要绘制的精灵帧
// 核心逻辑只维护帧矩形，具体如何贴图由渲染器决定
type SpriteComponent struct {
	Frame   image.Rectangle // 精灵图上的帧矩形
	FlipH   bool
	FlipV   bool
	Visible bool
	Tint    color.Color // 可选着色，nil 表示原色
	Layer   int         // 绘制层级，小的先画
}

// 绘制层级
const (
	LayerEnemy = iota
	LayerPlayer
	LayerProjectile
	LayerEffect
)
