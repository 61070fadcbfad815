// Package utils 提供通用工具函数
package utils

import (
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 逻辑按键到物理按键的映射
type KeyBindings map[game.Key][]ebiten.Key

// DefaultKeyBindings 默认键位：方向键/AD 移动，空格/Z 射击，ESC 跳过，R 重开，K 自毁
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		game.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
		game.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
		game.KeyFire:    {ebiten.KeySpace, ebiten.KeyZ},
		game.KeySkip:    {ebiten.KeyEscape},
		game.KeyRestart: {ebiten.KeyR},
		game.KeyKill:    {ebiten.KeyK},
	}
}

// Snapshot 根据按键查询函数生成输入快照
//
// 参数：
//   - held: 物理键当前是否按住
//   - justPressed: 物理键是否本帧按下
//
// 返回：
//   - game.InputSnapshot: 逻辑按键快照
func (b KeyBindings) Snapshot(held, justPressed func(ebiten.Key) bool) game.InputSnapshot {
	var s game.InputSnapshot
	for logical, keys := range b {
		for _, k := range keys {
			if held(k) {
				s.Held |= logical
			}
			if justPressed(k) {
				s.Pressed |= logical
			}
		}
	}
	return s
}

// ReadInput 读取本帧的键盘和触摸输入
//
// 触摸：按住屏幕左侧三分之一向左、右侧三分之一向右，新的触摸点射击。
// 参数 screenWidth 为逻辑屏幕宽度。
func (b KeyBindings) ReadInput(screenWidth int) game.InputSnapshot {
	s := b.Snapshot(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		s.Held |= TouchDirection(x, screenWidth)
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		s.Pressed |= game.KeyFire
		s.Held |= game.KeyFire
	}
	return s
}

// TouchDirection 触摸点对应的方向键，中间区域返回 0
func TouchDirection(x, screenWidth int) game.Key {
	if screenWidth <= 0 {
		screenWidth = config.GameWindowWidth
	}
	switch {
	case x < screenWidth/3:
		return game.KeyLeft
	case x >= screenWidth-screenWidth/3:
		return game.KeyRight
	default:
		return 0
	}
}
