package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/galaga/pkg/game"
)

// 终端只有按下事件（按住时靠自动重复），没有松开事件。
// 最近 hold 时间内收到过的键视为按住。
const defaultHoldWindow = 400 * time.Millisecond

// KeyState 把终端按键事件折算成 game.InputSnapshot
type KeyState struct {
	hold     time.Duration
	lastSeen map[game.Key]time.Time
	pressed  game.Key
}

// NewKeyState 创建按键状态
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:     hold,
		lastSeen: make(map[game.Key]time.Time),
	}
}

// Press 记录一次按键事件
// 左右互斥：按下一个方向立即松开另一个
func (k *KeyState) Press(key game.Key, now time.Time) {
	k.pressed |= key
	k.lastSeen[key] = now
	switch key {
	case game.KeyLeft:
		delete(k.lastSeen, game.KeyRight)
	case game.KeyRight:
		delete(k.lastSeen, game.KeyLeft)
	}
}

// Snapshot 返回本帧快照并清空本帧按下的键
func (k *KeyState) Snapshot(now time.Time) game.InputSnapshot {
	s := game.InputSnapshot{Pressed: k.pressed}
	for key, t := range k.lastSeen {
		if now.Sub(t) < k.hold {
			s.Held |= key
		} else {
			delete(k.lastSeen, key)
		}
	}
	s.Held |= k.pressed
	k.pressed = 0
	return s
}

// keyFor 终端按键到逻辑按键
func keyFor(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyEscape:
		return game.KeySkip, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return game.KeyLeft, true
		case 'd', 'D', 'l':
			return game.KeyRight, true
		case ' ', 'z', 'Z':
			return game.KeyFire, true
		case 'r', 'R':
			return game.KeyRestart, true
		case 'k', 'K':
			return game.KeyKill, true
		}
	}
	return 0, false
}

// audioActionFor m 静音，- / + 调节音量（= 与 + 同键）
func audioActionFor(ev *tcell.EventKey) game.AudioAction {
	if ev.Key() != tcell.KeyRune {
		return game.AudioNone
	}
	switch ev.Rune() {
	case 'm', 'M':
		return game.AudioToggleMute
	case '-', '_':
		return game.AudioVolumeDown
	case '+', '=':
		return game.AudioVolumeUp
	}
	return game.AudioNone
}

// isQuit Ctrl-C 或 q 退出
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
