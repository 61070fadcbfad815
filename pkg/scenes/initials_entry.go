package scenes

import (
	"strings"

	"github.com/gonewx/galaga/pkg/game"
)

// initialsAlphabet 名字可用字符，左右键循环选择
const initialsAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ ."

// InitialsEntry 上榜后的三字母名字输入
// 左右键切换当前字母，射击键确认并移到下一位
type InitialsEntry struct {
	letters [3]int // 每一位在 initialsAlphabet 中的下标
	pos     int
}

// NewInitialsEntry 以上次登记的名字为初始值
func NewInitialsEntry(initial string) *InitialsEntry {
	e := &InitialsEntry{}
	runes := []rune(strings.ToUpper(initial))
	for i := range e.letters {
		if i < len(runes) {
			if idx := strings.IndexRune(initialsAlphabet, runes[i]); idx >= 0 {
				e.letters[i] = idx
			}
		}
	}
	return e
}

// Handle 处理一帧输入，只响应本帧新按下的键
func (e *InitialsEntry) Handle(in game.InputSnapshot) {
	if e.Done() {
		return
	}
	n := len(initialsAlphabet)
	switch {
	case in.IsPressed(game.KeyLeft):
		e.letters[e.pos] = (e.letters[e.pos] + n - 1) % n
	case in.IsPressed(game.KeyRight):
		e.letters[e.pos] = (e.letters[e.pos] + 1) % n
	case in.IsPressed(game.KeyFire):
		e.pos++
	}
}

// Done 三位都已确认
func (e *InitialsEntry) Done() bool {
	return e.pos >= len(e.letters)
}

// Cursor 当前正在编辑的位置
func (e *InitialsEntry) Cursor() int {
	return e.pos
}

// Name 当前名字
func (e *InitialsEntry) Name() string {
	var b strings.Builder
	for _, idx := range e.letters {
		b.WriteByte(initialsAlphabet[idx])
	}
	return b.String()
}
