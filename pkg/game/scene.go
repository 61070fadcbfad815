package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (gameplay, game over screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景被切换出去或程序退出时调用 Close
//
// 游戏场景借此把成绩写入排行榜、停止音乐、取消事件订阅。
type Closer interface {
	Close()
}
