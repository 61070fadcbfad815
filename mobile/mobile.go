//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.galaga -o build/android/galaga.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Galaga.xcframework -v ./mobile
//
// 触摸操作：按住屏幕左右两侧移动，点击射击。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/galaga/pkg/app"
	"github.com/gonewx/galaga/pkg/embedded"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/utils"
)

func init() {
	embedded.Init(dataFS)

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[mobile] Warning: %v", err)
	}
	storage, err := gdata.Open(gdata.Config{AppName: "galaga"})
	if err != nil {
		log.Printf("[mobile] Warning: gdata unavailable at %q: %v", utils.GetStoragePath(), err)
		storage = nil
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:      true,
		Storage:      storage,
		AudioContext: audio.NewContext(game.AudioSampleRate),
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
