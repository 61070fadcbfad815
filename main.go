package main

import (
	"flag"
	"log"

	"github.com/gonewx/galaga/pkg/app"
	"github.com/gonewx/galaga/pkg/embedded"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	configPath := flag.String("config", "", "调参文件路径（默认使用内置 data/galaga.yaml）")
	flag.Parse()

	embedded.Init(dataFS)

	// 存储打不开时排行榜和设置只保存在内存中
	storage, err := gdata.Open(gdata.Config{AppName: "galaga"})
	if err != nil {
		log.Printf("[main] Warning: gdata unavailable: %v", err)
		storage = nil
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		Seed:         *seed,
		ConfigPath:   *configPath,
		Storage:      storage,
		AudioContext: audio.NewContext(game.AudioSampleRate),
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetWindowTitle("Galaga")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
