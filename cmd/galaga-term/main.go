// galaga-term 在终端中运行游戏，与图形版共用全部游戏逻辑和排行榜
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

const frameInterval = time.Second / 60

func main() {
	logPath := flag.String("log", "", "日志文件路径（终端被游戏占用，默认不输出日志）")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	configPath := flag.String("config", "", "调参文件路径（默认使用内置参数）")
	mute := flag.Bool("mute", false, "静音启动（游戏中按 m 恢复）")
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "无法打开日志文件: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载调参文件失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	storage, err := gdata.Open(gdata.Config{AppName: "galaga"})
	if err != nil {
		log.Printf("[main] Warning: gdata unavailable: %v", err)
		storage = nil
	}
	settings, err := game.NewSettingsManager(storage)
	if err != nil {
		log.Printf("[main] Warning: settings: %v", err)
	}
	scores := game.NewScoreStore(storage)

	if *mute {
		settings.SetMuted(true)
	}
	sound := newBeepSound(settings)
	if err := sound.Initialize(); err != nil {
		log.Printf("[main] Warning: audio unavailable: %v", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法创建终端屏幕: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "无法初始化终端屏幕: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	g := newTermGame(screen, cfg, utils.NewPRNGService(*seed), sound, scores, settings)
	log.Printf("[main] Terminal session started, seed=%d", g.rng.Seed())
	g.run()
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}
