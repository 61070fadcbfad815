// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和打开存储。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/scenes"
	"github.com/gonewx/galaga/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 调参文件路径，为空使用内置 data/galaga.yaml
	ConfigPath string
	// Storage gdata 存储，可为 nil（排行榜和设置只存在于内存）
	Storage *gdata.Manager
	// AudioContext 音频上下文，可为 nil（静音）
	AudioContext *audio.Context
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	audioManager             *game.AudioManager
	gameConfig               *config.GameConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultGameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, fmt.Errorf("调参文件加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s", path)

	settingsManager, err := game.NewSettingsManager(cfg.Storage)
	if err != nil {
		log.Printf("[App] Warning: Failed to load settings: %v (using defaults)", err)
	}
	scores := game.NewScoreStore(cfg.Storage)

	audioManager := game.NewAudioManager(cfg.AudioContext, settingsManager)
	audioManager.Preload()
	log.Printf("[App] AudioManager initialized")

	rng := utils.NewPRNGService(cfg.Seed)
	log.Printf("[App] Random seed: %d", rng.Seed())

	sceneManager := game.NewSceneManager()
	svc := &scenes.Services{
		SceneManager: sceneManager,
		Scores:       scores,
		Settings:     settingsManager,
		Sound:        audioManager,
		Config:       gameConfig,
		RNG:          rng,
		Keys:         utils.DefaultKeyBindings(),
		Session:      &scenes.Session{},
	}
	sceneManager.SetSceneFactory(scenes.NewFactory(svc))
	if !sceneManager.Load(game.ScenePlay) {
		return nil, fmt.Errorf("无法创建游戏场景")
	}

	// 移动端始终全屏，不读取窗口设置
	if !utils.IsMobile() && settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		gameConfig:      gameConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// WindowSize 按调参文件中的放大倍数计算窗口尺寸
func (a *App) WindowSize() (int, int) {
	return config.GameWindowWidth * a.gameConfig.WindowScale, config.GameWindowHeight * a.gameConfig.WindowScale
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（仅桌面端）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(!isFullscreen)
	}

	a.settingsManager.ApplyAudioAction(audioKey(inpututil.IsKeyJustPressed), a.audioManager)

	// 敌机路径按帧推进，逻辑固定为每秒 60 帧
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// audioKey M 静音，- / = 调节音量
func audioKey(justPressed func(ebiten.Key) bool) game.AudioAction {
	switch {
	case justPressed(ebiten.KeyM):
		return game.AudioToggleMute
	case justPressed(ebiten.KeyMinus):
		return game.AudioVolumeDown
	case justPressed(ebiten.KeyEqual):
		return game.AudioVolumeUp
	}
	return game.AudioNone
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	// 像素画使用最近邻缩放
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth * scenes.RenderScale, config.GameWindowHeight * scenes.RenderScale
}

// Close 关闭当前场景并保存设置（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
