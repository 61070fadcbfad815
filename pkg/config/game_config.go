package config

import (
	"fmt"
	"os"

	"github.com/gonewx/galaga/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内置调参文件路径（embed.FS 中）
const DefaultGameConfigPath = "data/galaga.yaml"

// PhaseDurations 各游戏阶段的阻塞时长（秒）
type PhaseDurations struct {
	Intro        float64 `yaml:"intro"`
	StageBanner  float64 `yaml:"stageBanner"`
	Ready        float64 `yaml:"ready"`
	StageAdvance float64 `yaml:"stageAdvance"`
	GameOver     float64 `yaml:"gameOver"`
}

// GameConfig 可调参数
// 难度曲线（攻击频率、开火冷却）不在此处，始终使用固定公式
type GameConfig struct {
	WindowScale        int            `yaml:"windowScale"`        // 窗口放大倍数
	StartingLives      int            `yaml:"startingLives"`      // 初始生命数
	PlayerSpeed        float64        `yaml:"playerSpeed"`        // 玩家水平速度（像素/秒）
	PlayerFireCooldown float64        `yaml:"playerFireCooldown"` // 玩家射击冷却（秒）
	EnemyPathSpeed     float64        `yaml:"enemyPathSpeed"`     // 路径跟随速度（像素/帧）
	AnimationBeat      float64        `yaml:"animationBeat"`      // 帧切换节拍（秒）
	TextFlashInterval  float64        `yaml:"textFlashInterval"`  // 1UP 闪烁间隔（秒）
	Phases             PhaseDurations `yaml:"phases"`
}

// DefaultGameConfig 返回全部使用常量默认值的配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		WindowScale:        2,
		StartingLives:      StartingLives,
		PlayerSpeed:        PlayerSpeed,
		PlayerFireCooldown: PlayerFireCooldown,
		EnemyPathSpeed:     EnemyPathSpeed,
		AnimationBeat:      AnimationBeat,
		TextFlashInterval:  TextFlashInterval,
		Phases: PhaseDurations{
			Intro:        IntroDuration,
			StageBanner:  StageBannerDuration,
			Ready:        ReadyDuration,
			StageAdvance: StageAdvanceDuration,
			GameOver:     GameOverDuration,
		},
	}
}

// LoadGameConfig 加载调参文件
//
// 以 "data/" 开头的路径从嵌入资源读取，其余路径从磁盘读取。
// 文件中缺省的字段使用默认值。
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *GameConfig: 合并默认值后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 内容并校验
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.WindowScale < 1 || cfg.WindowScale > 8 {
		return fmt.Errorf("windowScale must be between 1 and 8, got %d", cfg.WindowScale)
	}
	if cfg.StartingLives < 1 {
		return fmt.Errorf("startingLives must be at least 1, got %d", cfg.StartingLives)
	}
	if cfg.PlayerSpeed <= 0 {
		return fmt.Errorf("playerSpeed must be positive, got %v", cfg.PlayerSpeed)
	}
	if cfg.PlayerFireCooldown < 0 {
		return fmt.Errorf("playerFireCooldown cannot be negative, got %v", cfg.PlayerFireCooldown)
	}
	if cfg.EnemyPathSpeed <= 0 {
		return fmt.Errorf("enemyPathSpeed must be positive, got %v", cfg.EnemyPathSpeed)
	}
	if cfg.AnimationBeat <= 0 {
		return fmt.Errorf("animationBeat must be positive, got %v", cfg.AnimationBeat)
	}
	if cfg.TextFlashInterval <= 0 {
		return fmt.Errorf("textFlashInterval must be positive, got %v", cfg.TextFlashInterval)
	}

	phases := map[string]float64{
		"intro":        cfg.Phases.Intro,
		"stageBanner":  cfg.Phases.StageBanner,
		"ready":        cfg.Phases.Ready,
		"stageAdvance": cfg.Phases.StageAdvance,
		"gameOver":     cfg.Phases.GameOver,
	}
	for name, d := range phases {
		if d <= 0 {
			return fmt.Errorf("phases.%s must be positive, got %v", name, d)
		}
	}
	return nil
}
