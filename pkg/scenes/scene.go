package scenes

import (
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/utils"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Session 跨场景传递的一局结果
type Session struct {
	Result game.Result
	Rank   int // 排行榜名次，未上榜为 0
}

// Services 场景共用的服务
type Services struct {
	SceneManager *game.SceneManager
	Scores       *game.ScoreStore
	Settings     *game.SettingsManager // 可为 nil
	Sound        game.SoundPlayer      // 可为 nil（静音）
	Config       *config.GameConfig
	RNG          *utils.PRNGService
	Keys         utils.KeyBindings
	Session      *Session
}

// NewFactory 返回按场景标识创建场景的工厂
func NewFactory(svc *Services) game.SceneFactory {
	return func(id game.SceneID) game.Scene {
		switch id {
		case game.ScenePlay:
			return NewPlayScene(svc)
		case game.SceneGameOver:
			return NewGameOverScene(svc)
		default:
			return nil
		}
	}
}

// initials 玩家上次登记的名字
func (svc *Services) initials() string {
	if svc.Settings == nil {
		return game.DefaultSettings().Initials
	}
	return svc.Settings.GetSettings().Initials
}

// screenWidth 逻辑屏幕宽度（触摸坐标所在的坐标系）
func screenWidth() int {
	return config.GameWindowWidth * RenderScale
}
