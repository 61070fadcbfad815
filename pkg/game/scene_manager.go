package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID string

const (
	ScenePlay     SceneID = "play"
	SceneGameOver SceneID = "game_over"
)

// SceneFactory 场景工厂函数类型
// 场景实现位于 scenes 包，通过工厂创建以避免循环依赖
type SceneFactory func(id SceneID) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The outgoing scene is closed if it implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if closer, ok := sm.currentScene.(Closer); ok {
		closer.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 返回最近一次通过 Load 进入的场景标识
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Load 通过工厂创建并切换到指定场景
//
// 返回：
//   - bool: 是否切换成功（工厂未设置或返回 nil 时为 false）
func (sm *SceneManager) Load(id SceneID) bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return false
	}

	scene := sm.sceneFactory(id)
	if scene == nil {
		log.Printf("[SceneManager] Error: cannot create scene %s", id)
		return false
	}
	sm.SwitchTo(scene)
	sm.currentID = id
	log.Printf("[SceneManager] Switched to scene %s", id)
	return true
}

// Close 关闭当前场景（程序退出时调用）
func (sm *SceneManager) Close() {
	if closer, ok := sm.currentScene.(Closer); ok {
		closer.Close()
	}
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
