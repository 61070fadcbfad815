package systems

import (
	"github.com/gonewx/galaga/pkg/event"
	"github.com/gonewx/galaga/pkg/game"
	"github.com/gonewx/galaga/pkg/types"
)

var soundEvents = []event.EventType{event.PlayerFired, event.EnemyFired, event.EnemyHit, event.EnemyDestroyed}

// SoundListener 把游戏事件转换为音效
type SoundListener struct {
	sound      game.SoundPlayer
	dispatcher *event.Dispatcher
}

// NewSoundListener 创建音效监听器并订阅相关事件
func NewSoundListener(d *event.Dispatcher, sound game.SoundPlayer) *SoundListener {
	l := &SoundListener{sound: sound, dispatcher: d}
	for _, t := range soundEvents {
		d.Subscribe(t, l)
	}
	return l
}

// Detach 取消全部订阅；分发器由外部传入时会比本局活得更久
func (l *SoundListener) Detach() {
	for _, t := range soundEvents {
		l.dispatcher.Unsubscribe(t, l)
	}
}

// OnEvent 实现 event.Listener
func (l *SoundListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerFired:
		l.sound.PlaySound(game.SoundFighterFire)
	case event.EnemyFired:
		l.sound.PlaySound(game.SoundEnemyFire)
	case event.EnemyHit:
		l.sound.PlaySound(game.SoundBossDamaged)
	case event.EnemyDestroyed:
		data, _ := e.Data.(event.EnemyData)
		if data.Kind == types.EnemyBoss {
			l.sound.PlaySound(game.SoundBossDestroy)
		} else {
			l.sound.PlaySound(game.SoundEnemyHit)
		}
	}
}
