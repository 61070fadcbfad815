package event

import "github.com/gonewx/galaga/pkg/types"

const (
	EnemyHit       EventType = "EnemyHit"       // Boss 挨了第一枪
	EnemyDestroyed EventType = "EnemyDestroyed" // 敌机被击毁
	EnemyFired     EventType = "EnemyFired"     // 敌机开火
	PlayerFired    EventType = "PlayerFired"    // 玩家开火
	PlayerKilled   EventType = "PlayerKilled"   // 玩家被击毁
	AttackWave     EventType = "AttackWave"     // 新一波俯冲
	StageStarted   EventType = "StageStarted"   // 开始新关卡（横幅出现）
	StageCleared   EventType = "StageCleared"   // 清版
	PhaseChanged   EventType = "PhaseChanged"   // 阶段切换
	GameOver       EventType = "GameOver"       // 生命耗尽
)

// EnemyData EnemyHit / EnemyDestroyed 的数据
type EnemyData struct {
	Kind   types.EnemyKind
	Points int
	X, Y   float64
}

// AttackWaveData AttackWave 的数据
type AttackWaveData struct {
	BossBranch bool
	Count      int
}

// StageData StageStarted / StageCleared 的数据
type StageData struct {
	Stage       int
	IsChallenge bool
}

// PhaseData PhaseChanged 的数据，阶段以名称表示
type PhaseData struct {
	From, To string
}
