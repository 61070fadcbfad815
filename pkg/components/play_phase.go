package components

// PlayPhase 游戏阶段
type PlayPhase int

const (
	PhaseStarting PlayPhase = iota
	PhaseStageBanner
	PhaseReady
	PhaseActive
	PhaseAdvancingStage
	PhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p PlayPhase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseStageBanner:
		return "showing-stage-banner"
	case PhaseReady:
		return "showing-ready"
	case PhaseActive:
		return "active"
	case PhaseAdvancingStage:
		return "advancing-stage"
	case PhaseGameOver:
		return "showing-game-over"
	default:
		return "unknown"
	}
}

// PlayPhaseComponent 游戏阶段状态
//
// 同一时刻只有一个阻塞阶段在计时（BlockingTimer，切换时清零）；
// 节拍、文字闪烁、徽章动画是与之并行的非阻塞计时器。
type PlayPhaseComponent struct {
	Phase         PlayPhase
	BlockingTimer float64

	// 全局动画节拍
	BeatTimer     float64
	AnimationFlag bool

	// 1UP 闪烁
	FlashEnabled bool
	FlashTimer   float64
	Show1Up      bool

	// 关卡徽章逐个出现
	BadgeAnimating bool
	BadgeStep      int
	BadgeTotal     int
	BadgeTimer     float64

	// Done 游戏结束画面已展示完毕，调用方应离开本场景
	Done bool
}
