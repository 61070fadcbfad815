package game

// GameState 一局游戏的会话状态
// 由场景显式创建并传给各系统，不使用全局单例
type GameState struct {
	Score     int
	HighScore int // 本局开始时的最高分，随得分实时更新

	Shots int // 玩家发射的飞弹数
	Hits  int // 命中数

	Lives int // 剩余备用飞船（不含场上这一架）
	Stage int // 当前关卡，开局前为 0

	// Elapsed 模拟时钟（秒），开火冷却都以它为准
	Elapsed float64
}

// NewGameState 创建会话状态
//
// 参数：
//   - lives: 开局可用的飞船数
//   - highScore: 排行榜上已有的最高分
func NewGameState(lives, highScore int) *GameState {
	return &GameState{
		Lives:     lives,
		HighScore: highScore,
	}
}

// AddScore 加分并同步最高分
func (gs *GameState) AddScore(points int) {
	gs.Score += points
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}

// HitRatio 命中率（百分比），没有开过火时为 0
func (gs *GameState) HitRatio() float64 {
	return gs.Result().HitRatio()
}

// Reset 重新开始一局，保留最高分
func (gs *GameState) Reset(lives int) {
	*gs = GameState{Lives: lives, HighScore: gs.HighScore}
}

// Result 结算快照
type Result struct {
	Score     int
	HighScore int
	Shots     int
	Hits      int
	Stage     int
}

// Result 返回当前的结算快照
func (gs *GameState) Result() Result {
	return Result{
		Score:     gs.Score,
		HighScore: gs.HighScore,
		Shots:     gs.Shots,
		Hits:      gs.Hits,
		Stage:     gs.Stage,
	}
}

// HitRatio 命中率（百分比），没有开过火时为 0
func (r Result) HitRatio() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Shots) * 100
}
