package config

// 游戏数值常量
// 时间单位统一为秒，速度单位为像素/秒（路径跟随速度除外，见 EnemyPathSpeed）

// Phase durations (阶段时长)
const (
	IntroDuration        = 6.6 // 开场音乐
	StageBannerDuration  = 1.6 // "STAGE N" 横幅
	ReadyDuration        = 1.6 // "READY"
	StageAdvanceDuration = 1.6 // 清版后到下一关之间
	GameOverDuration     = 3.0 // "GAME OVER"

	// StageBadgeStep 每颗关卡徽章出现的间隔
	StageBadgeStep = 0.2

	// AnimationBeat 全场统一的帧切换节拍
	AnimationBeat = 0.5

	// TextFlashInterval 1UP 文字闪烁间隔
	TextFlashInterval = 0.25
)

// Player (玩家)
const (
	StartingLives      = 3
	PlayerSpeed        = 120.0
	PlayerFireCooldown = 0.2
	PlayerMissileSpeed = 350.0
	EnemyMissileSpeed  = 150.0
)

// Enemy (敌机)
const (
	// EnemyPathSpeed 路径跟随速度（像素/帧），与帧率绑定
	EnemyPathSpeed = 2.0

	// EnemyFireMargin 敌机只有在玩家上方至少这么远时才会开火
	EnemyFireMargin = 50.0

	SmallFireCooldown  = 2.0
	MediumFireCooldown = 1.5

	// 每关缩短 FireCooldownStep，总缩短量不超过 FireCooldownMaxReduction，
	// 最终不低于 FireCooldownFloor
	FireCooldownStep         = 0.05
	FireCooldownMaxReduction = 0.5
	FireCooldownFloor        = 0.5
)

// Formation timing (编队节奏)
const (
	// FormationCycleTime 呼吸动画周期
	FormationCycleTime = 4.0

	// 攻击波间隔 = max(AttackMinFrequency, AttackBaseFrequency - stage*AttackFrequencyStep)
	AttackBaseFrequency = 3.0
	AttackFrequencyStep = 0.1
	AttackMinFrequency  = 1.0

	// 通用关卡的出场间隔
	BossSpawnStagger = 0.1
	SpawnStagger     = 0.05

	// 手工编排关卡中同组成员的出场间隔
	GroupMemberStagger = 0.12

	// 奖励关同一波次成员的出场间隔
	ChallengeMemberStagger = 0.15

	// MaxEscorts Boss 最多携带的护卫数
	MaxEscorts = 2
)

// Scoring (计分)
const (
	// ScoreTextThreshold 分值达到此值时显示漂浮分数
	ScoreTextThreshold = 800

	// ScoreTextLifetime 漂浮分数存在时间
	ScoreTextLifetime = 0.95

	// TrackedScores 排行榜保留条数
	TrackedScores = 5
)

// Explosions (爆炸动画)
const (
	PlayerExplosionFrames        = 4
	PlayerExplosionFrameDuration = 0.14
	EnemyExplosionFrames         = 5
	EnemyExplosionFrameDuration  = 0.12
)
