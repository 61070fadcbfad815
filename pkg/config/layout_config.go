package config

// 布局配置常量
// 本文件定义了游戏画面中的几何参数，包括场地尺寸、编队网格、碰撞盒等
// 所有坐标均为场地坐标（左上角为原点，单位像素），实体位置取中心点

// Play field (场地配置)
const (
	// FieldWidth 是场地宽度（像素），同时也是逻辑屏幕宽度
	FieldWidth = 224

	// FieldHeight 是场地高度（像素）
	FieldHeight = 288

	// StageTopY 是可玩区域上边界，上方留给 HUD 分数栏
	StageTopY = 16

	// StageBottomY 是可玩区域下边界，下方留给剩余生命和关卡徽章
	StageBottomY = 272

	// PlayerSpawnY 玩家飞船的出生高度
	PlayerSpawnY = StageBottomY - 16

	// PlayerRightMargin 玩家飞船右侧额外留出的边距
	PlayerRightMargin = 3
)

// GameWindowWidth/GameWindowHeight 逻辑屏幕尺寸（Layout 返回值）
const (
	GameWindowWidth  = FieldWidth
	GameWindowHeight = FieldHeight
)

// Formation grid (编队网格配置)
const (
	// FormationCols 编队列数
	FormationCols = 10

	// FormationRows 编队行数
	FormationRows = 5

	// FormationColSpacing 相邻两列的水平间距
	FormationColSpacing = 18.0

	// FormationRowSpacing 相邻两行的垂直间距
	FormationRowSpacing = 20.0

	// FormationBaseX 编队中心 X（第 5 列所在位置）
	FormationBaseX = FieldWidth / 2

	// FormationBaseY 第 0 行的 Y 坐标
	FormationBaseY = 60.0

	// FormationMinSpread / FormationMaxSpread 呼吸动画的展开范围
	// 最外侧列偏移 spread 像素，中心列不动
	FormationMinSpread = 0.0
	FormationMaxSpread = 16.0

	// FormationMaxX 整体水平摆动的振幅
	FormationMaxX = 16.0
)

// Collision boxes (碰撞盒尺寸，中心对齐)
const (
	EnemyWidth    = 16.0
	EnemyHeight   = 16.0
	PlayerWidth   = 16.0
	PlayerHeight  = 16.0
	MissileWidth  = 2.0
	MissileHeight = 10.0
)

// StageBounds 返回可玩区域矩形（left, top, right, bottom）
// 飞弹只要有一部分离开这个矩形就会被移除
func StageBounds() (float64, float64, float64, float64) {
	return 0, StageTopY, FieldWidth, StageBottomY
}

// CellPosition 返回编队格子 (row, col) 的静止位置（未叠加呼吸偏移）
func CellPosition(row, col int) (float64, float64) {
	x := FormationBaseX + float64(col-FormationCols/2)*FormationColSpacing
	y := FormationBaseY + float64(row)*FormationRowSpacing
	return x, y
}
