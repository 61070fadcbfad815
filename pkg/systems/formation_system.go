package systems

import (
	"fmt"
	"image"
	"log"
	"math"
	"sort"

	"github.com/gonewx/galaga/pkg/components"
	"github.com/gonewx/galaga/pkg/config"
	"github.com/gonewx/galaga/pkg/ecs"
	"github.com/gonewx/galaga/pkg/entities"
	"github.com/gonewx/galaga/pkg/event"
	"github.com/gonewx/galaga/pkg/patterns"
	"github.com/gonewx/galaga/pkg/stages"
	"github.com/gonewx/galaga/pkg/types"
)

// RandomSource 攻击波选择使用的随机源
// utils.PRNGService 满足此接口；测试中可以注入脚本化的实现
type RandomSource interface {
	Intn(n int) int
}

// spawnEntry 出场队列中的一项
type spawnEntry struct {
	Member stages.Member
	Delay  float64
	Path   patterns.Path
}

// FormationSystem 编队管理
//
// 独占编队网格和出场队列：
//   - BuildStage 按关卡出场表生成入场路径并排入队列（按延迟稳定排序）
//   - Update 推进出场计时，一次性取出所有到期的项；推进呼吸动画；
//     队列清空后按攻击频率触发俯冲
//   - Remove 先清空格子再销毁实体
//
// 敌机组件中的 Row/Col 只是回指，网格才是唯一的真实来源。
type FormationSystem struct {
	entityManager *ecs.EntityManager
	rng           RandomSource
	dispatcher    *event.Dispatcher

	// PathSpeed 路径跟随速度（像素/帧）
	PathSpeed float64

	grid       [config.FormationRows][config.FormationCols]ecs.EntityID
	queue      []spawnEntry
	entryTimer float64
	lastDelay  float64

	stage     int
	challenge bool

	// 呼吸动画
	cycleTimer float64
	spread     float64
	offsetX    float64

	// 攻击波
	attackTimer     float64
	attackFrequency float64
	attacksEnabled  bool
}

// NewFormationSystem 创建编队系统
//
// 参数：
//   - em: 实体管理器
//   - rng: 随机源（攻击波选择）
//   - dispatcher: 事件分发器，可以为 nil
func NewFormationSystem(em *ecs.EntityManager, rng RandomSource, dispatcher *event.Dispatcher) *FormationSystem {
	return &FormationSystem{
		entityManager:   em,
		rng:             rng,
		dispatcher:      dispatcher,
		PathSpeed:       config.EnemyPathSpeed,
		attackFrequency: config.AttackBaseFrequency,
	}
}

// BuildStage 清空编队并按关卡出场表排队
//
// 奖励关标记在这里设置一次，之后开火抑制只读取 IsChallengeStage。
func (s *FormationSystem) BuildStage(stage int) {
	s.Clear()

	plan := stages.Plan(stage)
	s.stage = plan.Stage
	s.challenge = plan.IsChallenge

	for _, g := range plan.Groups {
		for i, m := range g.Members {
			ctx := patterns.NewContext(m.Row, m.Col, i)
			s.queue = append(s.queue, spawnEntry{
				Member: m,
				Delay:  g.MemberDelay(i),
				Path:   patterns.Generate(g.Pattern, ctx),
			})
		}
	}
	sort.SliceStable(s.queue, func(a, b int) bool {
		return s.queue[a].Delay < s.queue[b].Delay
	})

	s.SetDifficulty(s.stage)

	log.Printf("[FormationSystem] Stage %d built: challenge=%v, %d enemies queued, attack every %.2fs",
		s.stage, s.challenge, len(s.queue), s.attackFrequency)
}

// Clear 销毁所有敌机并重置队列和计时器
func (s *FormationSystem) Clear() {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.grid = [config.FormationRows][config.FormationCols]ecs.EntityID{}
	s.queue = nil
	s.entryTimer = 0
	s.lastDelay = 0
	s.cycleTimer = 0
	s.spread = config.FormationMinSpread
	s.offsetX = 0
	s.attackTimer = 0
	s.attacksEnabled = false
	s.challenge = false
}

// SetDifficulty 按关卡设置攻击频率，并重新计算场上敌机的开火冷却
func (s *FormationSystem) SetDifficulty(stage int) {
	s.attackFrequency = math.Max(config.AttackMinFrequency,
		config.AttackBaseFrequency-float64(stage)*config.AttackFrequencyStep)

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
			enemy.ApplyDifficulty(stage)
		}
	}
}

// SetAttacksEnabled 开启/关闭攻击波（玩家不可控时关闭）
func (s *FormationSystem) SetAttacksEnabled(enabled bool) {
	s.attacksEnabled = enabled
}

// Update 推进一帧
//
// 参数：
//   - dt: 时间增量（秒）
//   - playerX: 玩家 X，俯冲路径据此瞄准
func (s *FormationSystem) Update(dt, playerX float64) {
	s.entryTimer += dt
	// 同一帧内可能有多项到期，必须全部取出且保持顺序
	for len(s.queue) > 0 && s.queue[0].Delay <= s.entryTimer {
		entry := s.queue[0]
		s.queue = s.queue[1:]
		s.activate(entry)
	}

	s.updateBreathing(dt)

	if len(s.queue) == 0 && s.attacksEnabled && !s.challenge {
		s.attackTimer += dt
		if s.attackTimer >= s.attackFrequency {
			s.attackTimer = 0
			s.TriggerAttackWave(playerX)
		}
	}
}

// activate 创建敌机、挂上入场路径并占据格子
func (s *FormationSystem) activate(e spawnEntry) {
	m := e.Member
	assertInvariant(e.Delay >= s.lastDelay, "spawn delay %.3f dequeued after %.3f", e.Delay, s.lastDelay)
	s.lastDelay = e.Delay

	if m.Row < 0 || m.Row >= config.FormationRows || m.Col < 0 || m.Col >= config.FormationCols {
		assertInvariant(false, "spawn cell (%d,%d) outside the grid", m.Row, m.Col)
		return
	}
	if occupant := s.grid[m.Row][m.Col]; occupant != 0 {
		assertInvariant(false, "cell (%d,%d) already holds entity %d", m.Row, m.Col, occupant)
		return
	}

	x, y := config.CellPosition(m.Row, m.Col)
	if len(e.Path) > 0 {
		x, y = float64(e.Path[0].X), float64(e.Path[0].Y)
	}
	id, err := entities.NewEnemyEntity(s.entityManager, m.Kind, m.Variant, x, y)
	if err != nil {
		log.Printf("[FormationSystem] Failed to spawn %v at (%d,%d): %v", m.Kind, m.Row, m.Col, err)
		return
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	enemy.HasCell = true
	enemy.Row, enemy.Col = m.Row, m.Col
	enemy.Transit = s.challenge
	enemy.ApplyDifficulty(s.stage)

	ecs.AddComponent(s.entityManager, id, &components.PathComponent{
		Points: e.Path,
		Speed:  s.PathSpeed,
	})
	s.grid[m.Row][m.Col] = id
}

// updateBreathing 呼吸动画：展开量按三角波往返，整体按正弦左右摆动
func (s *FormationSystem) updateBreathing(dt float64) {
	s.cycleTimer += dt
	progress := math.Mod(s.cycleTimer, config.FormationCycleTime) / config.FormationCycleTime

	span := config.FormationMaxSpread - config.FormationMinSpread
	if progress < 0.5 {
		s.spread = config.FormationMinSpread + span*progress*2
	} else {
		s.spread = config.FormationMaxSpread - span*(progress-0.5)*2
	}
	s.offsetX = config.FormationMaxX * math.Sin(progress*2*math.Pi)

	for row := range s.grid {
		for col, id := range s.grid[row] {
			if id == 0 {
				continue
			}
			enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
			if !ok || enemy.State != components.EnemyInFormation {
				continue
			}
			if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
				pos.X, pos.Y = s.CellPosition(row, col)
			}
		}
	}
}

// CellPosition 格子当前的位置（叠加呼吸偏移）
// 离中心越远的列展开越多
func (s *FormationSystem) CellPosition(row, col int) (float64, float64) {
	x, y := config.CellPosition(row, col)
	center := float64(config.FormationCols) / 2
	factor := math.Abs(float64(col)-center) / center
	if float64(col) < center {
		factor = -factor
	}
	return x + s.offsetX + s.spread*factor, y
}

// TriggerAttackWave 发动一波俯冲
//
// 有空闲 Boss 时以 1/3 概率让第一个空闲 Boss 带着至多两架护卫一起俯冲；
// 否则从空闲敌机中均匀随机选 1-3 架各自俯冲。没有空闲敌机时什么也不做。
//
// 返回：
//   - int: 本波出动的敌机数
func (s *FormationSystem) TriggerAttackWave(playerX float64) int {
	idle := s.idleEnemies()
	if len(idle) == 0 {
		return 0
	}

	var boss ecs.EntityID
	for _, id := range idle {
		if enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); enemy.Kind == types.EnemyBoss {
			boss = id
			break
		}
	}

	if boss != 0 && s.rng.Intn(3) == 0 {
		escorts := s.EscortCandidates(boss)
		s.launch(boss, playerX)
		bossComp, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, boss)
		bossComp.EscortCount = len(escorts)
		for _, id := range escorts {
			s.launch(id, playerX)
			if escort, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok {
				escort.IsEscort = true
			}
		}
		n := 1 + len(escorts)
		log.Printf("[FormationSystem] Boss attack: boss %d with %d escorts", boss, len(escorts))
		s.dispatcher.Dispatch(event.Event{Type: event.AttackWave, Data: event.AttackWaveData{BossBranch: true, Count: n}})
		return n
	}

	count := s.rng.Intn(3) + 1
	if count > len(idle) {
		count = len(idle)
	}
	// 部分 Fisher-Yates：前 count 个即为无放回的均匀抽样
	for i := 0; i < count; i++ {
		j := i + s.rng.Intn(len(idle)-i)
		idle[i], idle[j] = idle[j], idle[i]
		s.launch(idle[i], playerX)
	}
	log.Printf("[FormationSystem] Attack wave: %d enemies", count)
	s.dispatcher.Dispatch(event.Event{Type: event.AttackWave, Data: event.AttackWaveData{Count: count}})
	return count
}

// EscortCandidates Boss 的护卫候选
// Boss 下方两行、左右各一列范围内空闲的中型敌机，最多 MaxEscorts 架
func (s *FormationSystem) EscortCandidates(boss ecs.EntityID) []ecs.EntityID {
	bossComp, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, boss)
	if !ok || !bossComp.HasCell {
		return nil
	}

	escorts := make([]ecs.EntityID, 0, config.MaxEscorts)
	for row := bossComp.Row + 1; row <= bossComp.Row+2; row++ {
		for _, offset := range []int{-1, 0, 1} {
			id, ok := s.EnemyAt(row, bossComp.Col+offset)
			if !ok || !s.isIdle(id) {
				continue
			}
			if enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); enemy.Kind != types.EnemyMedium {
				continue
			}
			escorts = append(escorts, id)
			if len(escorts) == config.MaxEscorts {
				return escorts
			}
		}
	}
	return escorts
}

// launch 让一架空闲敌机从当前位置开始俯冲
func (s *FormationSystem) launch(id ecs.EntityID, playerX float64) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	ctx := patterns.NewContext(enemy.Row, enemy.Col, 0)
	ctx.Start = image.Pt(int(math.Round(pos.X)), int(math.Round(pos.Y)))
	ctx.PlayerX = playerX

	enemy.State = components.EnemyAttacking
	enemy.EscortCount = 0
	enemy.IsEscort = false
	ecs.AddComponent(s.entityManager, id, &components.PathComponent{
		Points: patterns.GenerateDive(enemy.Kind, ctx),
		Speed:  s.PathSpeed,
	})
}

func (s *FormationSystem) isIdle(id ecs.EntityID) bool {
	if !s.entityManager.IsAlive(id) {
		return false
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	return ok && enemy.State == components.EnemyInFormation
}

// idleEnemies 按网格扫描顺序返回空闲敌机
func (s *FormationSystem) idleEnemies() []ecs.EntityID {
	idle := make([]ecs.EntityID, 0)
	for _, id := range s.Enemies() {
		if s.isIdle(id) {
			idle = append(idle, id)
		}
	}
	return idle
}

// Remove 清空敌机所在的格子并销毁实体
func (s *FormationSystem) Remove(id ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
	if !ok {
		return
	}
	if enemy.HasCell {
		if s.grid[enemy.Row][enemy.Col] == id {
			s.grid[enemy.Row][enemy.Col] = 0
		} else {
			assertInvariant(false, "entity %d claims cell (%d,%d) held by %d",
				id, enemy.Row, enemy.Col, s.grid[enemy.Row][enemy.Col])
		}
		enemy.HasCell = false
	}
	enemy.State = components.EnemyDestroyed
	s.entityManager.DestroyEntity(id)
}

// IsEmpty 出场队列已清空且所有格子都空出
func (s *FormationSystem) IsEmpty() bool {
	if len(s.queue) > 0 {
		return false
	}
	for row := range s.grid {
		for _, id := range s.grid[row] {
			if id != 0 {
				return false
			}
		}
	}
	return true
}

// EnemyAt 查询格子，越界时返回 (0, false)
func (s *FormationSystem) EnemyAt(row, col int) (ecs.EntityID, bool) {
	if row < 0 || row >= config.FormationRows || col < 0 || col >= config.FormationCols {
		return 0, false
	}
	id := s.grid[row][col]
	return id, id != 0
}

// Enemies 按网格扫描顺序（行优先）返回所有占格敌机
func (s *FormationSystem) Enemies() []ecs.EntityID {
	out := make([]ecs.EntityID, 0, config.FormationRows*config.FormationCols)
	for row := range s.grid {
		for _, id := range s.grid[row] {
			if id != 0 {
				out = append(out, id)
			}
		}
	}
	return out
}

// CheckInvariants 检查网格不变量
// 同一实体不占两个格子；每个实体记录的格子与所在格子一致
func (s *FormationSystem) CheckInvariants() error {
	seen := make(map[ecs.EntityID][2]int)
	for row := range s.grid {
		for col, id := range s.grid[row] {
			if id == 0 {
				continue
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("entity %d occupies (%d,%d) and (%d,%d)", id, prev[0], prev[1], row, col)
			}
			seen[id] = [2]int{row, col}

			enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
			if !ok {
				return fmt.Errorf("cell (%d,%d) holds entity %d without an enemy component", row, col, id)
			}
			if !enemy.HasCell || enemy.Row != row || enemy.Col != col {
				return fmt.Errorf("entity %d in cell (%d,%d) records (%d,%d) hasCell=%v",
					id, row, col, enemy.Row, enemy.Col, enemy.HasCell)
			}
		}
	}
	return nil
}

// IsChallengeStage 当前关卡是否为奖励关（BuildStage 时确定）
func (s *FormationSystem) IsChallengeStage() bool {
	return s.challenge
}

// Stage 当前关卡号
func (s *FormationSystem) Stage() int {
	return s.stage
}

// QueueLen 尚未出场的敌机数
func (s *FormationSystem) QueueLen() int {
	return len(s.queue)
}

// QueuedDelays 队列中各项的出场延迟（按出场顺序）
func (s *FormationSystem) QueuedDelays() []float64 {
	out := make([]float64, len(s.queue))
	for i, e := range s.queue {
		out[i] = e.Delay
	}
	return out
}

// AttackFrequency 当前攻击波间隔（秒）
func (s *FormationSystem) AttackFrequency() float64 {
	return s.attackFrequency
}

// Spread 当前呼吸展开量
func (s *FormationSystem) Spread() float64 {
	return s.spread
}
