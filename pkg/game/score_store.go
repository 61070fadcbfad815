package game

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gonewx/galaga/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// TrackedScores 排行榜保留的条数
const TrackedScores = config.TrackedScores

// ScoreRecord 排行榜中的一条记录
type ScoreRecord struct {
	Name  string `yaml:"name"`  // 三个大写字母
	Score int    `yaml:"score"` // 分数
	Date  string `yaml:"date"`  // YYYY-MM-DD
	Stage int    `yaml:"stage"` // 结束时的关卡
}

// scoreTable 持久化格式
type scoreTable struct {
	Scores      []ScoreRecord `yaml:"scores"`
	SessionHigh int           `yaml:"sessionHigh"`
}

// DefaultScores 返回出厂排行榜
func DefaultScores() []ScoreRecord {
	return []ScoreRecord{
		{Name: "AAA", Score: 30000, Date: "2024-01-01", Stage: 5},
		{Name: "BBB", Score: 20000, Date: "2024-01-01", Stage: 4},
		{Name: "CCC", Score: 10000, Date: "2024-01-01", Stage: 3},
		{Name: "DDD", Score: 9000, Date: "2024-01-01", Stage: 2},
		{Name: "EEE", Score: 8000, Date: "2024-01-01", Stage: 2},
	}
}

// ScoreStore 排行榜存储
// 与 SettingsManager 相同，gdataManager 为 nil 时进入降级模式：排行榜只存在于内存中
type ScoreStore struct {
	gdataManager *gdata.Manager
	scores       []ScoreRecord
	sessionHigh  int

	// now 记录日期用，测试中可替换
	now func() time.Time
}

const (
	scoresObject   = "scores"
	scoresProperty = "table"
)

// NewScoreStore 创建排行榜存储并尝试加载已保存的数据
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 返回：
//   - *ScoreStore: 排行榜实例（加载失败时使用出厂排行榜）
func NewScoreStore(gdataManager *gdata.Manager) *ScoreStore {
	ss := &ScoreStore{
		gdataManager: gdataManager,
		scores:       DefaultScores(),
		now:          time.Now,
	}
	if err := ss.Load(); err != nil {
		log.Printf("[ScoreStore] Warning: Failed to load scores: %v (using defaults)", err)
	}
	return ss
}

// Load 从 gdata 加载排行榜
// 文件不存在时使用出厂排行榜；条目不足时补齐
func (ss *ScoreStore) Load() error {
	if ss.gdataManager == nil || !ss.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		ss.scores = DefaultScores()
		return nil
	}

	data, err := ss.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		ss.scores = DefaultScores()
		return fmt.Errorf("failed to load scores: %w", err)
	}

	var table scoreTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		ss.scores = DefaultScores()
		return fmt.Errorf("failed to unmarshal scores: %w", err)
	}

	ss.scores = table.Scores
	ss.sessionHigh = table.SessionHigh
	ss.normalize()
	log.Printf("[ScoreStore] Loaded %d scores, top=%d", len(ss.scores), ss.HighScore())
	return nil
}

// normalize 用 CPU 记录补齐到 TrackedScores 条，再排序、截断
func (ss *ScoreStore) normalize() {
	for len(ss.scores) < TrackedScores {
		ss.scores = append(ss.scores, ScoreRecord{
			Name:  "CPU",
			Score: 1000 * (TrackedScores - len(ss.scores)),
			Date:  "2024-01-01",
			Stage: 1,
		})
	}
	sort.SliceStable(ss.scores, func(i, j int) bool {
		return ss.scores[i].Score > ss.scores[j].Score
	})
	if len(ss.scores) > TrackedScores {
		ss.scores = ss.scores[:TrackedScores]
	}
}

// Save 保存排行榜，降级模式下直接返回 nil
func (ss *ScoreStore) Save() error {
	if ss.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(scoreTable{Scores: ss.scores, SessionHigh: ss.sessionHigh})
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := ss.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// IsHighScore 分数能否进入排行榜（严格大于末位）
func (ss *ScoreStore) IsHighScore(score int) bool {
	if len(ss.scores) < TrackedScores {
		return true
	}
	return score > ss.scores[len(ss.scores)-1].Score
}

// AddScore 记录一次成绩
//
// 名字取前三个字符并转为大写。
//
// 返回：
//   - int: 在排行榜中的名次（从 1 开始），未上榜返回 0
//   - error: 保存失败时返回错误（内存中的排行榜已更新）
func (ss *ScoreStore) AddScore(name string, score, stage int) (int, error) {
	if !ss.IsHighScore(score) {
		return 0, nil
	}

	name = normalizeName(name)
	record := ScoreRecord{
		Name:  name,
		Score: score,
		Date:  ss.now().Format("2006-01-02"),
		Stage: stage,
	}

	// 同分时新记录排在旧记录之后
	pos := len(ss.scores)
	for i, s := range ss.scores {
		if score > s.Score {
			pos = i
			break
		}
	}
	ss.scores = append(ss.scores, ScoreRecord{})
	copy(ss.scores[pos+1:], ss.scores[pos:])
	ss.scores[pos] = record
	if len(ss.scores) > TrackedScores {
		ss.scores = ss.scores[:TrackedScores]
	}

	log.Printf("[ScoreStore] %s scored %d at stage %d, rank %d", name, score, stage, pos+1)
	return pos + 1, ss.Save()
}

// Rename 修改第 rank 名的名字（登记名字时使用）
func (ss *ScoreStore) Rename(rank int, name string) error {
	if rank < 1 || rank > len(ss.scores) {
		return fmt.Errorf("rank %d out of range 1..%d", rank, len(ss.scores))
	}
	ss.scores[rank-1].Name = normalizeName(name)
	return ss.Save()
}

// normalizeName 取前三个字符并转为大写
func normalizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if r := []rune(name); len(r) > 3 {
		name = string(r[:3])
	}
	return name
}

// HighScore 榜首分数
func (ss *ScoreStore) HighScore() int {
	if len(ss.scores) == 0 {
		return 0
	}
	return ss.scores[0].Score
}

// Scores 返回排行榜副本
func (ss *ScoreStore) Scores() []ScoreRecord {
	out := make([]ScoreRecord, len(ss.scores))
	copy(out, ss.scores)
	return out
}

// SessionHigh 历次会话中的最高分
func (ss *ScoreStore) SessionHigh() int {
	return ss.sessionHigh
}

// UpdateSessionHigh 刷新会话最高分
func (ss *ScoreStore) UpdateSessionHigh(score int) error {
	if score <= ss.sessionHigh {
		return nil
	}
	ss.sessionHigh = score
	return ss.Save()
}
