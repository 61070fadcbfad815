package game

import (
	"os"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestGdata(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestScoreStoreDefaults 测试出厂排行榜
func TestScoreStoreDefaults(t *testing.T) {
	ss := NewScoreStore(nil)

	scores := ss.Scores()
	if len(scores) != TrackedScores {
		t.Fatalf("len(scores) = %d, want %d", len(scores), TrackedScores)
	}
	wantNames := []string{"AAA", "BBB", "CCC", "DDD", "EEE"}
	for i, name := range wantNames {
		if scores[i].Name != name {
			t.Errorf("scores[%d].Name = %s, want %s", i, scores[i].Name, name)
		}
	}
	if ss.HighScore() != 30000 {
		t.Errorf("HighScore() = %d, want 30000", ss.HighScore())
	}
}

// TestScoreStoreIsHighScore 测试上榜判定（严格大于末位）
func TestScoreStoreIsHighScore(t *testing.T) {
	ss := NewScoreStore(nil)
	tests := []struct {
		score int
		want  bool
	}{
		{0, false},
		{7999, false},
		{8000, false},
		{8001, true},
		{50000, true},
	}
	for _, tt := range tests {
		if got := ss.IsHighScore(tt.score); got != tt.want {
			t.Errorf("IsHighScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

// TestScoreStoreAddScore 测试插入位置与名字规范化
func TestScoreStoreAddScore(t *testing.T) {
	tests := []struct {
		name     string
		initials string
		score    int
		wantPos  int
		wantName string
	}{
		{"new top", "xyzw", 40000, 1, "XYZ"},
		{"middle", "ab", 15000, 3, "AB"},
		{"tie goes below", "tie", 10000, 4, "TIE"},
		{"last place", "low", 8500, 5, "LOW"},
		{"not a high score", "bad", 100, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ss := NewScoreStore(nil)
			ss.now = func() time.Time { return time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC) }

			pos, err := ss.AddScore(tt.initials, tt.score, 7)
			if err != nil {
				t.Fatalf("AddScore() error: %v", err)
			}
			if pos != tt.wantPos {
				t.Fatalf("position = %d, want %d", pos, tt.wantPos)
			}

			scores := ss.Scores()
			if len(scores) != TrackedScores {
				t.Errorf("len(scores) = %d, want %d", len(scores), TrackedScores)
			}
			if pos == 0 {
				return
			}
			got := scores[pos-1]
			if got.Name != tt.wantName || got.Score != tt.score || got.Stage != 7 || got.Date != "2026-03-04" {
				t.Errorf("record = %+v", got)
			}
			for i := 1; i < len(scores); i++ {
				if scores[i].Score > scores[i-1].Score {
					t.Errorf("scores not sorted at %d: %v", i, scores)
				}
			}
		})
	}
}

// TestScoreStorePersistence 测试保存后重新加载
func TestScoreStorePersistence(t *testing.T) {
	m := openTestGdata(t, "test_galaga_scores")

	ss1 := NewScoreStore(m)
	if _, err := ss1.AddScore("ace", 45000, 9); err != nil {
		t.Fatalf("AddScore() error: %v", err)
	}
	if err := ss1.UpdateSessionHigh(45000); err != nil {
		t.Fatalf("UpdateSessionHigh() error: %v", err)
	}

	ss2 := NewScoreStore(m)
	if ss2.HighScore() != 45000 {
		t.Errorf("reloaded HighScore() = %d, want 45000", ss2.HighScore())
	}
	if ss2.Scores()[0].Name != "ACE" {
		t.Errorf("reloaded top name = %s, want ACE", ss2.Scores()[0].Name)
	}
	if ss2.SessionHigh() != 45000 {
		t.Errorf("reloaded SessionHigh() = %d, want 45000", ss2.SessionHigh())
	}
}

// TestScoreStoreNormalize 测试条目不足时补齐
func TestScoreStoreNormalize(t *testing.T) {
	ss := &ScoreStore{scores: []ScoreRecord{{Name: "ONE", Score: 500}, {Name: "TWO", Score: 9000}}}
	ss.normalize()

	scores := ss.Scores()
	if len(scores) != TrackedScores {
		t.Fatalf("len(scores) = %d, want %d", len(scores), TrackedScores)
	}
	if scores[0].Name != "TWO" {
		t.Errorf("top = %s, want TWO", scores[0].Name)
	}
	if scores[1].Name != "CPU" || scores[1].Score != 3000 {
		t.Errorf("padding = %+v, want CPU 3000", scores[1])
	}
	if scores[4].Name != "ONE" {
		t.Errorf("last = %s, want ONE", scores[4].Name)
	}
}

// TestScoreStoreNilGdata 测试降级模式下保存不报错
func TestScoreStoreNilGdata(t *testing.T) {
	ss := NewScoreStore(nil)
	if err := ss.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
	if err := ss.Load(); err != nil {
		t.Errorf("Load() in degraded mode: %v", err)
	}
}

// TestScoreStoreRename 测试登记名字
func TestScoreStoreRename(t *testing.T) {
	ss := NewScoreStore(nil)
	pos, err := ss.AddScore("AAA", 25000, 4)
	if err != nil || pos != 2 {
		t.Fatalf("AddScore() = %d, %v", pos, err)
	}
	if err := ss.Rename(pos, " zed "); err != nil {
		t.Fatalf("Rename() error: %v", err)
	}
	if got := ss.Scores()[1].Name; got != "ZED" {
		t.Errorf("renamed = %s, want ZED", got)
	}
	for _, rank := range []int{0, TrackedScores + 1} {
		if err := ss.Rename(rank, "BAD"); err == nil {
			t.Errorf("Rename(%d) should fail", rank)
		}
	}
}
