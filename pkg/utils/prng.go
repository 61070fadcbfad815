package utils

import (
	"math/rand"
	"time"
)

// PRNGService 可设定种子的随机数服务
// 攻击波选择等所有随机决策都通过它进行，固定种子即可复现一局游戏
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService 创建随机数服务
// seed 为 0 时使用当前时间
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed 返回实际使用的种子（便于日志中记录以复现）
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn 返回 [0, n) 内的随机整数，n <= 0 时返回 0
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 返回 [0.0, 1.0) 内的随机数
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
