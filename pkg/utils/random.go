package utils

import (
	"math/rand"
	"time"
)

// RandomSource 可注入的随机数源
// 生产环境使用带种子的 *rand.Rand，测试中可替换为固定序列
type RandomSource interface {
	// Float64 返回 [0.0, 1.0) 范围内的随机数
	Float64() float64
}

// NewRandomSource 创建带种子的随机数源
// 如果种子为 0，使用当前时间
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomRange 返回 [min, max) 范围内的均匀随机数
func RandomRange(src RandomSource, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}

// SequenceSource 按顺序循环返回预设值的随机数源，用于确定性测试与回放
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource 创建循环序列随机数源
// values 为空时始终返回 0
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 返回序列中的下一个值
func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
