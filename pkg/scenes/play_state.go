package scenes

import "fmt"

// PlayState 一局游戏的状态
// 每个 PlayScene 拥有自己的 PlayState，新一局从零开始
type PlayState struct {
	score    int
	winScore int
	over     bool
	won      bool
}

// NewPlayState 创建新的对局状态
func NewPlayState(winScore int) *PlayState {
	return &PlayState{winScore: winScore}
}

// Score 当前得分
func (s *PlayState) Score() int {
	return s.score
}

// IsOver 对局是否已结束
func (s *PlayState) IsOver() bool {
	return s.over
}

// Won 对局是否以胜利结束
func (s *PlayState) Won() bool {
	return s.won
}

// RecordHit 记录一次命中
//
// 返回:
//   - bool: 本次命中是否使对局胜利（每局最多返回一次 true）
func (s *PlayState) RecordHit() bool {
	if s.over {
		return false
	}
	s.score++
	if s.score >= s.winScore {
		s.over = true
		s.won = true
		return true
	}
	return false
}

// RecordLoss 判负
//
// 返回:
//   - bool: 对局是否因此结束（已结束时为 false）
func (s *PlayState) RecordLoss() bool {
	if s.over {
		return false
	}
	s.over = true
	s.won = false
	return true
}

// Label 分数标签文字
func (s *PlayState) Label() string {
	return fmt.Sprintf("Score: %d", s.score)
}
