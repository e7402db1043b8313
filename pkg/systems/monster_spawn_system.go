package systems

import (
	"log"

	"github.com/decker502/monsterhunt/pkg/ecs"
	"github.com/decker502/monsterhunt/pkg/entities"
	"github.com/decker502/monsterhunt/pkg/utils"
)

// MonsterSpawnSystem 管理怪物的定时生成
//
// 场景开始时立即生成第一只怪物，之后每隔 interval 秒生成一只。
// 单帧跨越多个间隔时（如卡顿后的大 deltaTime）会依次补齐。
type MonsterSpawnSystem struct {
	entityManager *ecs.EntityManager
	loader        entities.ResourceLoader
	rng           utils.RandomSource
	params        entities.MonsterSpawnParams
	interval      float64 // 生成间隔(秒)
	untilNext     float64 // 距下一次生成的剩余时间(秒)
	elapsed       float64 // 系统累计运行时间(秒)
	spawned       int     // 已生成数量
	enabled       bool
	onSpawn       func(id ecs.EntityID, at float64)
}

// NewMonsterSpawnSystem 创建怪物生成系统
// 参数:
//   - em: EntityManager 实例
//   - rl: 资源加载器
//   - rng: 随机数源（位置与速度）
//   - params: 怪物生成参数
//   - interval: 生成间隔（秒）
func NewMonsterSpawnSystem(em *ecs.EntityManager, rl entities.ResourceLoader, rng utils.RandomSource, params entities.MonsterSpawnParams, interval float64) *MonsterSpawnSystem {
	log.Printf("[MonsterSpawnSystem] Initialized with interval=%.2fs, cross=[%.1f, %.1f)s",
		interval, params.MinCrossDuration, params.MaxCrossDuration)
	return &MonsterSpawnSystem{
		entityManager: em,
		loader:        rl,
		rng:           rng,
		params:        params,
		interval:      interval,
		untilNext:     0,
		enabled:       true,
	}
}

// SetSpawnHandler 设置生成回调，at 为生成时刻（系统累计时间）
func (s *MonsterSpawnSystem) SetSpawnHandler(fn func(id ecs.EntityID, at float64)) {
	s.onSpawn = fn
}

// Update 推进生成计时器
func (s *MonsterSpawnSystem) Update(deltaTime float64) {
	if !s.enabled {
		return
	}

	frameStart := s.elapsed
	s.elapsed += deltaTime
	s.untilNext -= deltaTime

	for s.untilNext <= 0 {
		// 本次生成在帧内的准确时刻
		at := frameStart + deltaTime + s.untilNext
		s.spawn(at)
		s.untilNext += s.interval
	}
}

func (s *MonsterSpawnSystem) spawn(at float64) {
	id, err := entities.NewMonster(s.entityManager, s.loader, s.rng, s.params)
	if err != nil {
		log.Printf("[MonsterSpawnSystem] WARNING: Failed to spawn monster: %v", err)
		return
	}
	s.spawned++
	if s.onSpawn != nil {
		s.onSpawn(id, at)
	}
}

// Spawned 返回已生成的怪物数量
func (s *MonsterSpawnSystem) Spawned() int {
	return s.spawned
}

// Enable 启用怪物生成
func (s *MonsterSpawnSystem) Enable() {
	s.enabled = true
}

// Disable 停止怪物生成（结算时调用）
func (s *MonsterSpawnSystem) Disable() {
	s.enabled = false
	log.Printf("[MonsterSpawnSystem] Spawn DISABLED after %d monsters", s.spawned)
}
