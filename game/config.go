package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the simulation tuning constants
type Config struct {
	// SpawnDistance is how far ahead of the player enemies and items appear
	SpawnDistance float64 `json:"spawnDistance"`

	// MaxObjectDistance is the play-volume radius around the player; anything beyond is culled
	MaxObjectDistance float64 `json:"maxObjectDistance"`

	// BulletSpeed is the base bullet speed in units per second
	BulletSpeed float64 `json:"bulletSpeed"`

	// EnemySpeed is the wave-1 enemy speed in units per second
	EnemySpeed float64 `json:"enemySpeed"`

	// EnemySpeedPerWave is added to EnemySpeed for every wave after the first
	EnemySpeedPerWave float64 `json:"enemySpeedPerWave"`

	// ItemSpeed is the item drift speed in units per second
	ItemSpeed float64 `json:"itemSpeed"`

	// ShotInterval is the auto-fire period in seconds
	ShotInterval float64 `json:"shotInterval"`

	// InitialHP is both the starting and the maximum hp
	InitialHP int `json:"initialHP"`

	// GameDuration is the length of a session in seconds
	GameDuration float64 `json:"gameDuration"`

	// CollisionDistance is the hit radius shared by every collision pair
	CollisionDistance float64 `json:"collisionDistance"`

	// PassThroughThreshold is the radius inside which an entity moving away from the player counts as passed
	PassThroughThreshold float64 `json:"passThroughThreshold"`

	// MaxBullets is the bullet pool capacity
	MaxBullets int `json:"maxBullets"`

	// MaxEnemies is the enemy pool capacity
	MaxEnemies int `json:"maxEnemies"`

	// MaxItemsPerType caps live items of a single type
	MaxItemsPerType int `json:"maxItemsPerType"`

	// MaxHitEffects is the hit-effect pool capacity
	MaxHitEffects int `json:"maxHitEffects"`

	// MaxChainLabels is the chain-label pool capacity
	MaxChainLabels int `json:"maxChainLabels"`

	// HitEffectDuration is how long hit effects and chain labels stay visible, in seconds
	HitEffectDuration float64 `json:"hitEffectDuration"`

	// WaveLength is the number of seconds per difficulty tier
	WaveLength float64 `json:"waveLength"`

	// BaseEnemiesPerWave is the enemy count of the first spawn events
	BaseEnemiesPerWave int `json:"baseEnemiesPerWave"`

	// EnemyCountScaleInterval adds one enemy per spawn event every this many seconds
	EnemyCountScaleInterval float64 `json:"enemyCountScaleInterval"`

	// MaxEnemiesPerSpawn caps a single spawn event
	MaxEnemiesPerSpawn int `json:"maxEnemiesPerSpawn"`

	// SpawnIntervalInitial is the enemy spawn period at the start of a session
	SpawnIntervalInitial float64 `json:"spawnIntervalInitial"`

	// SpawnIntervalStep shortens the spawn period once per wave
	SpawnIntervalStep float64 `json:"spawnIntervalStep"`

	// SpawnIntervalMin is the floor of the enemy spawn period
	SpawnIntervalMin float64 `json:"spawnIntervalMin"`

	// EnemyJitterX and EnemyJitterZ are the full widths of the enemy spawn jitter
	EnemyJitterX float64 `json:"enemyJitterX"`
	EnemyJitterZ float64 `json:"enemyJitterZ"`

	// ItemJitterX and ItemJitterZ are the full widths of the item spawn jitter
	ItemJitterX float64 `json:"itemJitterX"`
	ItemJitterZ float64 `json:"itemJitterZ"`

	// ItemSpawnMin and ItemSpawnMax bound the random delay between item spawns
	ItemSpawnMin float64 `json:"itemSpawnMin"`
	ItemSpawnMax float64 `json:"itemSpawnMax"`

	// PatternSpacing is the lateral distance between bullet columns
	PatternSpacing float64 `json:"patternSpacing"`

	// SpeedMultipliers is the bullet speed ladder walked by speed items
	SpeedMultipliers []float64 `json:"speedMultipliers"`

	// ChainWindow is the longest gap in seconds between kills that still extends a chain
	ChainWindow float64 `json:"chainWindow"`

	// ChainMax caps the chain multiplier
	ChainMax int `json:"chainMax"`

	// KillScore is multiplied by the chain value on every kill
	KillScore int `json:"killScore"`

	// BonusScore is awarded for power-ups collected at their cap
	BonusScore int `json:"bonusScore"`

	// MaxTickDelta clamps the per-frame delta so a stalled host cannot tunnel entities
	MaxTickDelta float64 `json:"maxTickDelta"`
}

// DefaultConfig returns the standard arcade tuning
func DefaultConfig() Config {
	return Config{
		SpawnDistance:           25,
		MaxObjectDistance:       30,
		BulletSpeed:             15,
		EnemySpeed:              2.4,
		EnemySpeedPerWave:       0.1,
		ItemSpeed:               1.8,
		ShotInterval:            0.3,
		InitialHP:               5,
		GameDuration:            120,
		CollisionDistance:       0.6,
		PassThroughThreshold:    3,
		MaxBullets:              200,
		MaxEnemies:              100,
		MaxItemsPerType:         50,
		MaxHitEffects:           100,
		MaxChainLabels:          100,
		HitEffectDuration:       0.3,
		WaveLength:              30,
		BaseEnemiesPerWave:      2,
		EnemyCountScaleInterval: 20,
		MaxEnemiesPerSpawn:      12,
		SpawnIntervalInitial:    5.0,
		SpawnIntervalStep:       0.5,
		SpawnIntervalMin:        2.0,
		EnemyJitterX:            12,
		EnemyJitterZ:            4,
		ItemJitterX:             10,
		ItemJitterZ:             4,
		ItemSpawnMin:            15,
		ItemSpawnMax:            30,
		PatternSpacing:          0.6,
		SpeedMultipliers:        []float64{1.0, 1.2, 1.4},
		ChainWindow:             0.8,
		ChainMax:                9,
		KillScore:               100,
		BonusScore:              200,
		MaxTickDelta:            0.1,
	}
}

// LoadConfig reads a JSON override file on top of DefaultConfig. Missing keys keep
// their defaults; the result is clamped.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	ClampConfig(&cfg)
	return cfg, nil
}

// ClampConfig enforces hard bounds in place
func ClampConfig(c *Config) {
	if c == nil {
		return
	}
	d := DefaultConfig()

	c.SpawnDistance = clampFloat(c.SpawnDistance, 1, 1000)
	c.MaxObjectDistance = clampFloat(c.MaxObjectDistance, c.SpawnDistance+1, 2000)
	c.BulletSpeed = clampFloat(c.BulletSpeed, 0.1, 500)
	c.EnemySpeed = clampFloat(c.EnemySpeed, 0.1, 100)
	c.EnemySpeedPerWave = clampFloat(c.EnemySpeedPerWave, 0, 10)
	c.ItemSpeed = clampFloat(c.ItemSpeed, 0.1, 100)
	c.ShotInterval = clampFloat(c.ShotInterval, 0.01, 10)
	c.InitialHP = clampInt(c.InitialHP, 1, 100)
	c.GameDuration = clampFloat(c.GameDuration, 1, 3600)
	c.CollisionDistance = clampFloat(c.CollisionDistance, 0.01, 10)
	c.PassThroughThreshold = clampFloat(c.PassThroughThreshold, 0, c.MaxObjectDistance)

	c.MaxBullets = clampInt(c.MaxBullets, 1, 10000)
	c.MaxEnemies = clampInt(c.MaxEnemies, 1, 10000)
	c.MaxItemsPerType = clampInt(c.MaxItemsPerType, 1, 1000)
	c.MaxHitEffects = clampInt(c.MaxHitEffects, 1, 10000)
	c.MaxChainLabels = clampInt(c.MaxChainLabels, 1, 10000)
	c.HitEffectDuration = clampFloat(c.HitEffectDuration, 0.01, 10)

	c.WaveLength = clampFloat(c.WaveLength, 1, 3600)
	c.BaseEnemiesPerWave = clampInt(c.BaseEnemiesPerWave, 0, 100)
	c.EnemyCountScaleInterval = clampFloat(c.EnemyCountScaleInterval, 1, 3600)
	c.MaxEnemiesPerSpawn = clampInt(c.MaxEnemiesPerSpawn, 1, 1000)
	c.SpawnIntervalMin = clampFloat(c.SpawnIntervalMin, 0.05, 600)
	c.SpawnIntervalInitial = clampFloat(c.SpawnIntervalInitial, c.SpawnIntervalMin, 600)
	c.SpawnIntervalStep = clampFloat(c.SpawnIntervalStep, 0, 600)

	c.EnemyJitterX = clampFloat(c.EnemyJitterX, 0, 1000)
	c.EnemyJitterZ = clampFloat(c.EnemyJitterZ, 0, 1000)
	c.ItemJitterX = clampFloat(c.ItemJitterX, 0, 1000)
	c.ItemJitterZ = clampFloat(c.ItemJitterZ, 0, 1000)
	c.ItemSpawnMin = clampFloat(c.ItemSpawnMin, 0.1, 3600)
	c.ItemSpawnMax = clampFloat(c.ItemSpawnMax, c.ItemSpawnMin, 3600)

	c.PatternSpacing = clampFloat(c.PatternSpacing, 0.01, 10)
	if len(c.SpeedMultipliers) == 0 {
		c.SpeedMultipliers = d.SpeedMultipliers
	}
	for i := range c.SpeedMultipliers {
		c.SpeedMultipliers[i] = clampFloat(c.SpeedMultipliers[i], 0.1, 10)
	}

	c.ChainWindow = clampFloat(c.ChainWindow, 0, 60)
	c.ChainMax = clampInt(c.ChainMax, 1, 99)
	c.KillScore = clampInt(c.KillScore, 0, 1_000_000)
	c.BonusScore = clampInt(c.BonusScore, 0, 1_000_000)
	c.MaxTickDelta = clampFloat(c.MaxTickDelta, 0.001, 1)
}

func clampInt(value, minValue, maxValue int) int {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func clampFloat(value, minValue, maxValue float64) float64 {
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}
