// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TileWidth    = 64.0 // полная ширина ромба
	TileHeight   = 32.0
	MapOffsetX   = 640.0 // экранная точка клетки (0,0)
	MapOffsetY   = 180.0
	MapSize      = 20
	MaxDeltaTime = 0.06

	CoreCol  = 10
	CoreRow  = 10
	SpawnCol = 0
	SpawnRow = 0

	StartingGold  = 500
	StartingMana  = 0
	StartingLives = 20

	KillReward     = 15
	IncomeInterval = 1.0 // секунды между начислениями пассивного дохода

	// Осада: урон юнита по блокирующему строению
	UnitAttackDamage   = 10
	UnitAttackInterval = 1.0
	CoreStrikeInterval = 1.0

	ImpactRadius = 10.0 // снаряд считается попавшим ближе этой дистанции
	ChestOffset  = 16.0 // точка прицеливания выше ног юнита
	MuzzleHeight = 40.0

	FirstBuildPhase = 10 // секунды
	NextBuildPhase  = 15
	WaveRewardBase  = 100
	WaveRewardStep  = 50

	UpgradeCostFactor     = 0.6
	UpgradeDamageFactor   = 1.3
	UpgradeRangeFactor    = 1.1
	UpgradeCooldownFactor = 0.9
	MinTowerCooldownMs    = 100
	SellRefundFactor      = 0.7

	SFXMinInterval = 50 * time.Millisecond

	DamageFlashDuration = 0.1
	HealthBarWidth      = 24.0
	HealthBarHeight     = 4.0
	UnitRadius          = 8.0
	ProjectileRadius    = 4.0
	EffectDuration      = 0.35

	SpeedButtonSize = 18.0
	HUDHeight       = 40
	BuildBarHeight  = 70
)

// NavigationPolicy selects how units pick their next cell.
type NavigationPolicy string

const (
	NavigationAStar  NavigationPolicy = "astar"
	NavigationGreedy NavigationPolicy = "greedy"
)

// Значения по умолчанию, меняются флагами фронтендов.
var (
	Navigation          = NavigationAStar
	PersistentCoreSiege = false
)

var (
	BackgroundColor   = color.RGBA{30, 41, 59, 255}
	GridLineColor     = color.RGBA{255, 255, 255, 40}
	TileColor         = color.RGBA{51, 65, 85, 255}
	TileAltColor      = color.RGBA{45, 58, 78, 255}
	HoverValidColor   = color.RGBA{74, 222, 128, 120}
	HoverInvalidColor = color.RGBA{255, 0, 0, 120}
	SpawnColor        = color.RGBA{239, 68, 68, 160}
	SelectionColor    = color.RGBA{251, 191, 36, 255}
	BuffedTint        = color.RGBA{255, 68, 68, 255}
	SlowedTint        = color.RGBA{59, 130, 246, 255}
	DamageFlashColor  = color.RGBA{255, 0, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextGoldColor     = color.RGBA{251, 191, 36, 255}
	TextManaColor     = color.RGBA{168, 85, 247, 255}
	TextLivesColor    = color.RGBA{239, 68, 68, 255}
	PanelColor        = color.RGBA{15, 23, 42, 220}
	BuildStateColor   = color.RGBA{70, 130, 180, 220}
	WaveStateColor    = color.RGBA{220, 60, 60, 220}
	HealthHighColor   = color.RGBA{34, 197, 94, 255}
	HealthMidColor    = color.RGBA{250, 204, 21, 255}
	HealthLowColor    = color.RGBA{239, 68, 68, 255}
	EffectColors      = map[string]color.RGBA{
		"HIT":       {255, 255, 255, 255},
		"EXPLOSION": {249, 115, 22, 255},
		"BUILD":     {148, 163, 184, 255},
		"ICE":       {6, 182, 212, 255},
		"MUZZLE":    {250, 204, 21, 255},
	}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
