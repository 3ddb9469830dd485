package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // horizontal speed in pixels/second
	JumpForce float64 // upward impulse applied on jump
	Gravity   float64 // pixels/second^2

	// Dash
	DashSpeed    float64
	DashDuration float64 // seconds
	DashCooldown float64 // seconds

	// Combat
	Health         int
	AttackRange    float64 // forward reach of a melee swing in pixels
	AttackCooldown float64 // seconds between attack requests
	ParryCooldown  float64 // seconds between parry requests
	ParryWindow    float64 // damage immunity window after a parry starts

	// Hurt reaction
	HurtDuration      float64 // input lockout after taking a hit
	HurtFlashInterval float64 // flash toggle period while hurt
	KnockbackX        float64 // horizontal knockback, applied away from attacker
	KnockbackY        float64 // vertical knockback (negative = up)

	// State thresholds
	RunSpeedThreshold float64 // |vx| above this renders Run instead of Idle
	FaceTurnThreshold float64 // |vx| above this may flip facing

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64
}

// BossConfig contains boss-related configuration values
type BossConfig struct {
	Health    int
	MoveSpeed float64

	// Decision timing
	ActionDelayBase float64 // base delay between decisions, scaled by a random factor
	ActionDelayMin  float64 // lower bound of the random scale factor
	ActionDelayMax  float64 // upper bound of the random scale factor
	MoveDurationMin float64 // seconds
	MoveDurationMax float64 // seconds
	MoveMargin      float64 // required room from a boundary before a move is allowed

	// Attack cooldowns (seconds)
	Attack1Cooldown  float64
	Attack2Cooldown  float64
	UltimateCooldown float64

	// Damage flash
	FlashDuration float64
	FlashInterval float64

	// Hitbox geometry
	HitboxWidth       float64
	HitboxHeight      float64
	AttackHitboxWidth float64 // widened hitbox while an attack is active
	HitboxYOffset     float64 // hitbox is shifted down from the sprite anchor

	// Dimensions
	FrameWidth  int
	FrameHeight int
}

// CombatConfig contains combat resolution configuration values
type CombatConfig struct {
	PlayerAttackDamage int // damage per player hit on the boss
	BossContactDamage  int // damage per active boss attack overlap
}

// ArenaConfig describes the flat fight arena. Values act as the fallback
// when no arena map is available.
type ArenaConfig struct {
	GroundY      float64 // y coordinate of the ground plane (top of the floor)
	LeftBoundary float64 // minimum x for the player's collision box
	BossMinX     float64 // left bound for boss movement (box left edge)
	BossMaxX     float64 // right bound for boss movement (box right edge)
	PlayerSpawnX float64
	BossSpawnX   float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains the end-of-fight screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	VictoryColor      color.RGBA
	DefeatColor       color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// HUDConfig contains health bar display configuration
type HUDConfig struct {
	PlayerBarWidth  float64
	PlayerBarHeight float64
	BossBarWidth    float64
	BossBarHeight   float64
	Margin          float64
	DrainDuration   float64 // seconds for the displayed bar to catch up after damage

	// Player bar color thresholds (fraction of max health)
	WarnThreshold   float64
	DangerThreshold float64
}

// TimeConfig contains simulation timing configuration
type TimeConfig struct {
	MaxDelta float64 // frame delta clamp in seconds, guards against hitches
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the fight
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Boss BossConfig
var Combat CombatConfig
var Arena ArenaConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Time TimeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Time = TimeConfig{
		MaxDelta: 0.1,
	}

	Player = PlayerConfig{
		MoveSpeed: 300,
		JumpForce: 700,
		Gravity:   1800,

		DashSpeed:    800,
		DashDuration: 0.15,
		DashCooldown: 0.4,

		Health:         100,
		AttackRange:    50,
		AttackCooldown: 0.4,
		ParryCooldown:  0.8,
		ParryWindow:    0.8,

		HurtDuration:      0.4,
		HurtFlashInterval: 0.08,
		KnockbackX:        60,
		KnockbackY:        -300,

		RunSpeedThreshold: 10,
		FaceTurnThreshold: 1,

		FrameWidth:      160,
		FrameHeight:     128,
		CollisionWidth:  60,
		CollisionHeight: 100,
	}

	Boss = BossConfig{
		Health:    1000,
		MoveSpeed: 120,

		ActionDelayBase: 1.8,
		ActionDelayMin:  0.8,
		ActionDelayMax:  1.3,
		MoveDurationMin: 0.4,
		MoveDurationMax: 2.0,
		MoveMargin:      75,

		Attack1Cooldown:  1.5,
		Attack2Cooldown:  2.5,
		UltimateCooldown: 15,

		FlashDuration: 0.3,
		FlashInterval: 0.08,

		HitboxWidth:       150,
		HitboxHeight:      200,
		AttackHitboxWidth: 220,
		HitboxYOffset:     30,

		FrameWidth:  800,
		FrameHeight: 800,
	}

	Combat = CombatConfig{
		PlayerAttackDamage: 15,
		BossContactDamage:  5,
	}

	Arena = ArenaConfig{
		GroundY:      535,
		LeftBoundary: 25,
		BossMinX:     600,
		BossMaxX:     1250,
		PlayerSpawnX: 150,
		BossSpawnX:   950,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    36,
		MenuItemGap:       18,
		MenuOptions:       []string{"Resume", "Settings", "Exit to Menu"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            180,
		MenuStartY:        320,
		MenuItemHeight:    36,
		MenuItemGap:       16,
		MenuOptions:       []string{"Start Fight", "Settings", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 25, G: 10, B: 10, A: 255},
		VictoryColor:      BrightGreen,
		DefeatColor:       LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            220,
		MenuStartY:        360,
		MenuItemHeight:    36,
		MenuItemGap:       18,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	HUD = HUDConfig{
		PlayerBarWidth:  300,
		PlayerBarHeight: 22,
		BossBarWidth:    500,
		BossBarHeight:   26,
		Margin:          20,
		DrainDuration:   0.25,

		WarnThreshold:   0.6,
		DangerThreshold: 0.3,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
