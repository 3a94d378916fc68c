package config

import "image/color"

// TileSize is the edge length of one grid cell in pixels.
const TileSize = 16

// PhysicsConfig contains the player movement model. Speeds are in pixels per
// second, accelerations in pixels per second squared, windows in seconds.
type PhysicsConfig struct {
	MaxRunSpeed          float64 `yaml:"max_run_speed"`
	GroundAccel          float64 `yaml:"ground_accel"`
	AirAccel             float64 `yaml:"air_accel"`
	GroundFriction       float64 `yaml:"ground_friction"`
	AirFriction          float64 `yaml:"air_friction"`
	Gravity              float64 `yaml:"gravity"`
	MaxFallSpeed         float64 `yaml:"max_fall_speed"`
	JumpSpeed            float64 `yaml:"jump_speed"`
	JumpHoldGravityScale float64 `yaml:"jump_hold_gravity_scale"`
	CoyoteTime           float64 `yaml:"coyote_time"`
	JumpBufferTime       float64 `yaml:"jump_buffer_time"`

	// Wall sliding
	WallSlideSpeed float64 `yaml:"wall_slide_speed"`
	WallSlideGrip  float64 `yaml:"wall_slide_grip"`
	WallJumpX      float64 `yaml:"wall_jump_x"`
	WallJumpY      float64 `yaml:"wall_jump_y"`

	// Dash
	DashSpeed float64 `yaml:"dash_speed"`
	DashTime  float64 `yaml:"dash_time"`
	MaxDashes int     `yaml:"max_dashes"`

	// Collision snap offset away from a wall
	SnapEpsilon float64 `yaml:"snap_epsilon"`
}

// PlayerConfig contains player dimensions.
type PlayerConfig struct {
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// PickupConfig contains collectible and recharge pickup values.
type PickupConfig struct {
	BerrySize         float64 `yaml:"berry_size"`
	CrystalSize       float64 `yaml:"crystal_size"`
	CrystalRespawn    float64 `yaml:"crystal_respawn"`
	CheckpointInset   float64 `yaml:"checkpoint_inset"`
	GoalInset         float64 `yaml:"goal_inset"`
	CheckpointMessage string  `yaml:"checkpoint_message"`
	CheckpointMsgTime float64 `yaml:"checkpoint_message_time"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowX       float64 `yaml:"follow_x"`        // exponential approach rate, horizontal
	FollowY       float64 `yaml:"follow_y"`        // exponential approach rate, vertical
	FramingX      float64 `yaml:"framing_x"`       // player position within the view, 0..1
	FramingY      float64 `yaml:"framing_y"`       // player position within the view, 0..1
	ShakeDecay    float64 `yaml:"shake_decay"`     // intensity lost per second
	MaxShake      float64 `yaml:"max_shake"`       // pixels at intensity 1
	LandShake     float64 `yaml:"land_shake"`      // intensity on a hard landing
	LandShakeFall float64 `yaml:"land_shake_fall"` // fraction of max fall speed that counts as hard
}

// ScreenShakeConfig contains the shake intensity raised by each event.
type ScreenShakeConfig struct {
	Death float64 `yaml:"death"`
	Dash  float64 `yaml:"dash"`
	Win   float64 `yaml:"win"`
}

// ParticleConfig contains particle integration values.
type ParticleConfig struct {
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	MinSpeed   float64 `yaml:"min_speed"`   // fraction of burst speed
	SpeedRange float64 `yaml:"speed_range"` // added fraction of burst speed
	MinLife    float64 `yaml:"min_life"`
	LifeRange  float64 `yaml:"life_range"`
	MinSize    float64 `yaml:"min_size"`
	SizeRange  float64 `yaml:"size_range"`
}

// Burst describes one particle burst.
type Burst struct {
	Count int
	Color color.RGBA
	Speed float64
}

// BurstConfig maps gameplay moments to particle bursts.
type BurstConfig struct {
	Death           Burst
	Dash            Burst
	Jump            Burst
	WallJump        Burst
	Berry           Burst
	Crystal         Burst
	CrystalRestored Burst
	Checkpoint      Burst
	Win             Burst
}

// RunConfig contains frame loop and run lifecycle values.
type RunConfig struct {
	FrameClamp      float64 `yaml:"frame_clamp"` // largest dt accepted per tick
	DeathTime       float64 `yaml:"death_time"`  // seconds before respawn
	FallMargin      float64 `yaml:"fall_margin"` // pixels below the level that kill
	IntroMessage    string  `yaml:"intro_message"`
	IntroMessageFor float64 `yaml:"intro_message_for"`
	ResetMessage    string  `yaml:"reset_message"`
	ResetMessageFor float64 `yaml:"reset_message_for"`
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Pickup PickupConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Particles ParticleConfig
var Bursts BurstConfig
var Run RunConfig

// Shared colors. Translucent ones are non-premultiplied.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.NRGBA{R: 0, G: 0, B: 0, A: 150}
	HUDText      = color.RGBA{R: 0xe8, G: 0xf1, B: 0xff, A: 255}
	HUDPanel     = color.NRGBA{R: 0x0b, G: 0x16, B: 0x24, A: 170}

	// Background
	SkyTop    = rgb(0x0f2034)
	SkyMiddle = rgb(0x1f4463)
	SkyBottom = rgb(0x4d8ba2)
	Sun       = color.NRGBA{R: 255, G: 214, B: 145, A: 46}
	Mountains = [3]color.NRGBA{
		{R: 26, G: 52, B: 78, A: 140},
		{R: 17, G: 40, B: 62, A: 153},
		{R: 9, G: 26, B: 44, A: 184},
	}

	// Level
	Rock       = rgb(0x223f5e)
	RockEdge   = rgb(0x3b6388)
	SpikeColor = rgb(0xffe9cf)
	GoalFrame  = rgb(0x203a53)
	GoalGold   = rgb(0xffd889)
	GoalShine  = color.NRGBA{R: 255, G: 248, B: 190, A: 115}

	// Pickups
	BerryRed    = rgb(0xf4587b)
	BerryShine  = rgb(0xffd6e0)
	CrystalCyan = rgb(0x81faff)
	CrystalUsed = color.NRGBA{R: 84, G: 130, B: 150, A: 140}
	PoleIdle    = rgb(0x8f9ab0)
	PoleActive  = rgb(0xffe497)
	FlagIdle    = rgb(0xbdc5d3)
	FlagActive  = rgb(0xffd06b)

	// Player
	PlayerBody = rgb(0xf3f5ff)
	PlayerDash = rgb(0x9bf9ff)
	PlayerHair = rgb(0xf06e58)
	PlayerEye  = rgb(0x13253a)
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every tuning value to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Summit",
	}

	Physics = PhysicsConfig{
		MaxRunSpeed:          155,
		GroundAccel:          1800,
		AirAccel:             1300,
		GroundFriction:       1900,
		AirFriction:          640,
		Gravity:              1500,
		MaxFallSpeed:         420,
		JumpSpeed:            318,
		JumpHoldGravityScale: 0.55,
		CoyoteTime:           0.11,
		JumpBufferTime:       0.11,

		WallSlideSpeed: 86,
		WallSlideGrip:  900,
		WallJumpX:      220,
		WallJumpY:      310,

		DashSpeed: 360,
		DashTime:  0.14,
		MaxDashes: 1,

		SnapEpsilon: 0.001,
	}

	Player = PlayerConfig{
		CollisionWidth:  12,
		CollisionHeight: 14,
	}

	Pickup = PickupConfig{
		BerrySize:         12,
		CrystalSize:       14,
		CrystalRespawn:    2.2,
		CheckpointInset:   2,
		GoalInset:         2,
		CheckpointMessage: "Checkpoint secured.",
		CheckpointMsgTime: 1.2,
	}

	Camera = CameraConfig{
		FollowX:       8,
		FollowY:       7,
		FramingX:      0.5,
		FramingY:      0.52,
		ShakeDecay:    2.8,
		MaxShake:      9,
		LandShake:     0.08,
		LandShakeFall: 0.9,
	}

	ScreenShake = ScreenShakeConfig{
		Death: 0.36,
		Dash:  0.18,
		Win:   0.2,
	}

	Particles = ParticleConfig{
		Gravity:    820,
		Damping:    0.96,
		MinSpeed:   0.35,
		SpeedRange: 0.75,
		MinLife:    0.18,
		LifeRange:  0.33,
		MinSize:    2,
		SizeRange:  3,
	}

	Bursts = BurstConfig{
		Death:           Burst{Count: 18, Color: rgb(0xff7f74), Speed: 92},
		Dash:            Burst{Count: 9, Color: rgb(0x70f0ff), Speed: 60},
		Jump:            Burst{Count: 5, Color: rgb(0xeceef9), Speed: 56},
		WallJump:        Burst{Count: 7, Color: rgb(0xeceef9), Speed: 70},
		Berry:           Burst{Count: 10, Color: rgb(0xff6688), Speed: 80},
		Crystal:         Burst{Count: 12, Color: rgb(0x8df6ff), Speed: 95},
		CrystalRestored: Burst{Count: 8, Color: rgb(0xb9ffff), Speed: 66},
		Checkpoint:      Burst{Count: 14, Color: rgb(0xffd87f), Speed: 80},
		Win:             Burst{Count: 22, Color: rgb(0xfff5b2), Speed: 120},
	}

	Run = RunConfig{
		FrameClamp:      1.0 / 30.0,
		DeathTime:       0.46,
		FallMargin:      120,
		IntroMessage:    "Climb to the summit. Dash crystals refill your air dash.",
		IntroMessageFor: 4,
		ResetMessage:    "Run reset. Reach the summit!",
		ResetMessageFor: 1.5,
	}

	Controls = defaultControls()
	Audio = defaultAudio()
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}
