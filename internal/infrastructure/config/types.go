package config

import "time"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Effect  EffectConfig  `yaml:"effect"`
	Portal  PortalConfig  `yaml:"portal"`
	Maps    MapsConfig    `yaml:"maps"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

// FrameDuration returns the simulated time of one tick
func (c DisplayConfig) FrameDuration() time.Duration {
	if c.Framerate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.Framerate)
}

type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	GravityLimit    float64 `yaml:"gravityLimit"`
	DefaultTileSize int     `yaml:"defaultTileSize"`
	TileScale       int     `yaml:"tileScale"`
}

type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Radius         float64 `yaml:"radius"`
	MaxHealth      float64 `yaml:"maxHealth"`
	MaxMana        float64 `yaml:"maxMana"`
	PhysicalDamage float64 `yaml:"physicalDamage"`
	MagicDamage    float64 `yaml:"magicDamage"`
	MoveSpeed      float64 `yaml:"moveSpeed"`
	JumpStrength   float64 `yaml:"jumpStrength"` // added to gravity
	JumpCooldownMs int     `yaml:"jumpCooldownMs"`
	ExpBase        float64 `yaml:"expBase"`
	ExpRequired    float64 `yaml:"expRequired"`
	AttackOffset   float64 `yaml:"attackOffset"`
	Invincible     bool    `yaml:"invincible"`
}

// JumpCooldown returns the minimum time between jumps
func (c PlayerConfig) JumpCooldown() time.Duration {
	return time.Duration(c.JumpCooldownMs) * time.Millisecond
}

type EnemyConfig struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	Radius               float64 `yaml:"radius"`
	MoveSpeed            float64 `yaml:"moveSpeed"`
	ChaseMultiplier      float64 `yaml:"chaseMultiplier"`
	DetectionWidth       float64 `yaml:"detectionWidth"`
	DetectionHeightScale float64 `yaml:"detectionHeightScale"`
	AttackBuffer         float64 `yaml:"attackBuffer"`
	AttackCooldownMs     int     `yaml:"attackCooldownMs"`
}

// AttackCooldown returns the minimum time between enemy strikes
func (c EnemyConfig) AttackCooldown() time.Duration {
	return time.Duration(c.AttackCooldownMs) * time.Millisecond
}

type EffectConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Radius       float64 `yaml:"radius"`
	Frames       int     `yaml:"frames"`
	FrameMs      int     `yaml:"frameMs"`
	SingleTarget bool    `yaml:"singleTarget"`
}

// FrameDuration returns the duration of one effect frame
func (c EffectConfig) FrameDuration() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

type PortalConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

type MapsConfig struct {
	Dir          string `yaml:"dir"`
	Tutorial     string `yaml:"tutorial"`
	PlatformEnds int    `yaml:"platformEnds"`
	GroundEnds   int    `yaml:"groundEnds"`
	SpawnPadding int    `yaml:"spawnPadding"`
}
