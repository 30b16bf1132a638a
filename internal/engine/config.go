package engine

import "time"

// Simulation tick. 15 ticks per second matches the feel of the terminal
// original and keeps per-tick displacement small relative to glyph widths,
// which the discrete-grid collision test relies on.
const (
	TicksPerSecond = 15
	TickSeconds    = 1.0 / 15.0
	TickDuration   = time.Second / TicksPerSecond
)

// Viewport
const (
	MinViewportWidth  = 40
	MinViewportHeight = 12
	PlayfieldTop      = 1.0 // row 0 is reserved for the HUD
	PlayerStartX      = 5.0
)

// Population caps
const (
	MaxEnemies  = 15
	MaxPowerUps = 2
)

// Scoring
const (
	RewardStraight    = 10
	RewardZigzag      = 15
	RewardHunter      = 25
	PowerUpScoreBonus = 5
)

// TierThresholds are the score cutoffs for ship tiers: reaching
// TierThresholds[n-1] points promotes the ship to tier n.
var TierThresholds = [3]int{100, 200, 300}

// Player
const (
	PlayerStep         = 1.0 // cells per tick of held direction
	NormalFireCooldown = 0.3 // seconds between shots
	RapidFireCooldown  = 0.1
)

// Projectiles
const (
	ProjectileSpeed      = 18.0 // cells per second
	RapidProjectileSpeed = 27.0
	ProjectileDiagSlope  = 0.45 // vertical slope of tier >= 2 diagonal shots
)

// Enemy base speeds in cells per second, scaled by the difficulty speed
// multiplier at spawn time evaluation each tick.
const (
	StraightBaseSpeed = 9.0
	ZigzagBaseSpeed   = 10.5
	HunterBaseSpeed   = 8.5
)

// Zigzag wave shape. Periods are in ticks for a full wave; each enemy rolls
// its period once at spawn.
const (
	ZigzagAmplitude = 3.0
	ZigzagMinPeriod = 12
	ZigzagMaxPeriod = 24
)

// HunterRetargetTicks is how many ticks a hunter pursues its last target
// fix before re-reading the player position.
const HunterRetargetTicks = 5

// Power-ups
const (
	PowerUpDuration   = 4.0  // seconds of RapidFire/Invincibility effect
	PowerUpLifetime   = 12.0 // seconds before an uncollected power-up despawns
	PowerUpDriftSpeed = 6.0  // cells per second, leftward
	PickupMargin      = 1    // extra cells of forgiveness when collecting
)

// Collision broad phase. Cell size must cover the widest glyph-pair
// interaction distance (enemy half-width + projectile half-width).
const collisionCellSize = 6.0

// HUD
const MessageSeconds = 3.0
