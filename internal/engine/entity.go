package engine

import (
	"math"
	"math/rand"
	"unicode/utf8"
)

// Category tags what an entity is; the movement and collision code switch
// on it instead of using interface dispatch so all entities live in one
// homogeneous store.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryEnemy
	CategoryProjectile
	CategoryPowerUp
)

// EnemyKind selects the movement rule an enemy follows.
type EnemyKind int

const (
	EnemyStraight EnemyKind = iota
	EnemyZigzag
	EnemyHunter
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyStraight:
		return "straight"
	case EnemyZigzag:
		return "zigzag"
	case EnemyHunter:
		return "hunter"
	}
	return "unknown"
}

// Reward returns the score awarded for destroying an enemy of this kind.
func (k EnemyKind) Reward() int {
	switch k {
	case EnemyZigzag:
		return RewardZigzag
	case EnemyHunter:
		return RewardHunter
	default:
		return RewardStraight
	}
}

func (k EnemyKind) glyph() string {
	switch k {
	case EnemyZigzag:
		return "-=+::+=-"
	case EnemyHunter:
		return "<+==+<"
	default:
		return "<<=+=>>"
	}
}

func (k EnemyKind) baseSpeed() float64 {
	switch k {
	case EnemyZigzag:
		return ZigzagBaseSpeed
	case EnemyHunter:
		return HunterBaseSpeed
	default:
		return StraightBaseSpeed
	}
}

// PowerKind identifies a power-up effect. PowerShield charges the one-shot
// shield; the other two are timed effects.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerShield
	PowerRapidFire
	PowerInvincibility
)

func (k PowerKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerRapidFire:
		return "rapid fire"
	case PowerInvincibility:
		return "invincibility"
	}
	return "none"
}

func (k PowerKind) glyph() string {
	switch k {
	case PowerShield:
		return "⊕"
	case PowerRapidFire:
		return "↯"
	case PowerInvincibility:
		return "★"
	}
	return "?"
}

// shipGlyphs maps ship tier to its glyph.
var shipGlyphs = [4]string{
	"{-+==+-}",
	"<-=:::=->",
	"{+-=^=-+}>",
	">[=X=]>",
}

// Entity is one record in the store: the shared identity plus the variant
// state its category and kind need. An entity occupies Width cells in a
// single row, starting at the cell of X.
type Entity struct {
	ID       ID
	Category Category
	X, Y     float64
	Glyph    string
	Width    int
	Alive    bool

	// Enemy state
	Kind      EnemyKind
	Speed     float64 // base speed, cells/s, before the difficulty multiplier
	Phase     int     // zigzag tick counter
	Period    int     // zigzag full-wave period in ticks, fixed at spawn
	Amplitude float64 // zigzag lateral amplitude, fixed at spawn
	BaseY     float64 // zigzag center row
	TargetX   float64 // hunter: last seen player position
	TargetY   float64

	// Projectile state
	Owner      Category // who fired it; only the player shoots today
	DirX, DirY float64  // unit direction vector

	// Power-up state
	Power    PowerKind
	Lifetime float64 // seconds until an uncollected power-up despawns
}

// newEnemy builds an enemy at the right edge of the viewport on the given
// row. Zigzag enemies roll their wave period once here; the row is nudged
// so the full wave stays inside the playable rectangle.
func newEnemy(kind EnemyKind, vw, vh int, row int, rng *rand.Rand) Entity {
	glyph := kind.glyph()
	width := utf8.RuneCountInString(glyph)

	e := Entity{
		Category: CategoryEnemy,
		Kind:     kind,
		Glyph:    glyph,
		Width:    width,
		Speed:    kind.baseSpeed(),
		X:        float64(vw - width - 1),
		Y:        float64(row),
	}

	if kind == EnemyZigzag {
		e.Amplitude = ZigzagAmplitude
		e.Period = ZigzagMinPeriod + rng.Intn(ZigzagMaxPeriod-ZigzagMinPeriod+1)
		e.BaseY = clampf(e.Y, PlayfieldTop+e.Amplitude, float64(vh-2)-e.Amplitude)
		e.Y = e.BaseY
	}

	return e
}

// newProjectile builds a player projectile heading along (dirX, dirY),
// normalized here so Speed is the true cell speed.
func newProjectile(x, y, dirX, dirY float64, rapid bool) Entity {
	glyph := "-->"
	speed := float64(ProjectileSpeed)
	if rapid {
		glyph = "-=>"
		speed = RapidProjectileSpeed
	}

	n := math.Hypot(dirX, dirY)
	if n == 0 {
		dirX, dirY, n = 1, 0, 1
	}

	return Entity{
		Category: CategoryProjectile,
		Owner:    CategoryPlayer,
		Glyph:    glyph,
		Width:    utf8.RuneCountInString(glyph),
		X:        x,
		Y:        y,
		DirX:     dirX / n,
		DirY:     dirY / n,
		Speed:    speed,
	}
}

// newPowerUp builds a power-up that drifts left until collected or expired.
func newPowerUp(kind PowerKind, x, y float64) Entity {
	glyph := kind.glyph()
	return Entity{
		Category: CategoryPowerUp,
		Power:    kind,
		Glyph:    glyph,
		Width:    utf8.RuneCountInString(glyph),
		X:        x,
		Y:        y,
		Lifetime: PowerUpLifetime,
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
