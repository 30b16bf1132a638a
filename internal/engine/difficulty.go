package engine

import "math"

// Params are the difficulty scalar and every parameter derived from it,
// recomputed once per tick. All derived values are monotonic in D.
type Params struct {
	D               float64    // difficulty scalar in [0, 1]
	SpawnInterval   float64    // seconds between spawn attempts
	SpeedMultiplier float64    // applied to enemy base speeds
	PowerUpChance   float64    // probability of a power-up per spawn interval
	Weights         [3]float64 // enemy type weights, indexed by EnemyKind
}

// ComputeDifficulty maps elapsed session time (seconds) and current score to
// the difficulty parameters. Pure function: same inputs, same outputs, no
// side effects. The scalar ramps gently for 30 s, steeply to 0.70 by 60 s,
// then saturates in time and grows only with score, capped at 1.0.
func ComputeDifficulty(elapsed float64, score int) Params {
	var d float64
	switch {
	case elapsed < 30:
		d = 0.15 * (elapsed / 30)
	case elapsed < 60:
		d = 0.15 + 0.55*((elapsed-30)/30)
	default:
		bonus := math.Min(0.30, float64(score)/1000)
		d = math.Min(1.0, 0.70+bonus)
	}

	p := Params{
		D:               d,
		SpawnInterval:   math.Max(0.4, 2.0-1.6*d),
		SpeedMultiplier: 1.0 + 1.5*d,
		PowerUpChance:   0.05 + 0.15*d,
	}

	// Linear shift from an all-easy mix toward one third hunters. The
	// weights sum to 1 at every d.
	p.Weights[EnemyStraight] = 0.8 - 0.5*d
	p.Weights[EnemyZigzag] = 0.2 + 0.2*d
	p.Weights[EnemyHunter] = 0.3 * d

	return p
}
