package engine

// Status holds the player's transient state as three independent small
// state machines: the monotonic ship tier, the one-shot shield, and the
// single timed power-up slot, plus the fire cooldown they feed into.
type Status struct {
	Tier      int
	Shield    bool
	Active    PowerKind // PowerNone, PowerRapidFire or PowerInvincibility
	Remaining float64   // seconds left on the timed power-up
	Cooldown  float64   // seconds until the next shot is allowed
}

// TierForScore returns the ship tier a score entitles to: 0 below 100,
// stepping up at 100, 200 and 300.
func TierForScore(score int) int {
	tier := 0
	for _, th := range TierThresholds {
		if score >= th {
			tier++
		}
	}
	return tier
}

// Promote raises the tier to match the score. The tier never decreases
// within a session. Returns true when an upgrade happened.
func (st *Status) Promote(score int) bool {
	if t := TierForScore(score); t > st.Tier {
		st.Tier = t
		return true
	}
	return false
}

// ApplyPickup applies a collected power-up. A shield pickup overwrites any
// prior shield charge (no stacking). A timed pickup always wins over the
// currently active one and starts a fresh duration.
func (st *Status) ApplyPickup(kind PowerKind) {
	switch kind {
	case PowerShield:
		st.Shield = true
	case PowerRapidFire, PowerInvincibility:
		st.Active = kind
		st.Remaining = PowerUpDuration
	}
}

// TickDown advances the status timers by one tick.
func (st *Status) TickDown(dt float64) {
	if st.Cooldown > 0 {
		st.Cooldown -= dt
		if st.Cooldown < 0 {
			st.Cooldown = 0
		}
	}
	if st.Active != PowerNone {
		st.Remaining -= dt
		if st.Remaining <= 0 {
			st.Active = PowerNone
			st.Remaining = 0
		}
	}
}

// Invincible reports whether enemy contact is currently harmless.
func (st *Status) Invincible() bool {
	return st.Active == PowerInvincibility
}

// RapidFire reports whether the shortened fire cooldown applies.
func (st *Status) RapidFire() bool {
	return st.Active == PowerRapidFire
}

// AbsorbHit consumes the shield charge for one enemy collision. Returns
// false if no charge was available.
func (st *Status) AbsorbHit() bool {
	if !st.Shield {
		return false
	}
	st.Shield = false
	return true
}

// FireReady reports whether the cooldown allows firing this tick.
func (st *Status) FireReady() bool {
	return st.Cooldown <= 0
}

// ResetCooldown restarts the fire cooldown after a shot, shortened while
// rapid fire is active.
func (st *Status) ResetCooldown() {
	if st.RapidFire() {
		st.Cooldown = RapidFireCooldown
	} else {
		st.Cooldown = NormalFireCooldown
	}
}
