package engine

import (
	"math"

	"github.com/tomz197/starfighter/internal/input"
)

// movePlayer applies the tick's sampled direction to the player and clamps
// the result to the playable rectangle. Input is applied before any other
// entity moves, so every tick sees one consistent control state.
func movePlayer(p *Player, dir input.Direction, vw, vh int) {
	switch dir {
	case input.DirUp:
		p.Y -= PlayerStep
	case input.DirDown:
		p.Y += PlayerStep
	case input.DirLeft:
		p.X -= PlayerStep
	case input.DirRight:
		p.X += PlayerStep
	}
	clampPlayer(p, vw, vh)
}

// clampPlayer keeps the whole ship glyph inside the playable rectangle.
func clampPlayer(p *Player, vw, vh int) {
	p.X = clampf(p.X, 0, float64(vw-p.Width-1))
	p.Y = clampf(p.Y, PlayfieldTop, float64(vh-2))
}

// moveEntities advances every live non-player entity by one tick and marks
// entities that left the viewport not-alive. Enemies and power-ups despawn
// past the trailing (left) edge; projectiles despawn past any edge.
func moveEntities(st *Store, playerX, playerY float64, par Params, vw, vh int) {
	dt := TickSeconds

	st.ForEach(func(e *Entity) {
		switch e.Category {
		case CategoryEnemy:
			moveEnemy(e, playerX, playerY, par.SpeedMultiplier, dt)
			if trailingEdge(e, vh) {
				e.Alive = false
			}
		case CategoryProjectile:
			e.X += e.DirX * e.Speed * dt
			e.Y += e.DirY * e.Speed * dt
			if offViewport(e, vw, vh) {
				e.Alive = false
			}
		case CategoryPowerUp:
			e.X -= PowerUpDriftSpeed * dt
			e.Lifetime -= dt
			if e.Lifetime <= 0 || trailingEdge(e, vh) {
				e.Alive = false
			}
		}
	})
}

// moveEnemy advances one enemy according to its movement rule.
func moveEnemy(e *Entity, px, py float64, mult, dt float64) {
	speed := e.Speed * mult

	switch e.Kind {
	case EnemyStraight:
		e.X -= speed * dt

	case EnemyZigzag:
		e.X -= speed * dt
		e.Phase++
		e.Y = e.BaseY + e.Amplitude*triangleWave(e.Phase, e.Period)

	case EnemyHunter:
		// Proportional pursuit with a cadenced target fix: the hunter
		// re-reads the player position every few ticks and steps toward
		// the last fix in between, so the chase telegraphs. When already
		// aligned on an axis the unit vector is that axis, so ties
		// resolve to the dominant axis.
		if e.Phase%HunterRetargetTicks == 0 {
			e.TargetX, e.TargetY = px, py
		}
		e.Phase++
		dx := e.TargetX - e.X
		dy := e.TargetY - e.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			return
		}
		step := speed * dt
		if step >= dist {
			e.X, e.Y = e.TargetX, e.TargetY
			return
		}
		e.X += dx / dist * step
		e.Y += dy / dist * step
	}
}

// triangleWave maps a tick phase onto [-1, 1] with the given full period:
// up over the first quarter, down through zero to -1 by three quarters,
// back to zero at the period boundary.
func triangleWave(phase, period int) float64 {
	if period <= 0 {
		return 0
	}
	q := float64(phase%period) / float64(period)
	switch {
	case q < 0.25:
		return 4 * q
	case q < 0.75:
		return 2 - 4*q
	default:
		return -4 + 4*q
	}
}

// trailingEdge reports whether an entity has fully left the field on the
// left edge or drifted off the top/bottom rows.
func trailingEdge(e *Entity, vh int) bool {
	if e.X+float64(e.Width) < 0 {
		return true
	}
	return e.Y < 0 || e.Y >= float64(vh)
}

// offViewport reports whether an entity has fully left the field on any edge.
func offViewport(e *Entity, vw, vh int) bool {
	if e.X >= float64(vw) {
		return true
	}
	return trailingEdge(e, vh)
}
