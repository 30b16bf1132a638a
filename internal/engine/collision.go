package engine

import (
	"github.com/tomz197/starfighter/internal/physics"
)

// EventKind tags a collision outcome for the session to apply.
type EventKind int

const (
	EventKill EventKind = iota
	EventPickup
	EventShieldBroken
	EventGameOver
)

// Event is one resolved collision outcome.
type Event struct {
	Kind   EventKind
	Enemy  EnemyKind // EventKill
	Power  PowerKind // EventPickup
	Reward int       // score delta; zero for invincible contact kills
}

// collider resolves all pairwise collisions once per tick. The cell grid
// and the scratch slices are reused between ticks to avoid allocations.
type collider struct {
	grid        *physics.CellGrid
	enemies     []ID
	projectiles []ID
	powerups    []ID
	events      []Event
}

func newCollider(vw, vh int) *collider {
	return &collider{
		grid: physics.NewCellGrid(float64(vw), float64(vh), collisionCellSize),
	}
}

// resolve detects and resolves overlaps in a fixed category order so that
// simultaneous collisions are deterministic:
//
//  1. projectile vs enemy: enemy destroyed, projectile consumed, kill scored.
//  2. player vs power-up: effect applied to the player immediately.
//  3. player vs enemy: evaluated last, so a shield or invincibility picked up
//     in rule 2 of the same tick still saves the player.
//
// Enemies leave the live set the moment they are first hit, so two
// projectiles landing on one enemy in the same tick credit one kill.
func (c *collider) resolve(st *Store, p *Player) []Event {
	c.enemies = c.enemies[:0]
	c.projectiles = c.projectiles[:0]
	c.powerups = c.powerups[:0]
	c.events = c.events[:0]

	st.ForEach(func(e *Entity) {
		switch e.Category {
		case CategoryEnemy:
			c.enemies = append(c.enemies, e.ID)
		case CategoryProjectile:
			c.projectiles = append(c.projectiles, e.ID)
		case CategoryPowerUp:
			c.powerups = append(c.powerups, e.ID)
		}
	})

	c.resolveProjectileEnemy(st)
	c.resolvePlayerPowerUp(st, p)
	c.resolvePlayerEnemy(st, p)

	return c.events
}

// resolveProjectileEnemy runs rule 1 with the cell grid as broad phase:
// enemies are indexed by their glyph center, each projectile queries its
// 3x3 neighborhood and precise span overlap decides the hit.
func (c *collider) resolveProjectileEnemy(st *Store) {
	c.grid.Clear()
	for i, id := range c.enemies {
		e := st.Get(id)
		c.grid.Insert(e.X+float64(e.Width)/2, e.Y, i)
	}

	for _, pid := range c.projectiles {
		pr := st.Get(pid)
		if pr == nil || !pr.Alive {
			continue
		}
		c.grid.QueryAround(pr.X+float64(pr.Width)/2, pr.Y, func(i int) bool {
			en := st.Get(c.enemies[i])
			if en == nil || !en.Alive {
				return false
			}
			if !physics.CellsCoincide(pr.X, pr.Y, pr.Width, en.X, en.Y, en.Width, 0) {
				return false
			}
			en.Alive = false
			pr.Alive = false
			c.events = append(c.events, Event{
				Kind:   EventKill,
				Enemy:  en.Kind,
				Reward: en.Kind.Reward(),
			})
			return true // projectile consumed, stop scanning
		})
	}
}

// resolvePlayerPowerUp runs rule 2. The effect is applied to the player's
// status here, before rule 3 evaluates contact, per the resolution order.
func (c *collider) resolvePlayerPowerUp(st *Store, p *Player) {
	for _, id := range c.powerups {
		pu := st.Get(id)
		if pu == nil || !pu.Alive {
			continue
		}
		if !physics.CellsCoincide(p.X, p.Y, p.Width, pu.X, pu.Y, pu.Width, PickupMargin) {
			continue
		}
		pu.Alive = false
		p.Status.ApplyPickup(pu.Power)
		c.events = append(c.events, Event{
			Kind:   EventPickup,
			Power:  pu.Power,
			Reward: PowerUpScoreBonus,
		})
	}
}

// resolvePlayerEnemy runs rule 3. Invincibility destroys the enemy without
// score and without consuming the shield; a shield charge absorbs exactly
// one collision; otherwise the session ends.
func (c *collider) resolvePlayerEnemy(st *Store, p *Player) {
	for _, id := range c.enemies {
		en := st.Get(id)
		if en == nil || !en.Alive {
			continue
		}
		if !physics.CellsCoincide(p.X, p.Y, p.Width, en.X, en.Y, en.Width, 0) {
			continue
		}

		switch {
		case p.Status.Invincible():
			en.Alive = false
			c.events = append(c.events, Event{Kind: EventKill, Enemy: en.Kind, Reward: 0})
		case p.Status.AbsorbHit():
			en.Alive = false
			c.events = append(c.events, Event{Kind: EventShieldBroken})
		default:
			c.events = append(c.events, Event{Kind: EventGameOver})
			return
		}
	}
}
