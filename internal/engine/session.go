package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/tomz197/starfighter/internal/input"
)

// ErrViewportTooSmall is returned by NewSession when the playable area
// cannot meet the minimum size. Callers should treat it as a fatal startup
// failure, not a game state.
var ErrViewportTooSmall = errors.New("viewport too small")

// State is the session lifecycle: the simulation advances only while
// Running; GameOver freezes everything until a restart.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// Player is the singleton player record, owned by the session directly
// rather than the entity store since it always exists while a session does.
type Player struct {
	X, Y   float64
	Glyph  string
	Width  int
	Score  int
	Status Status
}

// Session owns one game: the clock, the entity store, the player record and
// the difficulty state. All of it is mutated only by Step, from a single
// goroutine; renderers consume the read-only snapshot produced at the end
// of a tick.
type Session struct {
	state  State
	width  int
	height int

	clock    Clock
	store    *Store
	player   Player
	params   Params
	collider *collider
	rng      *rand.Rand

	nextSpawn    float64
	message      string
	messageUntil float64
}

// NewSession creates a fresh Running session for the given viewport. The
// seed drives all spawn randomness, so a fixed seed replays identically.
func NewSession(width, height int, seed int64) (*Session, error) {
	if width < MinViewportWidth || height < MinViewportHeight {
		return nil, fmt.Errorf("%w: need at least %dx%d, got %dx%d",
			ErrViewportTooSmall, MinViewportWidth, MinViewportHeight, width, height)
	}

	s := &Session{
		width:    width,
		height:   height,
		store:    NewStore(),
		collider: newCollider(width, height),
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.reset()
	return s, nil
}

// reset reinitializes to a state equivalent to process start: fresh player,
// empty store, clock at zero. The RNG keeps its stream.
func (s *Session) reset() {
	s.state = StateRunning
	s.clock.Reset()
	s.store.Reset()
	s.player = Player{
		X: PlayerStartX,
		Y: float64(s.height / 2),
	}
	s.setShipGlyph()
	s.params = ComputeDifficulty(0, 0)
	s.nextSpawn = s.params.SpawnInterval
	s.message = ""
	s.messageUntil = 0
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Step advances the simulation by exactly one tick using the control state
// sampled for that tick. While GameOver, only a restart input does anything.
func (s *Session) Step(in input.Control) {
	if s.state == StateGameOver {
		if in.Restart {
			s.reset()
		}
		return
	}

	s.clock.Advance()
	t := s.clock.Elapsed()

	s.params = ComputeDifficulty(t, s.player.Score)
	s.trySpawn(t)

	movePlayer(&s.player, in.Direction, s.width, s.height)
	s.handleFire(in.Fire)

	moveEntities(s.store, s.player.X, s.player.Y, s.params, s.width, s.height)

	events := s.collider.resolve(s.store, &s.player)
	s.applyEvents(events, t)

	s.player.Status.TickDown(TickSeconds)
	if s.player.Status.Promote(s.player.Score) {
		s.setShipGlyph()
		s.setMessage(fmt.Sprintf("SHIP UPGRADED! LEVEL %d", s.player.Status.Tier+1), t)
	}

	// Entities killed this tick leave the store before the next tick
	// evaluates anything.
	s.store.Compact()
}

// trySpawn runs one spawn attempt when the difficulty-derived interval has
// elapsed: a weighted enemy pick under the enemy cap, plus an independent
// power-up roll under the power-up cap.
func (s *Session) trySpawn(t float64) {
	if t < s.nextSpawn {
		return
	}
	s.nextSpawn = t + s.params.SpawnInterval

	if s.store.Count(CategoryEnemy) < MaxEnemies {
		kind := s.pickEnemyKind()
		row := 2 + s.rng.Intn(s.height-4)
		s.store.Spawn(newEnemy(kind, s.width, s.height, row, s.rng))
	}

	if s.store.Count(CategoryPowerUp) < MaxPowerUps && s.rng.Float64() < s.params.PowerUpChance {
		kind := PowerShield + PowerKind(s.rng.Intn(3))
		row := 2 + s.rng.Intn(s.height-4)
		s.store.Spawn(newPowerUp(kind, float64(s.width-4), float64(row)))
	}
}

// pickEnemyKind draws an enemy type from the difficulty weight table.
// The weights sum to 1, so the walk always terminates.
func (s *Session) pickEnemyKind() EnemyKind {
	r := s.rng.Float64()
	for k, w := range s.params.Weights {
		r -= w
		if r < 0 {
			return EnemyKind(k)
		}
	}
	return EnemyStraight
}

// handleFire spawns this tick's projectiles when fire is held and the
// cooldown has run out. Tier >= 2 ships add two diagonal shots, skipped
// next to the top and bottom borders.
func (s *Session) handleFire(fire bool) {
	if !fire || !s.player.Status.FireReady() {
		return
	}
	s.player.Status.ResetCooldown()

	rapid := s.player.Status.RapidFire()
	noseX := s.player.X + float64(s.player.Width)
	noseY := s.player.Y

	s.store.Spawn(newProjectile(noseX, noseY, 1, 0, rapid))

	if s.player.Status.Tier >= 2 {
		if noseY > PlayfieldTop+1 {
			s.store.Spawn(newProjectile(noseX, noseY-1, 1, -ProjectileDiagSlope, rapid))
		}
		if noseY < float64(s.height-3) {
			s.store.Spawn(newProjectile(noseX, noseY+1, 1, ProjectileDiagSlope, rapid))
		}
	}
}

// applyEvents folds the tick's collision outcomes into the player record
// and the session state. Kills earlier in the slice were resolved before a
// terminal player↔enemy collision, so their score still counts.
func (s *Session) applyEvents(events []Event, t float64) {
	for _, ev := range events {
		switch ev.Kind {
		case EventKill:
			s.player.Score += ev.Reward
		case EventPickup:
			s.player.Score += ev.Reward
			s.setMessage(pickupMessage(ev.Power), t)
		case EventShieldBroken:
			s.setMessage("SHIELD DEACTIVATED!", t)
		case EventGameOver:
			s.state = StateGameOver
		}
	}
}

func pickupMessage(kind PowerKind) string {
	switch kind {
	case PowerShield:
		return "SHIELD ACTIVATED!"
	case PowerRapidFire:
		return "RAPID FIRE ACTIVATED!"
	case PowerInvincibility:
		return "INVINCIBILITY ACTIVATED!"
	}
	return "POWER-UP COLLECTED!"
}

func (s *Session) setMessage(msg string, t float64) {
	s.message = msg
	s.messageUntil = t + MessageSeconds
}

// setShipGlyph syncs the player's glyph and width to the current tier.
// Re-clamps because a wider hull can poke past the right edge.
func (s *Session) setShipGlyph() {
	s.player.Glyph = shipGlyphs[s.player.Status.Tier]
	s.player.Width = utf8.RuneCountInString(s.player.Glyph)
	clampPlayer(&s.player, s.width, s.height)
}
