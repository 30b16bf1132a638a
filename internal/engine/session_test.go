package engine

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomz197/starfighter/internal/input"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(80, 24, 42)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionRejectsSmallViewport(t *testing.T) {
	_, err := NewSession(10, 5, 1)
	if !errors.Is(err, ErrViewportTooSmall) {
		t.Fatalf("err = %v, want ErrViewportTooSmall", err)
	}
}

func TestFreshSessionState(t *testing.T) {
	s := newTestSession(t)

	if s.State() != StateRunning {
		t.Error("fresh session is not running")
	}

	snap := s.Snapshot()
	if snap.Width != 80 || snap.Height != 24 {
		t.Errorf("snapshot size %dx%d, want 80x24", snap.Width, snap.Height)
	}
	if snap.HUD.Score != 0 || snap.HUD.Tier != 0 {
		t.Errorf("HUD = %+v, want zero score and tier", snap.HUD)
	}
	if snap.HUD.NextUpgrade != TierThresholds[0] {
		t.Errorf("NextUpgrade = %d, want %d", snap.HUD.NextUpgrade, TierThresholds[0])
	}
	if len(snap.Entities) != 1 || snap.Entities[0].Category != CategoryPlayer {
		t.Fatalf("fresh snapshot entities = %+v, want just the player", snap.Entities)
	}
}

func TestSpawningBeginsAfterInterval(t *testing.T) {
	s := newTestSession(t)

	// The first spawn window opens one base interval in.
	for i := 0; i < 31; i++ {
		s.Step(input.Control{})
	}

	if s.store.Count(CategoryEnemy) == 0 {
		t.Error("no enemy spawned after the first interval elapsed")
	}
}

func TestEnemyCapHolds(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 1800; i++ {
		s.Step(input.Control{})
		if got := s.store.Count(CategoryEnemy); got > MaxEnemies {
			t.Fatalf("tick %d: %d enemies alive, cap is %d", i, got, MaxEnemies)
		}
		if s.State() == StateGameOver {
			break
		}
	}
}

func TestFireCooldownLimitsProjectiles(t *testing.T) {
	s := newTestSession(t)

	s.Step(input.Control{Fire: true})
	s.Step(input.Control{Fire: true})

	if got := s.store.Count(CategoryProjectile); got != 1 {
		t.Errorf("%d projectiles after two held-fire ticks, want 1", got)
	}
}

func TestContactEndsAndFreezesSession(t *testing.T) {
	s := newTestSession(t)

	s.store.Spawn(Entity{
		Category: CategoryEnemy,
		Kind:     EnemyStraight,
		Glyph:    EnemyStraight.glyph(),
		Width:    len(EnemyStraight.glyph()),
		X:        s.player.X,
		Y:        s.player.Y,
	})
	s.Step(input.Control{})

	if s.State() != StateGameOver {
		t.Fatal("contact with an enemy did not end the session")
	}

	score := s.player.Score
	ticks := s.clock.Ticks()
	for i := 0; i < 10; i++ {
		s.Step(input.Control{Fire: true, Direction: input.DirUp})
	}
	if s.player.Score != score || s.clock.Ticks() != ticks {
		t.Error("simulation advanced while game over")
	}
	if !s.Snapshot().HUD.GameOver {
		t.Error("HUD does not report game over")
	}
}

func TestRestartResetsSession(t *testing.T) {
	s := newTestSession(t)

	s.store.Spawn(Entity{
		Category: CategoryEnemy,
		Kind:     EnemyStraight,
		Glyph:    EnemyStraight.glyph(),
		Width:    len(EnemyStraight.glyph()),
		X:        s.player.X,
		Y:        s.player.Y,
	})
	s.Step(input.Control{})
	if s.State() != StateGameOver {
		t.Fatal("setup failed to end the session")
	}

	s.Step(input.Control{Restart: true})

	if s.State() != StateRunning {
		t.Error("restart did not resume the session")
	}
	if s.player.Score != 0 || s.player.Status.Tier != 0 {
		t.Errorf("player carried state across restart: %+v", s.player)
	}
	if s.store.Len() != 0 {
		t.Errorf("%d entities survived the restart", s.store.Len())
	}
	if s.clock.Ticks() != 0 {
		t.Errorf("clock at %d ticks after restart, want 0", s.clock.Ticks())
	}
}

func TestPickupGrantsBonusAndEffect(t *testing.T) {
	s := newTestSession(t)

	s.store.Spawn(newPowerUp(PowerShield, s.player.X, s.player.Y))
	s.Step(input.Control{})

	if s.player.Score != PowerUpScoreBonus {
		t.Errorf("score = %d after pickup, want %d", s.player.Score, PowerUpScoreBonus)
	}
	if !s.player.Status.Shield {
		t.Error("shield not charged after pickup")
	}
	if msg := s.Snapshot().HUD.Message; msg == "" {
		t.Error("pickup did not surface a HUD message")
	}
}

func TestScoreThresholdUpgradesShip(t *testing.T) {
	s := newTestSession(t)
	glyph := s.player.Glyph

	s.player.Score = TierThresholds[0]
	s.Step(input.Control{})

	if s.player.Status.Tier != 1 {
		t.Fatalf("Tier = %d at threshold score, want 1", s.player.Status.Tier)
	}
	if s.player.Glyph == glyph {
		t.Error("ship glyph unchanged after tier upgrade")
	}
	if s.player.Width != len(s.player.Glyph) {
		t.Errorf("Width = %d out of sync with glyph %q", s.player.Width, s.player.Glyph)
	}
}

func TestHighTierShipFiresSpread(t *testing.T) {
	s := newTestSession(t)
	s.player.Status.Tier = 2
	s.setShipGlyph()

	s.Step(input.Control{Fire: true})

	if got := s.store.Count(CategoryProjectile); got != 3 {
		t.Errorf("%d projectiles from a tier-2 ship, want 3", got)
	}
}

func TestFixedSeedReplaysIdentically(t *testing.T) {
	a, err := NewSession(80, 24, 99)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSession(80, 24, 99)
	if err != nil {
		t.Fatal(err)
	}

	script := []input.Control{
		{Direction: input.DirUp},
		{Fire: true},
		{Direction: input.DirRight, Fire: true},
		{},
	}
	for i := 0; i < 600; i++ {
		in := script[i%len(script)]
		a.Step(in)
		b.Step(in)
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("same seed and inputs diverged")
	}
}
