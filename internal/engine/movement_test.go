package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/starfighter/internal/input"
)

func testPlayer() Player {
	p := Player{X: 20, Y: 10}
	p.Glyph = shipGlyphs[0]
	p.Width = len(shipGlyphs[0])
	return p
}

func TestPlayerClampedToPlayfield(t *testing.T) {
	const vw, vh = 80, 24

	p := testPlayer()
	for i := 0; i < 200; i++ {
		movePlayer(&p, input.DirLeft, vw, vh)
		movePlayer(&p, input.DirUp, vw, vh)
	}
	if p.X != 0 {
		t.Errorf("X = %v after holding left, want 0", p.X)
	}
	if p.Y != PlayfieldTop {
		t.Errorf("Y = %v after holding up, want %v", p.Y, PlayfieldTop)
	}

	for i := 0; i < 200; i++ {
		movePlayer(&p, input.DirRight, vw, vh)
		movePlayer(&p, input.DirDown, vw, vh)
	}
	if want := float64(vw - p.Width - 1); p.X != want {
		t.Errorf("X = %v after holding right, want %v", p.X, want)
	}
	if want := float64(vh - 2); p.Y != want {
		t.Errorf("Y = %v after holding down, want %v", p.Y, want)
	}
}

func TestStraightEnemyAdvancesLeft(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := newEnemy(EnemyStraight, 80, 24, 10, rng)
	x0 := e.X

	moveEnemy(&e, 5, 10, 1.5, TickSeconds)

	want := x0 - StraightBaseSpeed*1.5*TickSeconds
	if !almostEqual(e.X, want) {
		t.Errorf("X = %v, want %v", e.X, want)
	}
	if e.Y != 10 {
		t.Errorf("straight enemy changed row: Y = %v", e.Y)
	}
}

func TestZigzagStaysWithinAmplitude(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := newEnemy(EnemyZigzag, 200, 24, 10, rng)
	base := e.BaseY

	for i := 0; i < 3*e.Period; i++ {
		moveEnemy(&e, 5, 10, 1.0, TickSeconds)
		if e.Y < base-ZigzagAmplitude-1e-9 || e.Y > base+ZigzagAmplitude+1e-9 {
			t.Fatalf("tick %d: Y = %v outside %v±%v", i, e.Y, base, ZigzagAmplitude)
		}
	}
}

func TestZigzagReturnsToBaseAfterFullPeriod(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := newEnemy(EnemyZigzag, 200, 24, 10, rng)

	for i := 0; i < e.Period; i++ {
		moveEnemy(&e, 5, 10, 1.0, TickSeconds)
	}
	if !almostEqual(e.Y, e.BaseY) {
		t.Errorf("Y = %v after one full period, want BaseY %v", e.Y, e.BaseY)
	}
}

func TestTriangleWaveShape(t *testing.T) {
	cases := []struct {
		phase, period int
		want          float64
	}{
		{0, 16, 0},
		{4, 16, 1},  // peak at the quarter point
		{8, 16, 0},  // back through zero at half
		{12, 16, -1}, // trough at three quarters
		{16, 16, 0},
	}
	for _, tc := range cases {
		if got := triangleWave(tc.phase, tc.period); !almostEqual(got, tc.want) {
			t.Errorf("triangleWave(%d, %d) = %v, want %v", tc.phase, tc.period, got, tc.want)
		}
	}
	if got := triangleWave(5, 0); got != 0 {
		t.Errorf("degenerate period gave %v, want 0", got)
	}
}

func TestHunterClosesOnPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := newEnemy(EnemyHunter, 80, 24, 5, rng)
	px, py := 5.0, 18.0

	prev := math.Hypot(px-e.X, py-e.Y)
	for i := 0; i < 200; i++ {
		moveEnemy(&e, px, py, 1.0, TickSeconds)
		d := math.Hypot(px-e.X, py-e.Y)
		if d >= prev && d > 0 {
			t.Fatalf("tick %d: distance %v did not shrink from %v", i, d, prev)
		}
		prev = d
		if d == 0 {
			return
		}
	}
	t.Fatalf("hunter never reached the player, distance %v", prev)
}

func TestHunterRetargetsOnCadence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := newEnemy(EnemyHunter, 80, 24, 10, rng)

	moveEnemy(&e, 5, 18, 1.0, TickSeconds)
	if e.TargetY != 18 {
		t.Fatalf("TargetY = %v after first tick, want 18", e.TargetY)
	}

	// The player moves, but the hunter keeps its last fix until the next
	// retarget tick.
	for i := 1; i < HunterRetargetTicks; i++ {
		moveEnemy(&e, 5, 2, 1.0, TickSeconds)
		if e.TargetY != 18 {
			t.Fatalf("tick %d: retargeted early to %v", i, e.TargetY)
		}
	}

	moveEnemy(&e, 5, 2, 1.0, TickSeconds)
	if e.TargetY != 2 {
		t.Errorf("TargetY = %v after the cadence tick, want 2", e.TargetY)
	}
}

func TestHunterHoldsRowWhenAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := newEnemy(EnemyHunter, 80, 24, 10, rng)

	moveEnemy(&e, 5, 10, 1.0, TickSeconds)

	if e.Y != 10 {
		t.Errorf("row-aligned hunter moved vertically: Y = %v", e.Y)
	}
}

func TestMoveEntitiesDespawnsOffscreen(t *testing.T) {
	const vw, vh = 80, 24
	st := NewStore()
	par := ComputeDifficulty(0, 0)

	// Enemy fully past the left edge, projectile past the right edge.
	enemy := newEnemy(EnemyStraight, vw, vh, 10, rand.New(rand.NewSource(1)))
	enemy.X = -float64(enemy.Width) - 0.1
	st.Spawn(enemy)

	proj := newProjectile(float64(vw), 10, 1, 0, false)
	st.Spawn(proj)

	moveEntities(st, 5, 10, par, vw, vh)
	st.Compact()

	if st.Len() != 0 {
		t.Errorf("%d entities survived leaving the viewport", st.Len())
	}
}

func TestPowerUpExpiresAfterLifetime(t *testing.T) {
	const vw, vh = 400, 24
	st := NewStore()
	par := ComputeDifficulty(0, 0)

	pu := newPowerUp(PowerShield, float64(vw-4), 10)
	st.Spawn(pu)

	ticks := int(PowerUpLifetime/TickSeconds) + 1
	for i := 0; i < ticks; i++ {
		moveEntities(st, 5, 10, par, vw, vh)
	}
	st.Compact()

	if st.Count(CategoryPowerUp) != 0 {
		t.Error("uncollected power-up survived its lifetime")
	}
}
