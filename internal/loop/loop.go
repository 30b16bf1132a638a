// Package loop runs the per-connection game loop: input, simulation ticks
// and frame rendering for one terminal.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/starfighter/internal/draw"
	"github.com/tomz197/starfighter/internal/engine"
	"github.com/tomz197/starfighter/internal/input"
)

// screen is the UI state the loop is showing. The simulation only advances
// while playing.
type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenGameOver
)

// Options configures a game loop.
type Options struct {
	TermSizeFunc   draw.TermSizeFunc
	IdleDisconnect bool  // warn and drop the connection when input goes quiet
	Seed           int64 // 0 seeds from the clock
}

// star is one fixed background star.
type star struct {
	col, row int
	glyph    string
}

// game holds the loop state for a single connection.
type game struct {
	session     *engine.Session
	chunkWriter *draw.ChunkWriter
	writer      io.Writer
	inputStream *input.Stream

	screen  screen
	running bool

	lastInput  time.Time
	isInactive bool

	width  int
	height int
	stars  []star
}

// Run drives one connection's game from the title screen until quit or
// disconnect. It blocks for the lifetime of the connection. The terminal is
// expected to be in raw mode already.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	width, height, err := termSizeFunc()
	if err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := engine.NewSession(width, height, seed)
	if err != nil {
		return err
	}

	g := &game{
		session:     session,
		chunkWriter: draw.NewChunkWriter(w),
		writer:      w,
		inputStream: input.StartStream(r),
		running:     true,
		lastInput:   time.Now(),
		width:       width,
		height:      height,
		stars:       makeStarfield(width, height, seed),
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	for g.running {
		frameStart := time.Now()

		in := g.inputStream.Poll()
		g.trackInactivity(opts.IdleDisconnect)
		if in.Quit {
			g.running = false
			break
		}

		g.advance(in)

		if err := g.drawFrame(); err != nil {
			return err
		}

		// Frame timing: one render per simulation tick.
		elapsed := time.Since(frameStart)
		if elapsed < engine.TickDuration {
			time.Sleep(engine.TickDuration - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// advance applies one tick of sampled input to the current screen. The
// simulation freezes while the inactivity overlay is up, so an idle player
// cannot lose a running game behind it.
func (g *game) advance(in input.Control) {
	if g.isInactive {
		return
	}

	switch g.screen {
	case screenTitle:
		if in.Fire || in.Restart {
			g.inputStream.Reset()
			g.screen = screenPlaying
		}
	case screenPlaying:
		g.session.Step(in)
		if g.session.State() == engine.StateGameOver {
			g.inputStream.Reset()
			g.screen = screenGameOver
		}
	case screenGameOver:
		if in.Restart {
			g.session.Step(in)
			g.inputStream.Reset()
			g.screen = screenPlaying
		}
	}
}

// trackInactivity updates the idle state from the last seen input. Only
// remote sessions warn and disconnect; a local terminal just sits idle.
func (g *game) trackInactivity(idleDisconnect bool) {
	if g.inputStream.SawInput() {
		g.lastInput = time.Now()
		g.isInactive = false
		return
	}
	if !idleDisconnect {
		return
	}
	idle := time.Since(g.lastInput).Seconds()
	if idle > InactivityDisconnectUser {
		g.running = false
	} else if idle > InactivityWarnUser {
		g.isInactive = true
	}
}

// makeStarfield scatters fixed background stars over the playfield. The
// layout is derived from the session seed so a replayed session looks the same.
func makeStarfield(width, height int, seed int64) []star {
	rng := rand.New(rand.NewSource(seed))
	glyphs := []string{".", ".", ".", "+", "*"}

	count := int(float64(width*height) * starDensity)
	stars := make([]star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, star{
			col:   1 + rng.Intn(width),
			row:   2 + rng.Intn(height-2),
			glyph: glyphs[rng.Intn(len(glyphs))],
		})
	}
	return stars
}
