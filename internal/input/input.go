// Package input turns a raw terminal byte stream into a per-tick control state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// It must cover at least one simulation tick so held keys register every tick.
const keyHoldDuration = 150 * time.Millisecond

// Direction is the requested movement direction for the current tick.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Control is the control state sampled once per tick.
type Control struct {
	Direction Direction
	Fire      bool
	Quit      bool
	Restart   bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	up      time.Time
	down    time.Time
	left    time.Time
	right   time.Time
	fire    time.Time
	quit    time.Time
	restart time.Time
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys and key combinations survive across tick boundaries.
type Stream struct {
	ch       chan byte
	state    keyState
	sawBytes bool
	pending  []byte // incomplete escape-sequence tail held for the next poll
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking), updates key state, and
// returns the control state for this tick. When several direction keys are
// held, the most recently pressed one wins.
func (s *Stream) Poll() Control {
	now := time.Now()

	// Any escape-sequence tail held from the previous poll goes first.
	buf := s.pending
	s.pending = nil
	fresh := 0
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				// Reader closed: treat as a quit request so the loop exits.
				return Control{Quit: true}
			}
			buf = append(buf, b)
			fresh++
		default:
			goto parse
		}
	}

parse:
	s.sawBytes = fresh > 0

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// CSI sequence: ESC [ <code> (arrow keys)
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					s.state.up = now
					i += 2
					continue
				case 'B':
					s.state.down = now
					i += 2
					continue
				case 'C':
					s.state.right = now
					i += 2
					continue
				case 'D':
					s.state.left = now
					i += 2
					continue
				}
			}

			// A sequence can land split across reads. Hold an ESC or
			// "ESC [" tail for the next poll; it only counts as a real
			// escape press once no continuation arrives.
			if rest := len(buf) - i; fresh > 0 && (rest == 1 || (rest == 2 && buf[i+1] == '[')) {
				s.pending = buf[i:]
				break
			}
		}

		applyByte(&s.state, b, now)
	}

	return s.state.control(now)
}

// SawInput reports whether the last Poll consumed any bytes. Used for
// inactivity tracking on remote sessions.
func (s *Stream) SawInput() bool {
	return s.sawBytes
}

// Reset clears all key state, e.g. when switching screens so a held key
// does not leak into the next game state.
func (s *Stream) Reset() {
	s.state = keyState{}
	s.pending = nil
}

// applyByte updates the key state timestamps for a single pressed byte.
func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case ' ':
		state.fire = now
	case 'q', 'Q', '\x1b':
		state.quit = now
	case 'r', 'R', '\n', '\r':
		state.restart = now
	}
}

// control builds the tick's control state from key timestamps. A key counts
// as pressed if it was seen within the hold duration.
func (ks *keyState) control(now time.Time) Control {
	c := Control{
		Fire:    now.Sub(ks.fire) < keyHoldDuration,
		Quit:    now.Sub(ks.quit) < keyHoldDuration,
		Restart: now.Sub(ks.restart) < keyHoldDuration,
	}

	// Most recent direction within the hold window wins.
	best := now.Add(-keyHoldDuration)
	pick := func(t time.Time, d Direction) {
		if t.After(best) {
			best = t
			c.Direction = d
		}
	}
	pick(ks.up, DirUp)
	pick(ks.down, DirDown)
	pick(ks.left, DirLeft)
	pick(ks.right, DirRight)

	return c
}
