package input

import (
	"testing"
	"time"
)

func TestApplyByteMapsKeys(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		b    byte
		want Control
	}{
		{"up", 'w', Control{Direction: DirUp}},
		{"down", 's', Control{Direction: DirDown}},
		{"left", 'a', Control{Direction: DirLeft}},
		{"right", 'D', Control{Direction: DirRight}},
		{"fire", ' ', Control{Fire: true}},
		{"quit", 'q', Control{Quit: true}},
		{"quit escape", '\x1b', Control{Quit: true}},
		{"restart", 'r', Control{Restart: true}},
		{"restart enter", '\r', Control{Restart: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ks keyState
			applyByte(&ks, tc.b, now)
			got := ks.control(now)
			if got != tc.want {
				t.Errorf("applyByte(%q) = %+v, want %+v", tc.b, got, tc.want)
			}
		})
	}
}

func TestMostRecentDirectionWins(t *testing.T) {
	now := time.Now()

	var ks keyState
	applyByte(&ks, 'w', now.Add(-50*time.Millisecond))
	applyByte(&ks, 'd', now.Add(-10*time.Millisecond))

	got := ks.control(now)
	if got.Direction != DirRight {
		t.Errorf("Direction = %v, want DirRight (latest press)", got.Direction)
	}
}

func TestKeyHoldExpires(t *testing.T) {
	now := time.Now()

	var ks keyState
	applyByte(&ks, ' ', now.Add(-keyHoldDuration-time.Millisecond))

	got := ks.control(now)
	if got.Fire {
		t.Error("Fire should not be held past the hold duration")
	}
}

func TestArrowSequenceSplitAcrossPolls(t *testing.T) {
	s := &Stream{ch: make(chan byte, 8)}

	s.ch <- '\x1b'
	if got := s.Poll(); got.Quit {
		t.Fatal("arrow-key prefix reported quit")
	}

	s.ch <- '['
	s.ch <- 'A'
	got := s.Poll()
	if got.Quit {
		t.Fatal("reassembled arrow key reported quit")
	}
	if got.Direction != DirUp {
		t.Errorf("Direction = %v, want DirUp", got.Direction)
	}
}

func TestArrowSequenceSplitAfterBracket(t *testing.T) {
	s := &Stream{ch: make(chan byte, 8)}

	s.ch <- '\x1b'
	s.ch <- '['
	if got := s.Poll(); got.Quit || got.Direction != DirNone {
		t.Fatalf("incomplete CSI produced %+v", got)
	}

	s.ch <- 'B'
	if got := s.Poll(); got.Direction != DirDown {
		t.Errorf("Direction = %v, want DirDown", got.Direction)
	}
}

func TestLoneEscapeStillQuits(t *testing.T) {
	s := &Stream{ch: make(chan byte, 8)}

	s.ch <- '\x1b'
	if got := s.Poll(); got.Quit {
		t.Fatal("quit on the first poll, before the sequence could complete")
	}
	// No continuation arrived, so the held byte was a real escape press.
	if got := s.Poll(); !got.Quit {
		t.Error("lone escape with no continuation did not quit")
	}
}

func TestControlAllowsFireWhileMoving(t *testing.T) {
	now := time.Now()

	var ks keyState
	applyByte(&ks, 'w', now)
	applyByte(&ks, ' ', now)

	got := ks.control(now)
	if got.Direction != DirUp || !got.Fire {
		t.Errorf("got %+v, want DirUp with Fire", got)
	}
}
