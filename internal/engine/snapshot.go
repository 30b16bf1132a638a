package engine

import "github.com/tomz197/starfighter/internal/physics"

// EntityView is one entity's render state: its top-left cell, the glyph to
// draw and the category the renderer maps to a color.
type EntityView struct {
	X, Y     int
	Glyph    string
	Category Category
}

// HUD carries the non-entity render state for the heads-up display.
type HUD struct {
	Score          int
	Tier           int
	Shield         bool
	Power          PowerKind // PowerNone when no timed power-up is active
	PowerRemaining float64   // seconds, 0 when Power is PowerNone
	NextUpgrade    int       // points still needed for the next tier, 0 at max
	GameOver       bool
	Message        string // transient feedback line, empty when expired
}

// Snapshot is the immutable end-of-tick render state. The renderer owns it
// outright; nothing in it aliases live session state.
type Snapshot struct {
	Width    int
	Height   int
	Entities []EntityView
	HUD      HUD
}

// Snapshot builds the render state for the tick that just completed. The
// player is always the first entity view.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:    s.width,
		Height:   s.height,
		Entities: make([]EntityView, 0, 1+s.store.Len()),
	}

	snap.Entities = append(snap.Entities, EntityView{
		X:        physics.Cell(s.player.X),
		Y:        physics.Cell(s.player.Y),
		Glyph:    s.player.Glyph,
		Category: CategoryPlayer,
	})

	s.store.ForEach(func(e *Entity) {
		snap.Entities = append(snap.Entities, EntityView{
			X:        physics.Cell(e.X),
			Y:        physics.Cell(e.Y),
			Glyph:    e.Glyph,
			Category: e.Category,
		})
	})

	st := s.player.Status
	snap.HUD = HUD{
		Score:          s.player.Score,
		Tier:           st.Tier,
		Shield:         st.Shield,
		Power:          st.Active,
		PowerRemaining: st.Remaining,
		GameOver:       s.state == StateGameOver,
	}
	if st.Tier < len(TierThresholds) {
		if need := TierThresholds[st.Tier] - s.player.Score; need > 0 {
			snap.HUD.NextUpgrade = need
		}
	}
	if s.clock.Elapsed() < s.messageUntil {
		snap.HUD.Message = s.message
	}

	return snap
}
