package loop

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomz197/starfighter/internal/draw"
	"github.com/tomz197/starfighter/internal/engine"
)

// drawFrame renders the current screen. The whole frame is accumulated in
// the chunk writer and flushed once, so the terminal never shows a half
// frame.
func (g *game) drawFrame() error {
	cw := g.chunkWriter
	cw.WriteString("\033[H\033[2J")

	if g.isInactive {
		g.drawInactivityScreen()
		return cw.Flush()
	}

	switch g.screen {
	case screenTitle:
		g.drawTitleScreen()
	case screenPlaying:
		g.drawPlayfield(g.session.Snapshot())
	case screenGameOver:
		// One snapshot serves both the playfield and the overlay.
		snap := g.session.Snapshot()
		g.drawPlayfield(snap)
		g.drawGameOverScreen(snap)
	}

	return cw.Flush()
}

// drawPlayfield renders the starfield, every entity and the HUD from the
// tick's simulation snapshot.
func (g *game) drawPlayfield(snap engine.Snapshot) {
	cw := g.chunkWriter

	for _, s := range g.stars {
		cw.WriteColoredAt(s.col, s.row, draw.Dim+draw.Cyan, s.glyph)
	}

	for _, e := range snap.Entities {
		if e.Y < 0 || e.Y >= snap.Height || e.X+utf8.RuneCountInString(e.Glyph) < 0 || e.X >= snap.Width {
			continue
		}
		color := categoryColor(e.Category)
		if e.Category == engine.CategoryPlayer {
			if snap.HUD.Power == engine.PowerInvincibility && blinkOff() {
				continue
			}
			if snap.HUD.Shield {
				color = draw.Blue
			}
		}
		cw.WriteColoredAt(e.X+1, e.Y+1, color, e.Glyph)
	}

	g.drawHUD(snap)
}

// drawHUD draws the status line and transient message overlays.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (g *game) drawHUD(snap engine.Snapshot) {
	cw := g.chunkWriter

	scoreText := fmt.Sprintf("Score: %-8d", snap.HUD.Score)
	cw.WriteColoredAt(2, 1, draw.White, scoreText)

	levelText := fmt.Sprintf("Ship LVL %d", snap.HUD.Tier+1)
	cw.WriteColoredAt(snap.Width-len(levelText)-1, 1, draw.White, levelText)

	if snap.HUD.Shield {
		shieldText := "[SHIELD]"
		cw.WriteColoredAt(snap.Width-len(levelText)-len(shieldText)-3, 1, draw.Blue, shieldText)
	}

	if snap.HUD.Power != engine.PowerNone {
		powerText := fmt.Sprintf("%s %.1fs", snap.HUD.Power, snap.HUD.PowerRemaining)
		cw.WriteColoredAt(2, snap.Height, draw.Magenta, powerText)
	}

	if snap.HUD.NextUpgrade > 0 {
		upgradeText := fmt.Sprintf("Next LVL: %d pts", snap.HUD.NextUpgrade)
		cw.WriteColoredAt(snap.Width-len(upgradeText)-1, snap.Height, draw.White, upgradeText)
	}

	if snap.HUD.Message != "" {
		col := snap.Width/2 - len(snap.HUD.Message)/2
		cw.WriteColoredAt(col, 2, draw.Bold+draw.White, snap.HUD.Message)
	}
}

// drawTitleScreen draws the title screen with controls.
func (g *game) drawTitleScreen() {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___ _____ _   ___ ___ ___ ___ _  _ _____ ___ ___  `,
		` / __|_   _/_\ | _ \ __|_ _/ __| || |_   _| __| _ \ `,
		` \__ \ | |/ _ \|   / _| | | (_ | __ | | | | _||   / `,
		` |___/ |_/_/ \_\_|_\_| |___\___|_||_| |_| |___|_|_\ `,
		`                                                     `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	cw := g.chunkWriter
	centerX := g.width / 2
	centerY := g.height / 2

	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteColoredAt(centerX-titleWidth/2, titleStartY+i, draw.Green, line)
	}

	subtitle := "~ Dodge, shoot, upgrade ~"
	cw.WriteAt(centerX-len(subtitle)/2, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"W A S D / Arrows  . . Move",
		"SPACE  . . . . . . . Shoot",
		"Q  . . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	if blinkOn() {
		prompt := ">>  Press SPACE to Start  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
	}
}

// drawGameOverScreen draws the game over overlay on top of the last frame.
func (g *game) drawGameOverScreen(snap engine.Snapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	cw := g.chunkWriter
	centerX := g.width / 2
	centerY := g.height / 2

	titleStartY := centerY - 5
	for i, line := range titleArt {
		cw.WriteColoredAt(centerX-titleWidth/2, titleStartY+i, draw.Red, line)
	}

	scoreText := fmt.Sprintf("Final score: %d", snap.HUD.Score)
	cw.WriteAt(centerX-len(scoreText)/2, titleStartY+len(titleArt)+1, scoreText)

	if blinkOn() {
		prompt := ">>  Press R to Restart, Q to Quit  <<"
		cw.WriteAt(centerX-len(prompt)/2, titleStartY+len(titleArt)+3, prompt)
	}
}

// drawInactivityScreen draws the inactivity warning for remote sessions.
func (g *game) drawInactivityScreen() {
	cw := g.chunkWriter
	centerX := g.width / 2
	centerY := g.height / 2

	title := "INACTIVITY WARNING"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	idle := time.Since(g.lastInput).Seconds()
	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(InactivityDisconnectUser-idle),
	)
	cw.WriteAt(centerX-len(msg)/2, centerY, msg)

	hint := "Press any key to continue"
	cw.WriteAt(centerX-len(hint)/2, centerY+2, hint)
}

func categoryColor(c engine.Category) string {
	switch c {
	case engine.CategoryEnemy:
		return draw.Red
	case engine.CategoryProjectile:
		return draw.Yellow
	case engine.CategoryPowerUp:
		return draw.Magenta
	}
	return draw.Green
}

// blinkOn gates blinking UI text at roughly 0.8 Hz.
func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// blinkOff gates the fast player blink while invincible.
func blinkOff() bool {
	return time.Now().UnixMilli()/100%2 == 0
}
