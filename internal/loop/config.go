package loop

// Inactivity handling for remote sessions.
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Starfield
const (
	starDensity = 0.015 // stars per playfield cell
)
