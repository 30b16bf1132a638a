package draw

// SGR sequences for the fixed game palette.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Green   = "\033[32m" // player ship
	Red     = "\033[31m" // enemies
	Yellow  = "\033[33m" // projectiles
	Cyan    = "\033[36m" // starfield
	Magenta = "\033[35m" // power-ups
	Blue    = "\033[34m" // shield indicator
	White   = "\033[37m" // text
)
