package engine

// Clock counts fixed-size simulation ticks. Elapsed time is derived from
// the tick counter rather than wall time, so a session advanced tick by
// tick in tests behaves exactly like a live one.
type Clock struct {
	ticks uint64
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.ticks++
}

// Ticks returns the number of ticks advanced since the last reset.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Elapsed returns the session time in seconds.
func (c *Clock) Elapsed() float64 {
	return float64(c.ticks) * TickSeconds
}

// Reset rewinds the clock to the start of a fresh session.
func (c *Clock) Reset() {
	c.ticks = 0
}
