package shapes

import "time"

// debugStats holds per-frame draw metrics. Only populated in debug mode.
type debugStats struct {
	drawables  int
	redraws    int
	animations int
	drawTime   time.Duration
}

// SetDebugMode enables or disables per-frame draw statistics, logged at
// debug level through Logger.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugLog reports the stats of the frame just drawn.
func (c *Canvas) debugLog() {
	Logger().Debug("frame",
		"drawables", c.stats.drawables,
		"redraws", c.stats.redraws,
		"animations", c.stats.animations,
		"draw", c.stats.drawTime,
	)
}
