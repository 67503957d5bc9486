package engine

import "time"

// DayDuration is the real time one in-game day takes.
const DayDuration = 6 * time.Second

// Driver turns elapsed real time into due day ticks. It holds no timer of its
// own: a frame loop, a time.Ticker or a test feeds it deltas.
type Driver struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
	paused   bool
}

func NewDriver(interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DayDuration
	}
	return &Driver{interval: interval}
}

// Start arms the driver with a fresh accumulator.
func (d *Driver) Start() {
	d.elapsed = 0
	d.running = true
	d.paused = false
}

// Stop disarms the driver. Calling it again is a no-op.
func (d *Driver) Stop() {
	d.running = false
	d.elapsed = 0
}

func (d *Driver) Pause() bool {
	if !d.running || d.paused {
		return false
	}
	d.paused = true
	return true
}

func (d *Driver) Resume() bool {
	if !d.running || !d.paused {
		return false
	}
	d.paused = false
	return true
}

func (d *Driver) Running() bool { return d.running }
func (d *Driver) Paused() bool { return d.paused }

// Due accumulates delta and returns how many whole ticks are now due. Time
// passing while stopped or paused is dropped.
func (d *Driver) Due(delta time.Duration) int {
	if !d.running || d.paused || delta <= 0 {
		return 0
	}
	d.elapsed += delta
	n := int(d.elapsed / d.interval)
	d.elapsed -= time.Duration(n) * d.interval
	return n
}

// Until returns the time left before the next tick.
func (d *Driver) Until() time.Duration {
	if !d.running {
		return 0
	}
	return d.interval - d.elapsed
}
