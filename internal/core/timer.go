package core

import "time"

// RateMeter measures simulation throughput as update counts per wall-clock
// second.
type RateMeter struct {
	start     time.Time
	last      time.Time
	lastCount uint64
}

// NewRateMeter starts a meter at the current time.
func NewRateMeter() *RateMeter {
	now := time.Now()
	return &RateMeter{start: now, last: now}
}

// Rate returns updates per second since the previous Rate call, given the
// current cumulative update count.
func (m *RateMeter) Rate(count uint64) float64 {
	now := time.Now()
	elapsed := now.Sub(m.last).Seconds()
	delta := count - m.lastCount
	m.last = now
	m.lastCount = count
	if elapsed <= 0 {
		return 0
	}
	return float64(delta) / elapsed
}

// Average returns updates per second since the meter was created.
func (m *RateMeter) Average(count uint64) float64 {
	elapsed := time.Since(m.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(count) / elapsed
}

// Restart resets the meter to the current time.
func (m *RateMeter) Restart() {
	now := time.Now()
	m.start = now
	m.last = now
	m.lastCount = 0
}
