package clock

import "time"

// Clock yields monotonically non-decreasing millisecond timestamps. The
// engine never reads the wall clock directly so that every time-based check
// stays deterministic under test.
type Clock interface {
	NowMillis() int64
}

type systemClock struct{}

func (systemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}

// System returns the wall-clock implementation used in production.
func System() Clock {
	return systemClock{}
}

// Fixed is a hand-advanced clock for tests.
type Fixed struct {
	Millis int64
}

func (f *Fixed) NowMillis() int64 { return f.Millis }

// Advance moves the fixed clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.Millis += d.Milliseconds() }
