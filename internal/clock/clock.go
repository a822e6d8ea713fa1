// Package clock abstracts one-shot timers so that timer-driven state can be
// driven deterministically in tests.
package clock

import "time"

// Timer is a scheduled one-shot callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// System schedules callbacks on the wall clock. Callbacks run on their own goroutine.
type System struct{}

// AfterFunc implements Scheduler using time.AfterFunc.
func (System) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
