// Package leaktest checks that code under test does not leave goroutines
// running after it returns.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	pollDelay   = 10 * time.Millisecond
	// DefaultTimeout bounds how long Check waits for goroutines to exit
	DefaultTimeout = time.Second
)

// GoroutineChecker compares the goroutine count against a baseline taken
// when it was created
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines above the
// baseline are still running after DefaultTimeout. Goroutines winding down
// are given that long to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	after := waitFor(g.before+tolerance, DefaultTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves any
// goroutine behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// waitFor polls until at most target goroutines run or timeout passes and
// returns the last count seen
func waitFor(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollDelay)
	}
}
