// Package clock provides the time source seam so selection windows are
// deterministic in tests
package clock

import "time"

// Clock supplies the current time for window computations
type Clock interface {
	Now() time.Time
}

// System is the wall clock
type System struct{}

// Now returns the current wall time
func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant
type Fixed struct{ T time.Time }

// Now returns the fixed instant
func (f Fixed) Now() time.Time { return f.T }

// At returns a Fixed clock pinned to t
func At(t time.Time) Fixed { return Fixed{T: t} }
