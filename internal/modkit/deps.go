package modkit

import (
	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/platform/clock"
	"forumfeed/internal/platform/config"
	"forumfeed/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	Clock clock.Clock
}

// Clk returns the configured clock, defaulting to the system clock
func (d Deps) Clk() clock.Clock {
	if d.Clock != nil {
		return d.Clock
	}
	return clock.System{}
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
