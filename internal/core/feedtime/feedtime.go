// Package feedtime renders post timestamps the way the dashboard shows them,
// a coarse relative phrase for the feed rows and an exact stamp for tooltips.
package feedtime

import (
	"fmt"
	"math"
	"time"
)

// Translator is the message lookup seam, satisfied by lang.Localizer
type Translator interface {
	T(key string, args ...any) string
}

const (
	minute = 60
	hour   = 60 * 60
	day    = 24 * 60 * 60
)

// Relative renders the elapsed time since a post in the coarsest sensible unit.
// Counts round half away from zero, so 150s reads "3 minutes ago".
func Relative(elapsed time.Duration, tr Translator) string {
	secs := elapsed.Seconds()
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < minute:
		return tr.T("just now")
	case secs < hour:
		return tr.T("%d minutes ago", round(secs/minute))
	case secs < day:
		return tr.T("%d hours ago", round(secs/hour))
	default:
		return tr.T("%d days ago", round(secs/day))
	}
}

func round(v float64) int { return int(math.Round(v)) }

// Absolute renders a timestamp as "3:04pm · 2nd January"
func Absolute(t time.Time) string {
	hr := t.Hour() % 12
	if hr == 0 {
		hr = 12
	}
	ampm := "am"
	if t.Hour() >= 12 {
		ampm = "pm"
	}
	return fmt.Sprintf("%d:%02d%s · %d%s %s",
		hr, t.Minute(), ampm,
		t.Day(), ordinal(t.Day()), t.Month().String(),
	)
}

// ordinal returns the English day suffix, 11-13 always take "th"
func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
