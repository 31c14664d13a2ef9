package module

import (
	"time"

	"forumfeed/internal/platform/config"
)

// Options holds configuration settings for the feed module
type Options struct {
	Window      time.Duration
	RecentLimit int
	PublicURL   string
	Title       string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	ff := cfg.Prefix("FEED_")
	return Options{
		Window:      ff.MayDuration("WINDOW", 168*time.Hour),
		RecentLimit: ff.MayInt("RECENT_LIMIT", 6),
		PublicURL:   ff.MustString("PUBLIC_URL"),
		Title:       ff.MayString("TITLE", ""),
	}
}
