package module

import "forumfeed/internal/platform/config"

// Options holds configuration settings for the profiles module
type Options struct {
	PublicURL  string
	AvatarSize int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	ff := cfg.Prefix("FEED_")
	return Options{
		PublicURL:  ff.MustString("PUBLIC_URL"),
		AvatarSize: ff.MayInt("AVATAR_SIZE", 100),
	}
}
