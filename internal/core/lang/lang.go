// Package lang provides locale negotiation and message translation for feed rendering.
//
// English is the source locale, message keys are the English strings themselves.
// Additional locales register translations against the default x/text catalog.
package lang

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys shared with the formatter. Keeping them as constants avoids
// drift between catalog registration and call sites.
const (
	KeyJustNow       = "just now"
	KeyMinutesAgo    = "%d minutes ago"
	KeyHoursAgo      = "%d hours ago"
	KeyDaysAgo       = "%d days ago"
	KeyPostsThisWeek = "%d posts this week"
	KeyNoPosts       = "Posts from forums across your courses will be shown here."
	KeyPluginName    = "Forum activity"
	KeyDescription   = "Recent and popular forum posts from your courses."
	KeyPopular       = "Popular"
	KeyViewYourPosts = "View your forum posts"
)

// welsh is not among the predefined tags in x/text/language
var welsh = language.MustParse("cy")

var supported = []language.Tag{
	language.English, // first entry is the fallback
	welsh,
}

var matcher = language.NewMatcher(supported)

func init() {
	// English plurals, the key doubles as the "other" form
	message.Set(language.English, KeyMinutesAgo,
		plural.Selectf(1, "%d", "one", "%d minute ago", "other", "%d minutes ago"))
	message.Set(language.English, KeyHoursAgo,
		plural.Selectf(1, "%d", "one", "%d hour ago", "other", "%d hours ago"))
	message.Set(language.English, KeyDaysAgo,
		plural.Selectf(1, "%d", "one", "%d day ago", "other", "%d days ago"))
	message.Set(language.English, KeyPostsThisWeek,
		plural.Selectf(1, "%d", "one", "%d post this week", "other", "%d posts this week"))

	// Welsh
	message.SetString(welsh, KeyJustNow, "nawr")
	message.Set(welsh, KeyMinutesAgo,
		plural.Selectf(1, "%d", "one", "%d funud yn ôl", "other", "%d munud yn ôl"))
	message.Set(welsh, KeyHoursAgo,
		plural.Selectf(1, "%d", "one", "%d awr yn ôl", "other", "%d awr yn ôl"))
	message.Set(welsh, KeyDaysAgo,
		plural.Selectf(1, "%d", "one", "%d diwrnod yn ôl", "other", "%d diwrnod yn ôl"))
	message.Set(welsh, KeyPostsThisWeek,
		plural.Selectf(1, "%d", "one", "%d neges yr wythnos hon", "other", "%d neges yr wythnos hon"))
	message.SetString(welsh, KeyNoPosts,
		"Bydd negeseuon o fforymau ar draws eich cyrsiau yn cael eu dangos yma.")
	message.SetString(welsh, KeyPluginName, "Gweithgarwch fforwm")
	message.SetString(welsh, KeyDescription,
		"Negeseuon fforwm diweddar a phoblogaidd o'ch cyrsiau.")
	message.SetString(welsh, KeyPopular, "Poblogaidd")
	message.SetString(welsh, KeyViewYourPosts, "Gweld eich negeseuon fforwm")
}

// Localizer translates feed strings for one negotiated locale
type Localizer struct {
	tag language.Tag
	p   *message.Printer
}

// Match negotiates the best supported locale for an Accept-Language style
// preference string. Empty or unparseable input falls back to English.
func Match(pref string) Localizer {
	tag, _ := language.MatchStrings(matcher, pref)
	return Localizer{tag: tag, p: message.NewPrinter(tag)}
}

// Default returns the English localizer
func Default() Localizer { return Match("") }

// Tag returns the negotiated language tag
func (l Localizer) Tag() language.Tag {
	if l.p == nil {
		return language.English
	}
	return l.tag
}

// T formats the message registered under key for the localizer's locale
func (l Localizer) T(key string, args ...any) string {
	if l.p == nil {
		// zero value behaves like English
		return message.NewPrinter(language.English).Sprintf(key, args...)
	}
	return l.p.Sprintf(key, args...)
}
