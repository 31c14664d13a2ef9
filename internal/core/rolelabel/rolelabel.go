// Package rolelabel extracts a display label from course role names.
//
// Role names may arrive as plain text or wrapped in anchor markup depending on
// how the host renders them. The "Student" role is never shown, it is the
// default and carries no signal on a forum post.
package rolelabel

import (
	"regexp"
	"strings"
)

var anchorRe = regexp.MustCompile(`<a[^>]*>(.*?)</a>`)

// Extract returns the visible role names from a list of rendered role strings.
// Anchor-wrapped entries yield their anchor text, plain entries pass through,
// and entries with stray markup but no anchor are skipped.
func Extract(rendered []string) []string {
	var out []string
	for _, raw := range rendered {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if m := anchorRe.FindStringSubmatch(name); m != nil {
			name = strings.TrimSpace(m[1])
		} else if strings.ContainsRune(name, '<') {
			// markup we don't recognise, drop rather than leak tags
			continue
		}
		if name == "" || name == "Student" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// First returns the primary display role, empty when only Student roles exist
func First(rendered []string) string {
	names := Extract(rendered)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Join renders all extracted roles as one comma separated label
func Join(rendered []string) string {
	return strings.Join(Extract(rendered), ", ")
}
