// Package derive holds the small client-side derivations the dashboard
// performs before sending a record to the API: blog slugs from titles and
// campaign statuses from their date range.
package derive

import (
	"regexp"
	"strings"
)

var (
	slugDropRe = regexp.MustCompile(`[^\w\s-]+`)
	slugSepRe  = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a URL slug from a blog title: lowercase, non-word runes
// stripped, whitespace runs collapsed to single hyphens. The result contains
// only ASCII word characters and hyphens, so applying Slugify to its own
// output is a no-op.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugDropRe.ReplaceAllString(s, "")
	s = slugSepRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
