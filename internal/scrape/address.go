package scrape

import "regexp"

// "Denver, CO 80202" — city, two-letter state, five-digit zip. Anchored on
// both ends so zip+4 and other trailing junk fail the parse.
var cityStateZipRe = regexp.MustCompile(`^(.+), ([A-Z]{2}) (\d{5})$`)

// ParseCityStateZip splits a combined city/state/zip line. A non-match is a
// normal outcome for malformed source text and degrades all three fields
// together rather than partially.
func ParseCityStateZip(raw string) (city, state, zip string) {
	m := cityStateZipRe.FindStringSubmatch(raw)
	if m == nil {
		return NA, NA, NA
	}
	return m[1], m[2], m[3]
}
