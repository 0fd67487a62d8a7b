package scrape

import (
	"context"
	"strings"
)

// TextFinder is the one capability the field extractor needs from the
// browser: rendered text of the first match, or an error after a bounded
// wait.
type TextFinder interface {
	Text(ctx context.Context, xpath string) (string, error)
}

// extractText absorbs every lookup failure into the NA sentinel. Each call
// can block for up to the browser's element wait; that is the dominant
// latency cost of a run.
func extractText(ctx context.Context, b TextFinder, xpath string) string {
	txt, err := b.Text(ctx, xpath)
	if err != nil {
		return NA
	}
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return NA
	}
	return txt
}

// stripLabel removes an inline label ("Service:", "Name:", ...) that the
// portal renders inside some field containers.
func stripLabel(s, label string) string {
	if s == NA {
		return s
	}
	out := strings.TrimSpace(strings.TrimPrefix(s, label))
	if out == "" {
		return NA
	}
	return out
}
