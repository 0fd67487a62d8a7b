package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CountAssignPro counts "Assign Pro" status pills in a rendered listing
// snapshot. Counting happens on the HTML string, not on live element
// handles, so the count survives the navigations that invalidate handles.
func CountAssignPro(html string) (int, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0, err
	}

	n := 0
	doc.Find("div[class*='_statusPill']").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), assignProLabel) {
			n++
		}
	})
	return n, nil
}
