package scrape

import (
	"context"
	"fmt"
	"log"
	"time"
)

const assignProLabel = "Assign Pro"

// Listing locators. Opening a job and coming back invalidates any element
// handle held across the navigation, so entries are always addressed by
// position in a freshly resolved XPath match set.
const (
	locStatusPill = "//div[contains(@class, '_statusPill') and contains(text(), '" + assignProLabel + "')]"
	locJobDetails = "//div[@id='jobPage.jobDetails']"
)

// Browser is the capability surface the enumerator needs. The concrete
// implementation lives in internal/browser; tests substitute a scripted one.
type Browser interface {
	Navigate(ctx context.Context, url string) error
	WaitVisible(ctx context.Context, xpath string, timeout time.Duration) error
	Click(ctx context.Context, xpath string) error
	Text(ctx context.Context, xpath string) (string, error)
	HTML(ctx context.Context) (string, error)
}

type Options struct {
	JobsURL  string
	PageWait time.Duration
}

// entryAt addresses the enclosing list entry of the i-th (0-based) Assign
// Pro pill in the live DOM.
func entryAt(i int) string {
	return fmt.Sprintf("(%s)[%d]/ancestor::div[contains(@data-testid, 'appointment-list-item')]", locStatusPill, i+1)
}

// Enumerate opens every job currently in the Assign Pro state and returns
// the extracted batch. The qualifying count is snapshotted once up front;
// if processing a job changes its status, later indices can miss. That
// mirrors the portal's observed behavior (statuses do not change from
// merely viewing a job) — revisit if the portal ever mutates status on open.
//
// A failure on one job is logged with its 1-based position and never aborts
// the run; only context cancellation stops enumeration early.
func Enumerate(ctx context.Context, b Browser, opts Options) ([]JobRecord, error) {
	if err := b.Navigate(ctx, opts.JobsURL); err != nil {
		return nil, fmt.Errorf("open job listing: %w", err)
	}

	html, err := b.HTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot listing: %w", err)
	}
	n, err := CountAssignPro(html)
	if err != nil {
		return nil, fmt.Errorf("count listing: %w", err)
	}
	log.Printf("[scrape] %d %q jobs in listing", n, assignProLabel)

	records := make([]JobRecord, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		if err := openJob(ctx, b, opts, i); err != nil {
			log.Printf("[scrape] job %d/%d: %v", i+1, n, err)
			// Best effort: get back to the listing so the next index
			// resolves against the right page.
			if err := b.Navigate(ctx, opts.JobsURL); err != nil {
				log.Printf("[scrape] job %d/%d: return to listing: %v", i+1, n, err)
			}
			continue
		}

		rec := BuildRecord(ctx, b)
		records = append(records, rec)
		log.Printf("[scrape] job %d/%d: %s - %s", i+1, n, rec.CustomerName, rec.CustomerPhone)

		if err := b.Navigate(ctx, opts.JobsURL); err != nil {
			log.Printf("[scrape] job %d/%d: return to listing: %v", i+1, n, err)
		}
	}
	return records, nil
}

func openJob(ctx context.Context, b Browser, opts Options, i int) error {
	if err := b.Click(ctx, entryAt(i)); err != nil {
		return fmt.Errorf("open entry: %w", err)
	}
	if err := b.WaitVisible(ctx, locJobDetails, opts.PageWait); err != nil {
		return fmt.Errorf("detail view: %w", err)
	}
	return nil
}
