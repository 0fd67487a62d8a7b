package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"
)

type Options struct {
	Headless      bool
	UserAgent     string
	NavsPerSecond float64 // pacing for navigations and clicks
	ElementWait   time.Duration
	PageWait      time.Duration
}

// Session wraps one headless Chrome tab. All element lookups take XPath
// expressions; every lookup blocks for at most the configured wait and
// fails instead of hanging.
type Session struct {
	ctx    context.Context
	cancel context.CancelFunc
	lim    *rate.Limiter
	opts   Options
}

func NewSession(parent context.Context, opts Options) (*Session, error) {
	flags := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(opts.UserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, flags...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelTab()
		cancelAlloc()
	}

	// Start the browser now so a broken Chrome install fails here,
	// not on the first navigation.
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	if opts.NavsPerSecond <= 0 {
		opts.NavsPerSecond = 0.5
	}

	return &Session{
		ctx:    tabCtx,
		cancel: cancel,
		lim:    rate.NewLimiter(rate.Limit(opts.NavsPerSecond), 1),
		opts:   opts,
	}, nil
}

func (s *Session) run(timeout time.Duration, actions ...chromedp.Action) error {
	tctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(tctx, actions...)
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := s.lim.Wait(ctx); err != nil {
		return err
	}
	if err := s.run(s.opts.PageWait,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// WaitVisible blocks until the first XPath match is visible, up to timeout.
func (s *Session) WaitVisible(ctx context.Context, xpath string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.run(timeout, chromedp.WaitVisible(xpath, chromedp.BySearch)); err != nil {
		return fmt.Errorf("wait visible %s: %w", xpath, err)
	}
	return nil
}

func (s *Session) Click(ctx context.Context, xpath string) error {
	if err := s.lim.Wait(ctx); err != nil {
		return err
	}
	if err := s.run(s.opts.ElementWait, chromedp.Click(xpath, chromedp.BySearch)); err != nil {
		return fmt.Errorf("click %s: %w", xpath, err)
	}
	return nil
}

func (s *Session) SendKeys(ctx context.Context, xpath string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.run(s.opts.ElementWait, chromedp.SendKeys(xpath, text, chromedp.BySearch)); err != nil {
		return fmt.Errorf("send keys %s: %w", xpath, err)
	}
	return nil
}

// Text returns the rendered text of the first XPath match. The lookup
// waits up to the element wait for a match and errors otherwise; callers
// decide what an absent element means.
func (s *Session) Text(ctx context.Context, xpath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := s.run(s.opts.ElementWait, chromedp.Text(xpath, &out, chromedp.BySearch)); err != nil {
		return "", fmt.Errorf("text %s: %w", xpath, err)
	}
	return out, nil
}

// HTML snapshots the full rendered document.
func (s *Session) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var html string
	if err := s.run(s.opts.ElementWait, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("snapshot html: %w", err)
	}
	return html, nil
}

func (s *Session) Close() {
	if s == nil {
		return
	}
	s.cancel()
}
