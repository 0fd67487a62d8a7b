package auth

import (
	"context"
	"fmt"
	"log"
	"time"

	"prosync-engine/internal/browser"
)

const (
	signInButton  = "//*[contains(@class, 'button-interactive')]"
	usernameField = "//input[@id='loginId']"
	passwordField = "//input[@id='password']"
	loginButton   = "//*[@id='login-btn']"
)

type Options struct {
	LoginURL  string
	Username  string
	Password  string
	PageWait  time.Duration
	LoginWait time.Duration
}

// Login walks the portal sign-in flow and blocks until the post-login page
// is up. Any failure here is fatal to the run; there is no retry.
func Login(ctx context.Context, s *browser.Session, opts Options) error {
	if err := s.Navigate(ctx, opts.LoginURL); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}

	if err := s.WaitVisible(ctx, signInButton, opts.PageWait); err != nil {
		return fmt.Errorf("sign-in button: %w", err)
	}
	if err := s.Click(ctx, signInButton); err != nil {
		return fmt.Errorf("sign-in button: %w", err)
	}
	log.Printf("[auth] clicked sign-in")

	if err := s.WaitVisible(ctx, usernameField, opts.PageWait); err != nil {
		return fmt.Errorf("login form: %w", err)
	}
	if err := s.SendKeys(ctx, usernameField, opts.Username); err != nil {
		return fmt.Errorf("fill username: %w", err)
	}
	if err := s.SendKeys(ctx, passwordField, opts.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	if err := s.Click(ctx, loginButton); err != nil {
		return fmt.Errorf("submit login: %w", err)
	}
	log.Printf("[auth] submitted credentials for %s", opts.Username)

	// The portal takes a while to land after login; wait for a rendered body
	// rather than sleeping a fixed minute.
	if err := s.WaitVisible(ctx, "//body", opts.LoginWait); err != nil {
		return fmt.Errorf("post-login page: %w", err)
	}
	log.Printf("[auth] logged in")
	return nil
}
