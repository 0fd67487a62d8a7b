package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"prosync-engine/internal/auth"
	"prosync-engine/internal/browser"
	"prosync-engine/internal/checkpoint"
	"prosync-engine/internal/config"
	"prosync-engine/internal/runlock"
	"prosync-engine/internal/scrape"
	"prosync-engine/internal/secrets"
	"prosync-engine/internal/sheets"
	"prosync-engine/internal/sheetsync"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("PROSYNC_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One run at a time; a second run would race the read-once/write-once
	// sync phase and double-append.
	lock, err := runlock.Acquire(dataDir)
	if err != nil {
		log.Fatalf("[setup] %v", err)
	}
	defer func() { _ = lock.Release() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("[setup] config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("[setup] config load failed (%s): %v", userCfgPath, err)
	}
	cfg, val := config.NormalizeAndValidate(cfg)
	for _, w := range val.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !val.OK() {
		for _, e := range val.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("[setup] invalid config (%s)", userCfgPath)
	}

	password, err := secrets.GetPortalPassword(cfg.Portal.KeyringAccount)
	if err != nil {
		log.Fatalf("[setup] %v", err)
	}

	db, err := checkpoint.Open(filepath.Join(dataDir, "prosync.db"))
	if err != nil {
		log.Fatalf("[setup] open checkpoint db: %v", err)
	}
	defer db.Close()
	if err := checkpoint.Migrate(db.Pool); err != nil {
		log.Fatalf("[setup] migrate checkpoint db: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, password, db); err != nil {
		log.Fatalf("[run] %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, password string, db *checkpoint.DB) error {
	elementWait := time.Duration(cfg.Waits.ElementSeconds) * time.Second
	pageWait := time.Duration(cfg.Waits.PageSeconds) * time.Second
	loginWait := time.Duration(cfg.Waits.LoginSeconds) * time.Second

	session, err := browser.NewSession(ctx, browser.Options{
		Headless:      cfg.Browser.Headless,
		UserAgent:     cfg.Browser.UserAgent,
		NavsPerSecond: cfg.Browser.NavsPerSecond,
		ElementWait:   elementWait,
		PageWait:      pageWait,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	if err := auth.Login(ctx, session, auth.Options{
		LoginURL:  cfg.Portal.LoginURL,
		Username:  cfg.Portal.Username,
		Password:  password,
		PageWait:  pageWait,
		LoginWait: loginWait,
	}); err != nil {
		return err
	}

	batch, err := scrape.Enumerate(ctx, session, scrape.Options{
		JobsURL:  cfg.Portal.JobsURL,
		PageWait: pageWait,
	})
	if err != nil {
		return err
	}

	// Checkpoint before touching the sheet: a sync failure must not cost
	// the browser work. Leftovers from earlier failed syncs ride along.
	saved, err := checkpoint.SaveBatch(ctx, db.Pool, batch)
	if err != nil {
		return err
	}
	log.Printf("[checkpoint] %d scraped, %d newly saved", len(batch), saved)

	// The browser is done; release it before the sync phase.
	session.Close()

	pending, err := checkpoint.Pending(ctx, db.Pool)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		log.Printf("[sync] nothing pending")
		return nil
	}

	store, err := sheets.Open(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID, cfg.Sheets.Worksheet)
	if err != nil {
		return err
	}

	added, err := sheetsync.Run(ctx, store, pending)
	if err != nil {
		return err
	}

	// Every pending record is now reconciled: either appended just now or
	// already present in the sheet.
	workOrders := make([]string, len(pending))
	for i, r := range pending {
		workOrders[i] = r.WorkOrder
	}
	if err := checkpoint.MarkSynced(ctx, db.Pool, workOrders); err != nil {
		return err
	}

	log.Printf("[run] done: %d pending, %d appended", len(pending), added)
	return nil
}
