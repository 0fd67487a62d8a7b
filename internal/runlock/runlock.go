package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Lock guards against two runs scraping and appending at the same time.
// The sync phase reads the sheet once and writes once, so concurrent runs
// would double-append.
type Lock struct {
	fl *flock.Flock
}

func Acquire(dataDir string) (*Lock, error) {
	fl := flock.New(filepath.Join(dataDir, "prosync.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another run holds %s", fl.Path())
	}
	return &Lock{fl: fl}, nil
}

func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
