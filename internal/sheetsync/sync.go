package sheetsync

import (
	"context"
	"fmt"
	"log"

	"prosync-engine/internal/scrape"
)

// workOrderColumn is the sheet header of the business key.
const workOrderColumn = "Work Order"

// RowStore is the slice of the tabular store the engine touches: one full
// read, at most one append, per run.
type RowStore interface {
	ReadAll(ctx context.Context) ([]map[string]string, error)
	Append(ctx context.Context, rows [][]string) error
}

// Run appends the records whose work order is not already in the store and
// reports how many were written. Matching is exact string equality — no
// case or whitespace normalization — which keeps re-runs idempotent without
// fuzzy matching.
func Run(ctx context.Context, store RowStore, batch []scrape.JobRecord) (added int, err error) {
	existing, err := store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("read existing rows: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		// a blank cell (hand-edited row) is not a key and must not
		// shadow anything
		if wo := row[workOrderColumn]; wo != "" {
			seen[wo] = struct{}{}
		}
	}

	var rows [][]string
	for _, rec := range batch {
		if _, dup := seen[rec.WorkOrder]; dup {
			continue
		}
		rows = append(rows, rec.Fields())
	}

	if len(rows) == 0 {
		log.Printf("[sync] no new jobs (%d already recorded)", len(batch))
		return 0, nil
	}

	if err := store.Append(ctx, rows); err != nil {
		return 0, err
	}
	log.Printf("[sync] appended %d new jobs", len(rows))
	return len(rows), nil
}
