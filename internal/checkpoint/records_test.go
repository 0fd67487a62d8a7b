package checkpoint

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"prosync-engine/internal/scrape"

	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, Migrate(d.Pool))
	return d.Pool
}

func rec(workOrder string) scrape.JobRecord {
	return scrape.JobRecord{
		Service:         "Drain Cleaning",
		WorkOrder:       workOrder,
		CustomerName:    "Pat Smith",
		CustomerPhone:   "(303) 555-0147",
		StreetAddress:   "123 Main St",
		City:            "Denver",
		State:           "CO",
		ZipCode:         "80202",
		Country:         "US",
		AppointmentDate: "Mar 3, 2026",
		AppointmentTime: "8:00 AM - 12:00 PM",
		JobDescription:  "Kitchen sink backing up.",
	}
}

func TestSaveBatchIgnoresDuplicates(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	added, err := SaveBatch(ctx, db, []scrape.JobRecord{rec("WO-1"), rec("WO-2")})
	require.NoError(t, err)
	require.Equal(t, 2, added)

	// same work orders again: nothing new
	added, err = SaveBatch(ctx, db, []scrape.JobRecord{rec("WO-1"), rec("WO-3")})
	require.NoError(t, err)
	require.Equal(t, 1, added)

	pending, err := Pending(ctx, db)
	require.NoError(t, err)
	require.Len(t, pending, 3)
}

func TestPendingRoundTripsAllFields(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	want := rec("WO-42")
	_, err := SaveBatch(ctx, db, []scrape.JobRecord{want})
	require.NoError(t, err)

	pending, err := Pending(ctx, db)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, want, pending[0])
}

func TestMarkSyncedExcludesFromPending(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := SaveBatch(ctx, db, []scrape.JobRecord{rec("WO-1"), rec("WO-2"), rec("WO-3")})
	require.NoError(t, err)

	require.NoError(t, MarkSynced(ctx, db, []string{"WO-1", "WO-3"}))

	pending, err := Pending(ctx, db)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "WO-2", pending[0].WorkOrder)

	require.NoError(t, MarkSynced(ctx, db, nil))
}

func TestSentinelWorkOrdersAreNotDeduped(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// Two jobs whose work order failed extraction must both survive; the
	// sentinel is not a business key.
	a := rec(scrape.NA)
	b := rec(scrape.NA)
	b.CustomerName = "Lee Jones"

	added, err := SaveBatch(ctx, db, []scrape.JobRecord{a, b})
	require.NoError(t, err)
	require.Equal(t, 2, added)
}
