package checkpoint

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"prosync-engine/internal/scrape"
)

// SaveBatch persists a scraped batch before any sync attempt, so a sheet
// failure never costs the browser work. Records already saved under the
// same work order are skipped; the number actually inserted is returned.
func SaveBatch(ctx context.Context, db *sql.DB, batch []scrape.JobRecord) (added int, err error) {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, r := range batch {
		_, err := db.ExecContext(ctx, `
INSERT OR IGNORE INTO scraped_jobs
  (service, work_order, customer_name, customer_phone, street_address,
   city, state, zip_code, country, appointment_date, appointment_time,
   job_description, synced, scraped_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?);`,
			r.Service, r.WorkOrder, r.CustomerName, r.CustomerPhone, r.StreetAddress,
			r.City, r.State, r.ZipCode, r.Country, r.AppointmentDate, r.AppointmentTime,
			r.JobDescription, now,
		)
		if err != nil {
			return added, fmt.Errorf("save record %q: %w", r.WorkOrder, err)
		}

		// SELECT changes() tells us whether OR IGNORE actually inserted.
		var changes int
		if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil && changes > 0 {
			added++
		}
	}
	return added, nil
}

// Pending returns every record not yet reconciled with the sheet, oldest
// first. This includes leftovers from earlier runs that failed mid-sync.
func Pending(ctx context.Context, db *sql.DB) ([]scrape.JobRecord, error) {
	rows, err := db.QueryContext(ctx, `
SELECT service, work_order, customer_name, customer_phone, street_address,
       city, state, zip_code, country, appointment_date, appointment_time,
       job_description
FROM scraped_jobs
WHERE synced = 0
ORDER BY id ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scrape.JobRecord
	for rows.Next() {
		var r scrape.JobRecord
		if err := rows.Scan(
			&r.Service, &r.WorkOrder, &r.CustomerName, &r.CustomerPhone, &r.StreetAddress,
			&r.City, &r.State, &r.ZipCode, &r.Country, &r.AppointmentDate, &r.AppointmentTime,
			&r.JobDescription,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// MarkSynced flips the synced flag for the given work orders.
func MarkSynced(ctx context.Context, db *sql.DB, workOrders []string) error {
	if len(workOrders) == 0 {
		return nil
	}

	ph := strings.TrimRight(strings.Repeat("?,", len(workOrders)), ",")
	args := make([]any, len(workOrders))
	for i, wo := range workOrders {
		args[i] = wo
	}

	_, err := db.ExecContext(ctx,
		`UPDATE scraped_jobs SET synced = 1 WHERE work_order IN (`+ph+`);`, args...)
	if err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	return nil
}
