package attendance

import "context"

// RecordRepository defines data access methods for raw attendance records.
type RecordRepository interface {
	// GetByEmployeeAndDate retrieves the record for one employee-day.
	// Returns nil when no record exists; a missing day is not an error.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Record, error)

	// ListByEmployeeAndMonth retrieves all records of an employee for a month
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) ([]Record, error)

	// Upsert creates or replaces the record for its employee-day
	Upsert(ctx context.Context, rec Record) (Record, error)

	// BulkUpsert applies a batch of upserts atomically: either every
	// record lands or none does
	BulkUpsert(ctx context.Context, recs []Record) ([]Record, error)

	// Delete removes a record by ID
	Delete(ctx context.Context, id string) error
}
