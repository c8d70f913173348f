package attendance

import (
	"context"

	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

// Service defines business logic for attendance operations
type Service interface {
	// UpsertRecord creates or corrects one employee-day record and evicts
	// the affected month from the stats cache
	UpsertRecord(ctx context.Context, req UpsertRecordRequest) (RecordResponse, error)

	// BulkUpsertRecords applies a batch of corrections atomically and
	// evicts every affected month
	BulkUpsertRecords(ctx context.Context, req BulkUpsertRequest) ([]RecordResponse, error)

	// DeleteRecord removes a record and evicts the affected month
	DeleteRecord(ctx context.Context, req DeleteRecordRequest) error

	// DayStatus classifies a single employee-day
	DayStatus(ctx context.Context, employeeID string, year, month, day int) (worktime.DayResult, error)

	// MonthSheet returns the per-day classification and month aggregate
	// for one employee
	MonthSheet(ctx context.Context, employeeID string, year, month int) (MonthSheetResponse, error)

	// TeamMonthSheet returns month aggregates for every employee of a
	// department
	TeamMonthSheet(ctx context.Context, department string, year, month int) (TeamMonthSheetResponse, error)

	// RefreshMonth drops the cached aggregate and recomputes it
	RefreshMonth(ctx context.Context, employeeID string, year, month int) (worktime.MonthlyStats, error)
}
