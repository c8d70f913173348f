package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepository{db: db}
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, shift_tag, record_type, note,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // a missing day is not an error
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// ListByEmployeeAndMonth implements attendance.RecordRepository.
func (r *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	// Dates are "YYYY-MM-DD" strings, so a month is a prefix range.
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	query := `
		SELECT id, employee_id, date, check_in, check_out, shift_tag, record_type, note,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date LIKE $2 || '%'
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// Upsert implements attendance.RecordRepository.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, check_out, shift_tag, record_type, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			shift_tag = EXCLUDED.shift_tag,
			record_type = EXCLUDED.record_type,
			note = EXCLUDED.note,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date, rec.CheckIn, rec.CheckOut,
		string(rec.ShiftTag), string(rec.RecordType), rec.Note,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

// BulkUpsert implements attendance.RecordRepository. The whole batch runs
// inside one transaction so a sheet save is all-or-nothing.
func (r *attendanceRepository) BulkUpsert(ctx context.Context, recs []attendance.Record) ([]attendance.Record, error) {
	saved := make([]attendance.Record, 0, len(recs))

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		for _, rec := range recs {
			s, err := r.Upsert(txCtx, rec)
			if err != nil {
				return err
			}
			saved = append(saved, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Delete implements attendance.RecordRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var shiftTag, recordType string
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&shiftTag, &recordType, &rec.Note,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	rec.ShiftTag = attendance.NormalizeShiftTag(shiftTag)
	rec.RecordType = attendance.NormalizeRecordType(recordType)
	return rec, nil
}
