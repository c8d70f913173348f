package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
	"github.com/kmsteel/hr-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.RequestRepository {
	return &leaveRepository{db: db}
}

// ListApprovedByEmployee implements leave.RequestRepository.
func (r *leaveRepository) ListApprovedByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, kind, status, reason,
			   created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ('approved', '승인')
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		var kind, status string
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &kind, &status, &req.Reason,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		req.Kind = leave.NormalizeKind(kind)
		req.Status = leave.NormalizeStatus(status)
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// Create implements leave.RequestRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, start_date, end_date, kind, status, reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.StartDate, req.EndDate,
		string(req.Kind), string(req.Status), req.Reason,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}
