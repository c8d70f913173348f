package leave

import "context"

// RequestRepository defines data access methods for leave requests.
type RequestRepository interface {
	// ListApprovedByEmployee retrieves every approved request of an employee
	ListApprovedByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// Create creates a new leave request
	Create(ctx context.Context, req Request) (Request, error)
}
