package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListByDepartment retrieves all employees of a department
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)

	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)
}
