package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, department, sub_department, position,
			   pay_type, work_type, hourly_rate, hire_date, resign_date,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	var payType, workType string
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Department, &emp.SubDepartment, &emp.Position,
		&payType, &workType, &emp.HourlyRate, &emp.HireDate, &emp.ResignDate,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	emp.PayType = employee.NormalizePayType(payType)
	emp.WorkType = employee.NormalizeWorkType(workType)
	return emp, nil
}

// ListByDepartment implements employee.EmployeeRepository.
func (r *employeeRepository) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, full_name, department, sub_department, position,
			   pay_type, work_type, hourly_rate, hire_date, resign_date,
			   created_at, updated_at
		FROM employees
		WHERE department = $1
		  AND resign_date IS NULL
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var payType, workType string
		if err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Department, &emp.SubDepartment, &emp.Position,
			&payType, &workType, &emp.HourlyRate, &emp.HireDate, &emp.ResignDate,
			&emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emp.PayType = employee.NormalizePayType(payType)
		emp.WorkType = employee.NormalizeWorkType(workType)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, department, sub_department, position,
			pay_type, work_type, hourly_rate, hire_date, resign_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FullName, emp.Department, emp.SubDepartment, emp.Position,
		string(emp.PayType), string(emp.WorkType), emp.HourlyRate, emp.HireDate, emp.ResignDate,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}
