// Package memory provides in-memory repository implementations, used by
// tests and by the "memory" storage driver for local development.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/holiday"
	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
)

// =============================================================================
// EMPLOYEE DIRECTORY
// =============================================================================

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) ListByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.Department == department && emp.ResignDate == nil {
			out = append(out, emp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeCode < out[j].EmployeeCode })
	return out, nil
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp
	return emp, nil
}

// =============================================================================
// ATTENDANCE RECORDS
// =============================================================================

type recordKey struct {
	EmployeeID string
	Date       string
}

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[recordKey]attendance.Record
	byID    map[string]recordKey
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[recordKey]attendance.Record),
		byID:    make(map[string]recordKey),
	}
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[recordKey{EmployeeID: employeeID, Date: date}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *AttendanceRepository) ListByEmployeeAndMonth(_ context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := monthPrefix(year, month)
	var out []attendance.Record
	for key, rec := range r.records {
		if key.EmployeeID == employeeID && strings.HasPrefix(key.Date, prefix) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *AttendanceRepository) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upsertLocked(rec), nil
}

// BulkUpsert applies the whole batch under one lock so readers never see
// a half-saved sheet.
func (r *AttendanceRepository) BulkUpsert(_ context.Context, recs []attendance.Record) ([]attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make([]attendance.Record, 0, len(recs))
	for _, rec := range recs {
		saved = append(saved, r.upsertLocked(rec))
	}
	return saved, nil
}

func (r *AttendanceRepository) upsertLocked(rec attendance.Record) attendance.Record {
	key := recordKey{EmployeeID: rec.EmployeeID, Date: rec.Date}
	now := time.Now()
	if existing, ok := r.records[key]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	} else {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	r.records[key] = rec
	r.byID[rec.ID] = key
	return rec
}

func (r *AttendanceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byID[id]
	if !ok {
		return attendance.ErrRecordNotFound
	}
	delete(r.records, key)
	delete(r.byID, id)
	return nil
}

// =============================================================================
// LEAVE REQUESTS
// =============================================================================

type LeaveRepository struct {
	mu       sync.RWMutex
	requests map[string][]leave.Request // by employee ID
}

func NewLeaveRepository() *LeaveRepository {
	return &LeaveRepository{requests: make(map[string][]leave.Request)}
}

func (r *LeaveRepository) ListApprovedByEmployee(_ context.Context, employeeID string) ([]leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.Request
	for _, req := range r.requests[employeeID] {
		if req.Status == leave.StatusApproved {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (r *LeaveRepository) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	r.requests[req.EmployeeID] = append(r.requests[req.EmployeeID], req)
	return req, nil
}

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

type HolidayCalendar struct {
	mu       sync.RWMutex
	holidays map[string]holiday.Holiday // by date
}

func NewHolidayCalendar() *HolidayCalendar {
	return &HolidayCalendar{holidays: make(map[string]holiday.Holiday)}
}

// Add registers a holiday; later additions for the same date win.
func (c *HolidayCalendar) Add(h holiday.Holiday) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holidays[h.Date] = h
}

func (c *HolidayCalendar) IsHoliday(_ context.Context, date string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.holidays[date]
	return ok, nil
}

func (c *HolidayCalendar) ListByYear(_ context.Context, year int) ([]holiday.Holiday, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	prefix := yearPrefix(year)
	var out []holiday.Holiday
	for date, h := range c.holidays {
		if strings.HasPrefix(date, prefix) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func monthPrefix(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")
}

func yearPrefix(year int) string {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006-")
}
