package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

type ServiceImpl struct {
	records   attendance.RecordRepository
	employees employee.EmployeeRepository
	engine    worktime.Service
}

func NewService(
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	engine worktime.Service,
) attendance.Service {
	return &ServiceImpl{
		records:   recordRepo,
		employees: employeeRepo,
		engine:    engine,
	}
}

// UpsertRecord implements attendance.Service.
// Corrections from the editing UI land here; the affected month's cached
// aggregate is evicted so the next read recomputes.
func (s *ServiceImpl) UpsertRecord(ctx context.Context, req attendance.UpsertRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		ShiftTag:   attendance.ShiftTag(req.ShiftTag),
		RecordType: attendance.RecordType(req.RecordType),
		Note:       req.Note,
	}

	saved, err := s.records.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	s.invalidateMonth(req.EmployeeID, req.Date)

	return mapRecordToResponse(saved), nil
}

// BulkUpsertRecords implements attendance.Service.
func (s *ServiceImpl) BulkUpsertRecords(ctx context.Context, req attendance.BulkUpsertRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recs := make([]attendance.Record, 0, len(req.Records))
	for _, r := range req.Records {
		recs = append(recs, attendance.Record{
			EmployeeID: r.EmployeeID,
			Date:       r.Date,
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
			ShiftTag:   attendance.ShiftTag(r.ShiftTag),
			RecordType: attendance.RecordType(r.RecordType),
			Note:       r.Note,
		})
	}

	saved, err := s.records.BulkUpsert(ctx, recs)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk upsert attendance records: %w", err)
	}

	// One eviction per touched employee-month.
	seen := make(map[string]bool, len(saved))
	responses := make([]attendance.RecordResponse, 0, len(saved))
	for _, rec := range saved {
		monthKey := rec.EmployeeID + "/" + rec.Date[:7]
		if !seen[monthKey] {
			seen[monthKey] = true
			s.invalidateMonth(rec.EmployeeID, rec.Date)
		}
		responses = append(responses, mapRecordToResponse(rec))
	}

	return responses, nil
}

// DeleteRecord implements attendance.Service.
func (s *ServiceImpl) DeleteRecord(ctx context.Context, req attendance.DeleteRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.records.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	s.invalidateMonth(req.EmployeeID, req.Date)

	return nil
}

// DayStatus implements attendance.Service.
func (s *ServiceImpl) DayStatus(ctx context.Context, employeeID string, year, month, day int) (worktime.DayResult, error) {
	return s.engine.ClassifyDay(ctx, employeeID, year, month, day)
}

// MonthSheet implements attendance.Service.
func (s *ServiceImpl) MonthSheet(ctx context.Context, employeeID string, year, month int) (attendance.MonthSheetResponse, error) {
	stats, err := s.engine.MonthlyStats(ctx, employeeID, year, month)
	if err != nil {
		return attendance.MonthSheetResponse{}, fmt.Errorf("failed to compute monthly stats: %w", err)
	}

	days := make([]worktime.DayResult, 0, 31)
	for day := 1; day <= daysIn(year, month); day++ {
		res, err := s.engine.ClassifyDay(ctx, employeeID, year, month, day)
		if err != nil {
			return attendance.MonthSheetResponse{}, fmt.Errorf("failed to classify day %d: %w", day, err)
		}
		days = append(days, res)
	}

	sheet := attendance.MonthSheetResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Days:       days,
		Stats:      stats,
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err == nil {
		sheet.EmployeeName = emp.FullName
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return attendance.MonthSheetResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return sheet, nil
}

// TeamMonthSheet implements attendance.Service.
func (s *ServiceImpl) TeamMonthSheet(ctx context.Context, department string, year, month int) (attendance.TeamMonthSheetResponse, error) {
	employees, err := s.employees.ListByDepartment(ctx, department)
	if err != nil {
		return attendance.TeamMonthSheetResponse{}, fmt.Errorf("failed to list department employees: %w", err)
	}

	rows := make([]attendance.TeamMonthSheetRow, 0, len(employees))
	for _, emp := range employees {
		stats, err := s.engine.MonthlyStats(ctx, emp.ID, year, month)
		if err != nil {
			return attendance.TeamMonthSheetResponse{}, fmt.Errorf("failed to compute stats for %s: %w", emp.ID, err)
		}
		rows = append(rows, attendance.TeamMonthSheetRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Position:     emp.Position,
			Stats:        stats,
		})
	}

	return attendance.TeamMonthSheetResponse{
		Department: department,
		Year:       year,
		Month:      month,
		Rows:       rows,
	}, nil
}

// RefreshMonth implements attendance.Service.
func (s *ServiceImpl) RefreshMonth(ctx context.Context, employeeID string, year, month int) (worktime.MonthlyStats, error) {
	s.engine.Invalidate(employeeID, year, month)
	return s.engine.MonthlyStats(ctx, employeeID, year, month)
}

// invalidateMonth evicts the cached aggregate covering a "YYYY-MM-DD" date.
func (s *ServiceImpl) invalidateMonth(employeeID, date string) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		s.engine.InvalidateAll()
		return
	}
	s.engine.Invalidate(employeeID, d.Year(), int(d.Month()))
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		CheckIn:    rec.CheckIn,
		CheckOut:   rec.CheckOut,
		ShiftTag:   string(rec.ShiftTag),
		RecordType: string(rec.RecordType),
		Note:       rec.Note,
	}
}
