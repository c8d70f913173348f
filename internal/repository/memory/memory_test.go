package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/holiday"
	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
)

func TestAttendanceRepository_UpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	first, err := repo.Upsert(ctx, attendance.Record{EmployeeID: "emp-1", Date: "2024-05-02", CheckIn: "08:45"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.Upsert(ctx, attendance.Record{EmployeeID: "emp-1", Date: "2024-05-02", CheckIn: "08:30"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := repo.GetByEmployeeAndDate(ctx, "emp-1", "2024-05-02")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "08:30", got.CheckIn)
}

func TestAttendanceRepository_MissingDayIsNil(t *testing.T) {
	repo := NewAttendanceRepository()

	got, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2024-05-02")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttendanceRepository_ListByEmployeeAndMonth(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	for _, date := range []string{"2024-05-03", "2024-05-01", "2024-06-01", "2024-05-15"} {
		_, err := repo.Upsert(ctx, attendance.Record{EmployeeID: "emp-1", Date: date})
		require.NoError(t, err)
	}
	_, err := repo.Upsert(ctx, attendance.Record{EmployeeID: "emp-2", Date: "2024-05-02"})
	require.NoError(t, err)

	records, err := repo.ListByEmployeeAndMonth(ctx, "emp-1", 2024, 5)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "2024-05-01", records[0].Date)
	assert.Equal(t, "2024-05-03", records[1].Date)
	assert.Equal(t, "2024-05-15", records[2].Date)
}

func TestAttendanceRepository_BulkUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	saved, err := repo.BulkUpsert(ctx, []attendance.Record{
		{EmployeeID: "emp-1", Date: "2024-05-02", CheckIn: "08:30"},
		{EmployeeID: "emp-1", Date: "2024-05-03", CheckIn: "08:30"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)
	assert.NotEqual(t, saved[0].ID, saved[1].ID)

	records, err := repo.ListByEmployeeAndMonth(ctx, "emp-1", 2024, 5)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	saved, err := repo.Upsert(ctx, attendance.Record{EmployeeID: "emp-1", Date: "2024-05-02"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), attendance.ErrRecordNotFound)

	got, err := repo.GetByEmployeeAndDate(ctx, "emp-1", "2024-05-02")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeRepository_ListByDepartment(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	_, err := repo.Create(ctx, employee.Employee{EmployeeCode: "E002", Department: "생산"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{EmployeeCode: "E001", Department: "생산"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, employee.Employee{EmployeeCode: "E003", Department: "관리"})
	require.NoError(t, err)

	out, err := repo.ListByDepartment(ctx, "생산")
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "E001", out[0].EmployeeCode)
	assert.Equal(t, "E002", out[1].EmployeeCode)
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	repo := NewEmployeeRepository()
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveRepository_FiltersUnapproved(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRepository()

	_, err := repo.Create(ctx, leave.Request{EmployeeID: "emp-1", StartDate: "2024-05-07", EndDate: "2024-05-07", Kind: leave.KindAnnual, Status: leave.StatusApproved})
	require.NoError(t, err)
	_, err = repo.Create(ctx, leave.Request{EmployeeID: "emp-1", StartDate: "2024-05-08", EndDate: "2024-05-08", Kind: leave.KindAnnual, Status: leave.StatusPending})
	require.NoError(t, err)

	out, err := repo.ListApprovedByEmployee(ctx, "emp-1")
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "2024-05-07", out[0].StartDate)
}

func TestHolidayCalendar(t *testing.T) {
	ctx := context.Background()
	cal := NewHolidayCalendar()
	cal.Add(holiday.Holiday{Date: "2024-05-15", Name: "부처님오신날"})
	cal.Add(holiday.Holiday{Date: "2024-01-01", Name: "신정"})
	cal.Add(holiday.Holiday{Date: "2023-12-25", Name: "성탄절"})

	yes, err := cal.IsHoliday(ctx, "2024-05-15")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := cal.IsHoliday(ctx, "2024-05-16")
	require.NoError(t, err)
	assert.False(t, no)

	year, err := cal.ListByYear(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, year, 2)
	assert.Equal(t, "2024-01-01", year[0].Date)
}
