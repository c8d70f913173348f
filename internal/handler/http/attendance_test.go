package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmsteel/hr-backend-go/internal/config"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/holiday"
	"github.com/kmsteel/hr-backend-go/internal/repository/memory"
	attendanceService "github.com/kmsteel/hr-backend-go/internal/service/attendance"
	payrollService "github.com/kmsteel/hr-backend-go/internal/service/payroll"
	worktimeService "github.com/kmsteel/hr-backend-go/internal/service/worktime"
	"github.com/shopspring/decimal"
)

func handlerTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:         "test",
			FrontendURL: "http://localhost:3000",
		},
		Worktime: config.WorktimeConfig{
			DayDetectFromHour:  6,
			DayDetectUntilHour: 18,
			DayShiftStart:      "08:30",
			DayShiftEnd:        "17:30",
			DayLateAfter:       "08:30",
			DayLeaveBefore:     "17:20",
			NightShiftStart:    "19:00",
			NightShiftEnd:      "04:00",
			NightLateAfter:     "19:00",
			NightLeaveBefore:   "03:50",
			NightBandStart:     "22:00",
			NightBandEnd:       "06:00",
		},
		Payroll: config.PayrollConfig{
			EarlyRate:           "1.5",
			OvertimeRate:        "1.5",
			NightRate:           "1.5",
			OvertimeNightRate:   "2.0",
			HolidayRate:         "1.5",
			HolidayOvertimeRate: "2.0",
			EarlyHolidayRate:    "1.5",
		},
	}
}

func newTestRouter(t *testing.T) (http.Handler, *memory.EmployeeRepository, *memory.HolidayCalendar) {
	t.Helper()
	cfg := handlerTestConfig()

	employees := memory.NewEmployeeRepository()
	records := memory.NewAttendanceRepository()
	leaves := memory.NewLeaveRepository()
	holidays := memory.NewHolidayCalendar()

	engine, err := worktimeService.NewEngine(employees, records, leaves, holidays, cfg.Worktime)
	require.NoError(t, err)

	attendanceSvc := attendanceService.NewService(records, employees, engine)
	payrollSvc, err := payrollService.NewService(employees, engine, cfg.Payroll)
	require.NoError(t, err)

	router := NewRouter(cfg, NewAttendanceHandler(attendanceSvc), NewPayrollHandler(payrollSvc), NewHolidayHandler(holidays))
	return router, employees, holidays
}

func seedHandlerEmployee(t *testing.T, repo *memory.EmployeeRepository) employee.Employee {
	t.Helper()
	rate := decimal.NewFromInt(10000)
	emp, err := repo.Create(context.Background(), employee.Employee{
		EmployeeCode: "E001",
		FullName:     "김철수",
		Department:   "생산",
		PayType:      employee.PayTypeHourly,
		WorkType:     employee.WorkTypeDay,
		HourlyRate:   &rate,
	})
	require.NoError(t, err)
	return emp
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpsertAndMonthSheetRoundTrip(t *testing.T) {
	router, employees, _ := newTestRouter(t)
	emp := seedHandlerEmployee(t, employees)

	rec := postJSON(t, router, "/api/v1/attendance/records", map[string]interface{}{
		"employee_id": emp.ID,
		"date":        "2024-05-02",
		"check_in":    "08:45",
		"check_out":   "17:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = getJSON(t, router, fmt.Sprintf("/api/v1/attendance/%s/months/2024/5", emp.ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			EmployeeName string `json:"employee_name"`
			Stats        struct {
				WorkedDays   int `json:"worked_days"`
				LateDays     int `json:"late_days"`
				TotalMinutes int `json:"total_minutes"`
			} `json:"stats"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "김철수", resp.Data.EmployeeName)
	assert.Equal(t, 1, resp.Data.Stats.WorkedDays)
	assert.Equal(t, 1, resp.Data.Stats.LateDays)
	assert.Equal(t, 495, resp.Data.Stats.TotalMinutes)
}

func TestUpsertRecord_ValidationErrorResponse(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/attendance/records", map[string]interface{}{
		"employee_id": "",
		"date":        "not-a-date",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "employee_id")
	assert.Contains(t, resp.Error.Details, "date")
}

func TestBulkUpsertRoute(t *testing.T) {
	router, employees, _ := newTestRouter(t)
	emp := seedHandlerEmployee(t, employees)

	rec := postJSON(t, router, "/api/v1/attendance/records/bulk", map[string]interface{}{
		"records": []map[string]interface{}{
			{"employee_id": emp.ID, "date": "2024-05-02", "check_in": "08:30", "check_out": "17:30"},
			{"employee_id": emp.ID, "date": "2024-05-03", "check_in": "08:30", "check_out": "17:30"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = getJSON(t, router, fmt.Sprintf("/api/v1/attendance/%s/months/2024/5", emp.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Stats struct {
				WorkedDays int `json:"worked_days"`
			} `json:"stats"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Stats.WorkedDays)
}

func TestDayStatusRoute(t *testing.T) {
	router, employees, _ := newTestRouter(t)
	emp := seedHandlerEmployee(t, employees)

	rec := postJSON(t, router, "/api/v1/attendance/records", map[string]interface{}{
		"employee_id": emp.ID,
		"date":        "2024-05-02",
		"check_in":    "08:30",
		"check_out":   "17:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = getJSON(t, router, fmt.Sprintf("/api/v1/attendance/%s/days/2024-05-02", emp.ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Status   string `json:"status"`
			Recorded bool   `json:"recorded"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "present", resp.Data.Status)
	assert.True(t, resp.Data.Recorded)

	rec = getJSON(t, router, fmt.Sprintf("/api/v1/attendance/%s/days/bad-date", emp.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteRecordRoute(t *testing.T) {
	router, employees, _ := newTestRouter(t)
	emp := seedHandlerEmployee(t, employees)

	rec := postJSON(t, router, "/api/v1/attendance/records", map[string]interface{}{
		"employee_id": emp.ID,
		"date":        "2024-05-02",
		"check_in":    "08:30",
		"check_out":   "17:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	path := fmt.Sprintf("/api/v1/attendance/records/%s?employee_id=%s&date=2024-05-02", created.Data.ID, emp.ID)
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	del := httptest.NewRecorder()
	router.ServeHTTP(del, req)
	require.Equal(t, http.StatusOK, del.Code, del.Body.String())

	// A second delete reports not found.
	del = httptest.NewRecorder()
	router.ServeHTTP(del, httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusNotFound, del.Code)
}

func TestTeamMonthSheetRoute(t *testing.T) {
	router, employees, _ := newTestRouter(t)
	seedHandlerEmployee(t, employees)

	rec := getJSON(t, router, "/api/v1/departments/생산/months/2024/5")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			Department string `json:"department"`
			Rows       []struct {
				EmployeeName string `json:"employee_name"`
			} `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "생산", resp.Data.Department)
	require.Len(t, resp.Data.Rows, 1)
	assert.Equal(t, "김철수", resp.Data.Rows[0].EmployeeName)
}

func TestPayrollSummaryRoute(t *testing.T) {
	router, employees, _ := newTestRouter(t)
	emp := seedHandlerEmployee(t, employees)

	rec := postJSON(t, router, "/api/v1/attendance/records", map[string]interface{}{
		"employee_id": emp.ID,
		"date":        "2024-05-02",
		"check_in":    "08:30",
		"check_out":   "17:30",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = getJSON(t, router, fmt.Sprintf("/api/v1/payroll/%s/months/2024/5", emp.ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			TotalPay string `json:"total_pay"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "90000", resp.Data.TotalPay)
}

func TestHolidayRoutes(t *testing.T) {
	router, _, holidays := newTestRouter(t)
	holidays.Add(holiday.Holiday{Date: "2024-05-15", Name: "부처님오신날"})

	rec := getJSON(t, router, "/api/v1/holidays/check/2024-05-15")
	require.Equal(t, http.StatusOK, rec.Code)
	var checkResp struct {
		Data struct {
			Holiday bool `json:"holiday"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checkResp))
	assert.True(t, checkResp.Data.Holiday)

	rec = getJSON(t, router, "/api/v1/holidays/check/2024-05-16")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checkResp))
	assert.False(t, checkResp.Data.Holiday)

	rec = getJSON(t, router, "/api/v1/holidays/2024")
	require.Equal(t, http.StatusOK, rec.Code)
	var listResp struct {
		Data []struct {
			Date string `json:"Date"`
			Name string `json:"Name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, "2024-05-15", listResp.Data[0].Date)

	rec = getJSON(t, router, "/api/v1/holidays/check/2024-13-40")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMonthRouteRejectsBadYear(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := getJSON(t, router, "/api/v1/attendance/emp-1/months/20x4/5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = getJSON(t, router, "/api/v1/attendance/emp-1/months/2024/13")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
