package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/handler/http/response"
	"github.com/kmsteel/hr-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	UpsertRecord(w http.ResponseWriter, r *http.Request)
	BulkUpsertRecords(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	DayStatus(w http.ResponseWriter, r *http.Request)
	MonthSheet(w http.ResponseWriter, r *http.Request)
	TeamMonthSheet(w http.ResponseWriter, r *http.Request)
	RefreshMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// UpsertRecord implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.UpsertRecord(r.Context(), req)
	if err != nil {
		slog.Error("Failed to upsert attendance record", "error", err,
			"employee_id", req.EmployeeID, "date", req.Date)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record saved", result)
}

// BulkUpsertRecords implements AttendanceHandler.
func (h *attendanceHandlerImpl) BulkUpsertRecords(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkUpsertRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.BulkUpsertRecords(r.Context(), req)
	if err != nil {
		slog.Error("Failed to bulk upsert attendance records", "error", err,
			"count", len(req.Records))
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance records saved", result)
}

// DeleteRecord implements AttendanceHandler.
func (h *attendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	req := attendance.DeleteRecordRequest{
		ID:         chi.URLParam(r, "id"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.DeleteRecord(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// DayStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) DayStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	parsed, ok := validator.IsValidDate(date)
	if !ok {
		response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.attendanceService.DayStatus(r.Context(), employeeID, parsed.Year(), int(parsed.Month()), parsed.Day())
	if err != nil {
		slog.Error("Failed to classify day", "error", err,
			"employee_id", employeeID, "date", date)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthSheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthSheet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	result, err := h.attendanceService.MonthSheet(r.Context(), employeeID, year, month)
	if err != nil {
		slog.Error("Failed to build month sheet", "error", err,
			"employee_id", employeeID, "year", year, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeamMonthSheet implements AttendanceHandler.
func (h *attendanceHandlerImpl) TeamMonthSheet(w http.ResponseWriter, r *http.Request) {
	department := chi.URLParam(r, "department")

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	result, err := h.attendanceService.TeamMonthSheet(r.Context(), department, year, month)
	if err != nil {
		slog.Error("Failed to build team month sheet", "error", err,
			"department", department, "year", year, "month", month)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RefreshMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) RefreshMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	year, month, ok := parseYearMonth(r)
	if !ok {
		response.BadRequest(w, "Invalid year or month", nil)
		return
	}

	result, err := h.attendanceService.RefreshMonth(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Month recomputed", result)
}

// parseYearMonth reads the {year} and {month} URL params shared by the
// month-scoped routes.
func parseYearMonth(r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !validator.IsValidYear(year) {
		return 0, 0, false
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || !validator.IsValidMonth(month) {
		return 0, 0, false
	}
	return year, month, true
}
