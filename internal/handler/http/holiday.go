package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kmsteel/hr-backend-go/internal/domain/holiday"
	"github.com/kmsteel/hr-backend-go/internal/handler/http/response"
	"github.com/kmsteel/hr-backend-go/internal/pkg/validator"
)

type HolidayHandler interface {
	ListByYear(w http.ResponseWriter, r *http.Request)
	CheckDate(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	calendar holiday.Calendar
}

func NewHolidayHandler(calendar holiday.Calendar) HolidayHandler {
	return &holidayHandlerImpl{
		calendar: calendar,
	}
}

// ListByYear implements HolidayHandler.
func (h *holidayHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	holidays, err := h.calendar.ListByYear(r.Context(), year)
	if err != nil {
		slog.Error("Failed to list holidays", "error", err, "year", year)
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// CheckDate implements HolidayHandler.
func (h *holidayHandlerImpl) CheckDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	isHoliday, err := h.calendar.IsHoliday(r.Context(), date)
	if err != nil {
		slog.Error("Failed to check holiday", "error", err, "date", date)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"date":    date,
		"holiday": isHoliday,
	})
}
