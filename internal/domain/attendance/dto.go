package attendance

import (
	"errors"
	"fmt"

	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
	"github.com/kmsteel/hr-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type UpsertRecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	ShiftTag   string  `json:"shift_tag"`
	RecordType string  `json:"record_type"`
	Note       *string `json:"note"`
}

func (r *UpsertRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	// Empty clocks are legal: absences and open shifts have no times.
	if r.CheckIn != "" && !validator.IsValidClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be HH:MM",
		})
	}
	if r.CheckOut != "" && !validator.IsValidClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be HH:MM",
		})
	}

	switch ShiftTag(r.ShiftTag) {
	case ShiftTagNone, ShiftTagDay, ShiftTagNight:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "shift_tag",
			Message: "shift_tag must be day, night or empty",
		})
	}

	switch RecordType(r.RecordType) {
	case RecordTypeNormal, RecordTypeOuting, RecordTypeEarlyLeave:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be outing, early_leave or empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkUpsertRequest carries a whole edited sheet in one save: the batch
// is applied atomically.
type BulkUpsertRequest struct {
	Records []UpsertRecordRequest `json:"records"`
}

func (r *BulkUpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "records must not be empty",
		})
	}

	for i := range r.Records {
		if err := r.Records[i].Validate(); err != nil {
			var inner validator.ValidationErrors
			if errors.As(err, &inner) {
				for _, e := range inner {
					errs = append(errs, validator.ValidationError{
						Field:   fmt.Sprintf("records[%d].%s", i, e.Field),
						Message: e.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteRecordRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

func (r *DeleteRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in,omitempty"`
	CheckOut   string  `json:"check_out,omitempty"`
	ShiftTag   string  `json:"shift_tag,omitempty"`
	RecordType string  `json:"record_type,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// MonthSheetResponse is one employee's month: the per-day classification
// the calendar view renders plus the aggregate the table footer shows.
type MonthSheetResponse struct {
	EmployeeID   string                `json:"employee_id"`
	EmployeeName string                `json:"employee_name,omitempty"`
	Year         int                   `json:"year"`
	Month        int                   `json:"month"`
	Days         []worktime.DayResult  `json:"days"`
	Stats        worktime.MonthlyStats `json:"stats"`
}

// TeamMonthSheetRow is one employee's aggregate inside a department sheet.
type TeamMonthSheetRow struct {
	EmployeeID   string                `json:"employee_id"`
	EmployeeName string                `json:"employee_name"`
	Position     string                `json:"position,omitempty"`
	Stats        worktime.MonthlyStats `json:"stats"`
}

type TeamMonthSheetResponse struct {
	Department string              `json:"department"`
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	Rows       []TeamMonthSheetRow `json:"rows"`
}
