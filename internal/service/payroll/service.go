package payroll

import (
	"context"
	"fmt"

	"github.com/kmsteel/hr-backend-go/internal/config"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/payroll"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
	"github.com/shopspring/decimal"
)

// rates are the per-category pay multipliers. Regular hours are always
// paid at 1.0; the rest come from configuration with statutory defaults.
type rates struct {
	early           decimal.Decimal
	overtime        decimal.Decimal
	night           decimal.Decimal
	overtimeNight   decimal.Decimal
	holiday         decimal.Decimal
	holidayOvertime decimal.Decimal
	earlyHoliday    decimal.Decimal
}

type ServiceImpl struct {
	employees employee.EmployeeRepository
	engine    worktime.Service
	rates     rates
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	engine worktime.Service,
	cfg config.PayrollConfig,
) (payroll.Service, error) {
	r, err := parseRates(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid payroll configuration: %w", err)
	}

	return &ServiceImpl{
		employees: employeeRepo,
		engine:    engine,
		rates:     r,
	}, nil
}

func parseRates(cfg config.PayrollConfig) (rates, error) {
	var r rates
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"PAY_RATE_EARLY", cfg.EarlyRate, &r.early},
		{"PAY_RATE_OVERTIME", cfg.OvertimeRate, &r.overtime},
		{"PAY_RATE_NIGHT", cfg.NightRate, &r.night},
		{"PAY_RATE_OVERTIME_NIGHT", cfg.OvertimeNightRate, &r.overtimeNight},
		{"PAY_RATE_HOLIDAY", cfg.HolidayRate, &r.holiday},
		{"PAY_RATE_HOLIDAY_OVERTIME", cfg.HolidayOvertimeRate, &r.holidayOvertime},
		{"PAY_RATE_EARLY_HOLIDAY", cfg.EarlyHolidayRate, &r.earlyHoliday},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return rates{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = d
	}
	return r, nil
}

var sixty = decimal.NewFromInt(60)

// MonthlySummary implements payroll.Service.
func (s *ServiceImpl) MonthlySummary(ctx context.Context, req payroll.MonthlySummaryRequest) (payroll.MonthlySummary, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlySummary{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if emp.PayType != employee.PayTypeHourly {
		return payroll.MonthlySummary{}, payroll.ErrNotHourlyPaid
	}
	if emp.HourlyRate == nil {
		return payroll.MonthlySummary{}, payroll.ErrHourlyRateMissing
	}
	rate := *emp.HourlyRate

	stats, err := s.engine.MonthlyStats(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return payroll.MonthlySummary{}, fmt.Errorf("failed to compute monthly stats: %w", err)
	}

	one := decimal.NewFromInt(1)
	lines := []struct {
		category   string
		minutes    int
		multiplier decimal.Decimal
	}{
		{"regular", stats.Minutes.Regular, one},
		{"early", stats.Minutes.Early, s.rates.early},
		{"overtime", stats.Minutes.Overtime, s.rates.overtime},
		{"night", stats.Minutes.Night, s.rates.night},
		{"overtime_night", stats.Minutes.OvertimeNight, s.rates.overtimeNight},
		{"holiday", stats.Minutes.Holiday, s.rates.holiday},
		{"holiday_overtime", stats.Minutes.HolidayOvertime, s.rates.holidayOvertime},
		{"early_holiday", stats.Minutes.EarlyHoliday, s.rates.earlyHoliday},
	}

	summary := payroll.MonthlySummary{
		EmployeeID:   req.EmployeeID,
		EmployeeName: emp.FullName,
		Year:         req.Year,
		Month:        req.Month,
		HourlyRate:   rate,
		Categories:   make(map[string]payroll.CategoryPay, len(lines)),
	}

	total := decimal.Zero
	totalHours := decimal.Zero
	for _, line := range lines {
		if line.minutes == 0 {
			continue
		}
		hours := decimal.NewFromInt(int64(line.minutes)).Div(sixty)
		amount := rate.Mul(line.multiplier).Mul(hours).Round(0)
		summary.Categories[line.category] = payroll.CategoryPay{
			Hours:      hours,
			Multiplier: line.multiplier,
			Amount:     amount,
		}
		totalHours = totalHours.Add(hours)
		total = total.Add(amount)
	}

	summary.TotalHours = totalHours
	summary.TotalPay = total
	return summary, nil
}
