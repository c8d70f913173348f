package worktime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

func TestResolveShift(t *testing.T) {
	hourlyInspector := &employee.Employee{
		PayType:       employee.PayTypeHourly,
		SubDepartment: "검사",
		WorkType:      employee.WorkTypeRotating,
	}
	salariedInspector := &employee.Employee{
		PayType:       employee.PayTypeSalaried,
		SubDepartment: "검사",
		WorkType:      employee.WorkTypeNight,
	}
	hourlyOffice := &employee.Employee{
		PayType:       employee.PayTypeHourly,
		SubDepartment: "총무",
		WorkType:      employee.WorkTypeDay,
	}
	rotating := &employee.Employee{
		PayType:  employee.PayTypeSalaried,
		WorkType: employee.WorkTypeRotating,
	}

	cases := []struct {
		name string
		emp  *employee.Employee
		rec  *attendance.Record
		want worktime.Shift
	}{
		{
			name: "explicit day tag wins over night work type",
			emp:  salariedInspector,
			rec:  &attendance.Record{ShiftTag: attendance.ShiftTagDay, CheckIn: "19:30"},
			want: worktime.ShiftDay,
		},
		{
			name: "explicit night tag wins over daytime check-in",
			emp:  hourlyInspector,
			rec:  &attendance.Record{ShiftTag: attendance.ShiftTagNight, CheckIn: "08:00"},
			want: worktime.ShiftNight,
		},
		{
			name: "eligible worker with morning check-in detects day",
			emp:  hourlyInspector,
			rec:  &attendance.Record{CheckIn: "07:00"},
			want: worktime.ShiftDay,
		},
		{
			name: "eligible worker with evening check-in detects night",
			emp:  hourlyInspector,
			rec:  &attendance.Record{CheckIn: "19:30"},
			want: worktime.ShiftNight,
		},
		{
			name: "eligible worker checking in before the window detects night",
			emp:  hourlyInspector,
			rec:  &attendance.Record{CheckIn: "05:00"},
			want: worktime.ShiftNight,
		},
		{
			name: "window upper bound is exclusive",
			emp:  hourlyInspector,
			rec:  &attendance.Record{CheckIn: "18:00"},
			want: worktime.ShiftNight,
		},
		{
			name: "salaried worker is never auto-detected",
			emp:  salariedInspector,
			rec:  &attendance.Record{CheckIn: "07:00"},
			want: worktime.ShiftNight,
		},
		{
			name: "hourly worker outside production sub-departments follows work type",
			emp:  hourlyOffice,
			rec:  &attendance.Record{CheckIn: "19:30"},
			want: worktime.ShiftDay,
		},
		{
			name: "eligible worker with malformed check-in falls back to work type",
			emp:  hourlyInspector,
			rec:  &attendance.Record{CheckIn: "late"},
			want: worktime.ShiftDay,
		},
		{
			name: "eligible worker without a record falls back to work type",
			emp:  hourlyInspector,
			rec:  nil,
			want: worktime.ShiftDay,
		},
		{
			name: "declared night work type",
			emp:  &employee.Employee{WorkType: employee.WorkTypeNight},
			rec:  nil,
			want: worktime.ShiftNight,
		},
		{
			name: "rotating without clues defaults to day",
			emp:  rotating,
			rec:  &attendance.Record{},
			want: worktime.ShiftDay,
		},
		{
			name: "unknown employee defaults to day",
			emp:  nil,
			rec:  &attendance.Record{CheckIn: "20:00"},
			want: worktime.ShiftDay,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveShift(c.emp, c.rec, 6, 18)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestResolveShift_ConfigurableWindow(t *testing.T) {
	emp := &employee.Employee{
		PayType:       employee.PayTypeHourly,
		SubDepartment: "인발",
		WorkType:      employee.WorkTypeRotating,
	}
	rec := &attendance.Record{CheckIn: "04:00"}

	// 04:00 is night under the 06-18 window but day under 03-16.
	assert.Equal(t, worktime.ShiftNight, ResolveShift(emp, rec, 6, 18))
	assert.Equal(t, worktime.ShiftDay, ResolveShift(emp, rec, 3, 16))
}
