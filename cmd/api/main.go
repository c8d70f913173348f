package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kmsteel/hr-backend-go/internal/config"
	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/holiday"
	"github.com/kmsteel/hr-backend-go/internal/domain/leave"
	appHTTP "github.com/kmsteel/hr-backend-go/internal/handler/http"
	"github.com/kmsteel/hr-backend-go/internal/pkg/database"
	"github.com/kmsteel/hr-backend-go/internal/repository/memory"
	"github.com/kmsteel/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kmsteel/hr-backend-go/internal/service/attendance"
	payrollService "github.com/kmsteel/hr-backend-go/internal/service/payroll"
	worktimeService "github.com/kmsteel/hr-backend-go/internal/service/worktime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		employeeRepo employee.EmployeeRepository
		recordRepo   attendance.RecordRepository
		leaveRepo    leave.RequestRepository
		holidayCal   holiday.Calendar
	)

	switch cfg.App.StorageDriver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		employeeRepo = postgresql.NewEmployeeRepository(db)
		recordRepo = postgresql.NewAttendanceRepository(db)
		leaveRepo = postgresql.NewLeaveRepository(db)
		holidayCal = postgresql.NewHolidayRepository(db)
	case "memory":
		employeeRepo = memory.NewEmployeeRepository()
		recordRepo = memory.NewAttendanceRepository()
		leaveRepo = memory.NewLeaveRepository()
		holidayCal = memory.NewHolidayCalendar()
	default:
		log.Fatal("Unsupported storage driver: ", cfg.App.StorageDriver)
	}

	engine, err := worktimeService.NewEngine(employeeRepo, recordRepo, leaveRepo, holidayCal, cfg.Worktime)
	if err != nil {
		log.Fatal("Failed to initialize worktime engine: ", err)
	}

	attendanceSvc := attendanceService.NewService(recordRepo, employeeRepo, engine)
	payrollSvc, err := payrollService.NewService(employeeRepo, engine, cfg.Payroll)
	if err != nil {
		log.Fatal("Failed to initialize payroll service: ", err)
	}

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayCal)

	router := appHTTP.NewRouter(cfg, attendanceHandler, payrollHandler, holidayHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
