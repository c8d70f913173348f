package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Worktime WorktimeConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	LogLevel      string
	StorageDriver string // "postgres" or "memory"
	FrontendURL   string
}

// WorktimeConfig holds every threshold the attendance engine evaluates.
// Band boundaries are "HH:MM" local clock strings; the detect bounds are
// plain hours.
//
// The day-shift auto-detection window has changed at least twice in the
// legacy data (03-16, then 06-18), so it is configuration, not a constant.
type WorktimeConfig struct {
	DayDetectFromHour  int // inclusive; a check-in at or after this hour is a day shift
	DayDetectUntilHour int // exclusive

	DayShiftStart  string // regular band start, minutes before this are early work
	DayShiftEnd    string // regular band end, minutes after this are overtime
	DayLateAfter   string // check-in strictly after this is late
	DayLeaveBefore string // check-out before this is an early leave

	NightShiftStart  string
	NightShiftEnd    string
	NightLateAfter   string
	NightLeaveBefore string

	NightBandStart string // statutory night-premium band
	NightBandEnd   string
}

// PayrollConfig holds the statutory pay multipliers applied per category.
// Values are decimal strings so the payroll service can parse them exactly.
type PayrollConfig struct {
	EarlyRate           string
	OvertimeRate        string
	NightRate           string
	OvertimeNightRate   string
	HolidayRate         string
	HolidayOvertimeRate string
	EarlyHolidayRate    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "kmsteel-hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	dayDetectFrom, err := strconv.Atoi(getEnv("SHIFT_DAY_DETECT_FROM", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_DAY_DETECT_FROM: %w", err)
	}
	dayDetectUntil, err := strconv.Atoi(getEnv("SHIFT_DAY_DETECT_UNTIL", "18"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_DAY_DETECT_UNTIL: %w", err)
	}

	config.Worktime = WorktimeConfig{
		DayDetectFromHour:  dayDetectFrom,
		DayDetectUntilHour: dayDetectUntil,

		DayShiftStart:  getEnv("DAY_SHIFT_START", "08:30"),
		DayShiftEnd:    getEnv("DAY_SHIFT_END", "17:30"),
		DayLateAfter:   getEnv("DAY_LATE_AFTER", "08:30"),
		DayLeaveBefore: getEnv("DAY_LEAVE_BEFORE", "17:20"),

		NightShiftStart:  getEnv("NIGHT_SHIFT_START", "19:00"),
		NightShiftEnd:    getEnv("NIGHT_SHIFT_END", "04:00"),
		NightLateAfter:   getEnv("NIGHT_LATE_AFTER", "19:00"),
		NightLeaveBefore: getEnv("NIGHT_LEAVE_BEFORE", "03:50"),

		NightBandStart: getEnv("NIGHT_BAND_START", "22:00"),
		NightBandEnd:   getEnv("NIGHT_BAND_END", "06:00"),
	}

	config.Payroll = PayrollConfig{
		EarlyRate:           getEnv("PAY_RATE_EARLY", "1.5"),
		OvertimeRate:        getEnv("PAY_RATE_OVERTIME", "1.5"),
		NightRate:           getEnv("PAY_RATE_NIGHT", "1.5"),
		OvertimeNightRate:   getEnv("PAY_RATE_OVERTIME_NIGHT", "2.0"),
		HolidayRate:         getEnv("PAY_RATE_HOLIDAY", "1.5"),
		HolidayOvertimeRate: getEnv("PAY_RATE_HOLIDAY_OVERTIME", "2.0"),
		EarlyHolidayRate:    getEnv("PAY_RATE_EARLY_HOLIDAY", "1.5"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.StorageDriver != "postgres" && c.App.StorageDriver != "memory" {
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.App.StorageDriver)
	}
	if c.App.StorageDriver == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Worktime.DayDetectFromHour < 0 || c.Worktime.DayDetectFromHour > 23 {
		return fmt.Errorf("SHIFT_DAY_DETECT_FROM must be an hour between 0 and 23")
	}
	if c.Worktime.DayDetectUntilHour < 1 || c.Worktime.DayDetectUntilHour > 24 {
		return fmt.Errorf("SHIFT_DAY_DETECT_UNTIL must be an hour between 1 and 24")
	}
	if c.Worktime.DayDetectFromHour >= c.Worktime.DayDetectUntilHour {
		return fmt.Errorf("SHIFT_DAY_DETECT_FROM must be before SHIFT_DAY_DETECT_UNTIL")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
