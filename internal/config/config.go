package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string        // dev, prod
	HTTPPort         string        // default 8080
	ShutdownTimeout  time.Duration // graceful shutdown timeout
	ReminderSchedule string        // cron expression for the reminder sweep
	ReminderWindow   time.Duration // how far ahead the sweep looks
	SeedDoctors      int           // doctors fabricated at startup
	SeedPatients     int           // patients fabricated at startup
	SeedSlotsPerDay  int           // slots per doctor per day
	SeedDays         int           // calendar days to fill with slots
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		ShutdownTimeout:  getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "* * * * *"),
		ReminderWindow:   getDuration("REMINDER_WINDOW", time.Hour),
		SeedDoctors:      getInt("SEED_DOCTORS", 10),
		SeedPatients:     getInt("SEED_PATIENTS", 50),
		SeedSlotsPerDay:  getInt("SEED_SLOTS_PER_DAY", 8),
		SeedDays:         getInt("SEED_DAYS", 5),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid int for %s=%q, using default %d\n", key, v, def)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		fmt.Fprintf(os.Stderr, "invalid duration for %s=%q, using default %s\n", key, v, def)
	}
	return def
}
