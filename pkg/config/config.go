package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds generator settings loaded from environment variables.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	PrintEvery     int
	BatchSleepMin  time.Duration
	BatchSleepMax  time.Duration
	SimSleepMin    time.Duration
	SimSleepMax    time.Duration
	MetricsAddr    string
}

// New creates a Config by reading environment variables and applying defaults.
func New() *Config {
	c := &Config{}
	c.BaseURL = getenv("API_BASE_URL", "http://localhost:8000/api/leaderboard")
	c.RequestTimeout = getenvMs("REQUEST_TIMEOUT_MS", 5000)
	c.PrintEvery = getenvInt("PRINT_EVERY", 10)
	c.BatchSleepMin = getenvMs("BATCH_SLEEP_MIN_MS", 500)
	c.BatchSleepMax = getenvMs("BATCH_SLEEP_MAX_MS", 1500)
	c.SimSleepMin = getenvMs("SIM_SLEEP_MIN_MS", 500)
	c.SimSleepMax = getenvMs("SIM_SLEEP_MAX_MS", 2000)
	c.MetricsAddr = os.Getenv("METRICS_ADDR")
	return c
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvMs(key string, def int) time.Duration {
	return time.Duration(getenvInt(key, def)) * time.Millisecond
}
