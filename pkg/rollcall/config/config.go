// Package config loads runtime settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds file locations, server port and report defaults.
type Config struct {
	Port        string
	RosterPath  string
	LedgerPath  string
	LedgerSheet string
	Department  string
	Course      string
	GinMode     string
}

// Load reads a .env file when present, then the environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		RosterPath:  getEnv("ROSTER_PATH", "students.xlsx"),
		LedgerPath:  getEnv("LEDGER_PATH", "Attendance.xlsx"),
		LedgerSheet: getEnv("LEDGER_SHEET", ""),
		Department:  getEnv("DEPARTMENT", "II YEAR - A"),
		Course:      getEnv("COURSE", "B.Tech IT"),
		GinMode:     getEnv("GIN_MODE", "release"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
