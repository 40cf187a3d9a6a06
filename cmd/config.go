package cmd

import (
	"fmt"
	"strconv"
	"time"
)

const defaultLockTimeout = 3 * time.Second

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	LockTimeoutMs string
}

// ConnectionString builds the PostgreSQL DSN.
func (c Config) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// LockTimeout returns the per-transaction lock_timeout, falling back to the
// default when the variable is unset or malformed.
func (c Config) LockTimeout() time.Duration {
	if c.LockTimeoutMs == "" {
		return defaultLockTimeout
	}
	ms, err := strconv.Atoi(c.LockTimeoutMs)
	if err != nil || ms <= 0 {
		return defaultLockTimeout
	}
	return time.Duration(ms) * time.Millisecond
}
