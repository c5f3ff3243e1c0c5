// Package config loads the table size and runtime options from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"toyrobot/internal/table"
)

type Config struct {
	// Table size in cells. Coordinates run from 0 to size-1 on each axis.
	TableWidth  int
	TableHeight int

	LogLevel string // "debug", "info", "warn" or "error"
	Trace    bool
}

// Load reads configuration from environment variables with defaults for a 6x6 table.
// Unparseable values and out-of-range values are reported together.
func Load() (Config, error) {
	var e envReader
	cfg := Config{
		TableWidth:  e.getInt("TOYROBOT_TABLE_WIDTH", 6),
		TableHeight: e.getInt("TOYROBOT_TABLE_HEIGHT", 6),
		LogLevel:    e.getStr("TOYROBOT_LOG_LEVEL", "warn"),
		Trace:       e.getBool("TOYROBOT_TRACE", false),
	}
	if problems := append(e.problems, cfg.problems()...); len(problems) > 0 {
		return Config{}, joinProblems(problems)
	}
	return cfg, nil
}

// Validate checks that the table is non-empty and the log level is known.
func (c Config) Validate() error {
	if problems := c.problems(); len(problems) > 0 {
		return joinProblems(problems)
	}
	return nil
}

func (c Config) problems() []string {
	var problems []string
	if c.TableWidth <= 0 {
		problems = append(problems, fmt.Sprintf("TOYROBOT_TABLE_WIDTH must be positive, got %d", c.TableWidth))
	}
	if c.TableHeight <= 0 {
		problems = append(problems, fmt.Sprintf("TOYROBOT_TABLE_HEIGHT must be positive, got %d", c.TableHeight))
	}
	if _, err := c.Level(); err != nil {
		problems = append(problems, err.Error())
	}
	return problems
}

func joinProblems(problems []string) error {
	return errors.New("config: " + strings.Join(problems, "; "))
}

func (c Config) Bounds() table.Bounds {
	return table.Bounds{MaxX: c.TableWidth - 1, MaxY: c.TableHeight - 1}
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("TOYROBOT_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// envReader reads typed variables and keeps a problem for each value that
// does not parse. The default is used in its place.
type envReader struct {
	problems []string
}

func (e *envReader) getStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func (e *envReader) getInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.problems = append(e.problems, fmt.Sprintf("%s must be a positive integer, got %q", key, v))
		return defaultVal
	}
	return n
}

func (e *envReader) getBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.problems = append(e.problems, fmt.Sprintf("%s must be true or false, got %q", key, v))
		return defaultVal
	}
	return b
}
