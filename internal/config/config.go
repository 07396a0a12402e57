// Package config loads pathviz settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment key.
const Prefix = "PATHVIZ_"

// ErrInvalid wraps every validation and parse failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Rows            int     // grid rows
	Cols            int     // grid columns
	RevealThreshold float64 // speed units per revealed cell
	MaxCoverage     int     // upper bound of random obstacle coverage, percent
	Seed            int64   // random seed; 0 seeds from the clock
	LogLevel        string  // logrus level name

	WindowWidth  int     // desktop window size in pixels
	WindowHeight int     //
	GridWidth    float64 // grid area in pixels
	GridHeight   float64 //
	GridGap      float64 // pixels between tiles
	TPS          int     // ticks per second

	HTTPAddr    string // listen address of the search service
	GinMode     string // release, debug or test
	MaxAPICells int    // largest grid the search service accepts
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:            10,
		Cols:            20,
		RevealThreshold: 2,
		MaxCoverage:     50,
		Seed:            0,
		LogLevel:        "info",
		WindowWidth:     1920,
		WindowHeight:    1080,
		GridWidth:       1600,
		GridHeight:      800,
		GridGap:         3,
		TPS:             144,
		HTTPAddr:        ":8080",
		GinMode:         "release",
		MaxAPICells:     10000,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then builds a Config from PATHVIZ_* variables over
// Default. Missing files are skipped; variables already set in the
// environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	d := Default()
	l := loader{}
	cfg := Config{
		Rows:            l.getInt("ROWS", d.Rows),
		Cols:            l.getInt("COLS", d.Cols),
		RevealThreshold: l.getFloat("REVEAL_THRESHOLD", d.RevealThreshold),
		MaxCoverage:     l.getInt("MAX_COVERAGE", d.MaxCoverage),
		Seed:            int64(l.getInt("SEED", int(d.Seed))),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", d.LogLevel),
		WindowWidth:     l.getInt("WINDOW_WIDTH", d.WindowWidth),
		WindowHeight:    l.getInt("WINDOW_HEIGHT", d.WindowHeight),
		GridWidth:       l.getFloat("GRID_WIDTH", d.GridWidth),
		GridHeight:      l.getFloat("GRID_HEIGHT", d.GridHeight),
		GridGap:         l.getFloat("GRID_GAP", d.GridGap),
		TPS:             l.getInt("TPS", d.TPS),
		HTTPAddr:        getEnvWithDefault("HTTP_ADDR", d.HTTPAddr),
		GinMode:         getEnvWithDefault("GIN_MODE", d.GinMode),
		MaxAPICells:     l.getInt("MAX_API_CELLS", d.MaxAPICells),
	}
	if l.err != nil {
		return Config{}, l.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges the rest of the program relies on.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0 || c.Rows*c.Cols < 2:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalid, c.Rows, c.Cols)
	case !(c.RevealThreshold > 0):
		return fmt.Errorf("%w: reveal threshold %v", ErrInvalid, c.RevealThreshold)
	case c.MaxCoverage < 1 || c.MaxCoverage > 100:
		return fmt.Errorf("%w: max coverage %d", ErrInvalid, c.MaxCoverage)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	case c.GridWidth <= 0 || c.GridHeight <= 0 || c.GridGap < 0:
		return fmt.Errorf("%w: grid area %vx%v gap %v", ErrInvalid, c.GridWidth, c.GridHeight, c.GridGap)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.MaxAPICells < 2:
		return fmt.Errorf("%w: max api cells %d", ErrInvalid, c.MaxAPICells)
	}
	return nil
}

// loader collects the first parse error so Load can report it once.
type loader struct{ err error }

func (l *loader) getInt(key string, def int) int {
	s, ok := os.LookupEnv(Prefix + key)
	if !ok || l.err != nil {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		l.err = fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalid, Prefix, key, err)
		return def
	}
	return v
}

func (l *loader) getFloat(key string, def float64) float64 {
	s, ok := os.LookupEnv(Prefix + key)
	if !ok || l.err != nil {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		l.err = fmt.Errorf("%w: %s%s must be a number: %v", ErrInvalid, Prefix, key, err)
		return def
	}
	return v
}

// getEnvWithDefault retrieves Prefix+key or returns defaultValue if unset.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(Prefix + key); exists {
		return value
	}
	return defaultValue
}
