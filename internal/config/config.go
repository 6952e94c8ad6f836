// Package config loads application settings from the environment.
//
// # Environment variables
//
// ## Server
//   - PORT: listen address (default: :8080)
//   - GIN_MODE: gin mode, debug or release (default: release)
//   - RATE_LIMIT: export requests allowed per client per window (default: 30)
//   - RATE_WINDOW_SECONDS: rate limit window (default: 60)
//
// ## Dataset
//   - DATA_PATH: .csv, .xlsx or .db/.sqlite file (default: ./data/turismo_colombia.csv)
//   - DATA_SHEET: XLSX sheet (default: first sheet)
//   - DATA_TABLE: SQLite table (default: turismo_nacional)
//
// ## Map
//   - MAP_RADIUS_DIVISOR: visitors per unit of marker radius (default: 500)
//   - MAP_RADIUS_MIN / MAP_RADIUS_MAX: radius clamp, max 0 means unbounded (default: 0 / 0)
//   - MAP_OPACITY: marker fill opacity (default: 0.7)
//   - MAP_COLORS: comma separated color stops, low to high (default: green,yellow,red)
//   - MAP_CENTER_LAT / MAP_CENTER_LON: initial center (default: Bogotá)
//   - MAP_ZOOM: initial zoom (default: 5)
//
// ## Dashboard
//   - DASHBOARD_COLORS: bar color stops (default: 9-step Blues)
//
// ## Tracing
//   - TRACING_ENABLED: export spans over OTLP gRPC (default: false)
//   - TRACING_ENDPOINT: collector address (default: localhost:4317)
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application settings
type Config struct {
	Port    string `validate:"required"`
	GinMode string `validate:"oneof=debug release test"`

	DataPath  string `validate:"required"`
	DataSheet string
	DataTable string `validate:"required"`

	MapRadiusDivisor float64  `validate:"gt=0"`
	MapRadiusMin     float64  `validate:"gte=0"`
	MapRadiusMax     float64  `validate:"gte=0"`
	MapOpacity       float64  `validate:"gte=0,lte=1"`
	MapColors        []string `validate:"min=2,dive,required"`
	MapCenterLat     float64  `validate:"gte=-90,lte=90"`
	MapCenterLon     float64  `validate:"gte=-180,lte=180"`
	MapZoom          int      `validate:"gte=0,lte=20"`

	DashboardColors []string `validate:"min=2,dive,required"`

	RateLimit         int `validate:"gt=0"`
	RateWindowSeconds int `validate:"gt=0"`

	TracingEnabled  bool
	TracingEndpoint string `validate:"required_if=TracingEnabled true"`
}

const defaultDashboardColors = "#f7fbff,#deebf7,#c6dbef,#9ecae1,#6baed6,#4292c6,#2171b5,#08519c,#08306b"

// Load reads a .env file if present, then the environment, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:    getEnv("PORT", ":8080"),
		GinMode: getEnv("GIN_MODE", "release"),

		DataPath:  getEnv("DATA_PATH", "./data/turismo_colombia.csv"),
		DataSheet: getEnv("DATA_SHEET", ""),
		DataTable: getEnv("DATA_TABLE", "turismo_nacional"),

		MapRadiusDivisor: getEnvFloat("MAP_RADIUS_DIVISOR", 500),
		MapRadiusMin:     getEnvFloat("MAP_RADIUS_MIN", 0),
		MapRadiusMax:     getEnvFloat("MAP_RADIUS_MAX", 0),
		MapOpacity:       getEnvFloat("MAP_OPACITY", 0.7),
		MapColors:        getEnvList("MAP_COLORS", "green,yellow,red"),
		MapCenterLat:     getEnvFloat("MAP_CENTER_LAT", 4.6097),
		MapCenterLon:     getEnvFloat("MAP_CENTER_LON", -74.0818),
		MapZoom:          getEnvInt("MAP_ZOOM", 5),

		DashboardColors: getEnvList("DASHBOARD_COLORS", defaultDashboardColors),

		RateLimit:         getEnvInt("RATE_LIMIT", 30),
		RateWindowSeconds: getEnvInt("RATE_WINDOW_SECONDS", 60),

		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and cross-field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.MapRadiusMax > 0 && c.MapRadiusMax < c.MapRadiusMin {
		return fmt.Errorf("invalid configuration: MAP_RADIUS_MAX %g is below MAP_RADIUS_MIN %g", c.MapRadiusMax, c.MapRadiusMin)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("[Config] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
		log.Printf("[Config] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		log.Printf("[Config] Ignoring invalid %s=%q", key, value)
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
