package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATA_PATH", "testdata/turismo.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != ":8080" {
		t.Errorf("Port = %q, want :8080", cfg.Port)
	}
	if cfg.DataTable != "turismo_nacional" {
		t.Errorf("DataTable = %q, want turismo_nacional", cfg.DataTable)
	}
	if cfg.MapRadiusDivisor != 500 || cfg.MapOpacity != 0.7 || cfg.MapZoom != 5 {
		t.Errorf("map defaults = %g/%g/%d, want 500/0.7/5", cfg.MapRadiusDivisor, cfg.MapOpacity, cfg.MapZoom)
	}
	if want := []string{"green", "yellow", "red"}; !reflect.DeepEqual(cfg.MapColors, want) {
		t.Errorf("MapColors = %v, want %v", cfg.MapColors, want)
	}
	if len(cfg.DashboardColors) != 9 {
		t.Errorf("DashboardColors has %d stops, want 9", len(cfg.DashboardColors))
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAP_RADIUS_DIVISOR", "250")
	t.Setenv("MAP_RADIUS_MAX", "40")
	t.Setenv("MAP_COLORS", " #00ff00 , #ff0000 ")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("MAP_ZOOM", "siete")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MapRadiusDivisor != 250 || cfg.MapRadiusMax != 40 {
		t.Errorf("radius = %g/%g, want 250/40", cfg.MapRadiusDivisor, cfg.MapRadiusMax)
	}
	if want := []string{"#00ff00", "#ff0000"}; !reflect.DeepEqual(cfg.MapColors, want) {
		t.Errorf("MapColors = %v, want %v", cfg.MapColors, want)
	}
	if !cfg.TracingEnabled {
		t.Error("TracingEnabled = false, want true")
	}
	if cfg.MapZoom != 5 {
		t.Errorf("MapZoom = %d, want default 5 for an unparsable value", cfg.MapZoom)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero divisor", map[string]string{"MAP_RADIUS_DIVISOR": "0"}},
		{"opacity above one", map[string]string{"MAP_OPACITY": "1.5"}},
		{"single color", map[string]string{"MAP_COLORS": "red"}},
		{"max below min", map[string]string{"MAP_RADIUS_MIN": "10", "MAP_RADIUS_MAX": "5"}},
		{"bad gin mode", map[string]string{"GIN_MODE": "loud"}},
		{"empty data path", map[string]string{"DATA_PATH": ""}},
		{"latitude out of range", map[string]string{"MAP_CENTER_LAT": "100"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}
