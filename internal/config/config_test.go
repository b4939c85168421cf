package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Monitor.ScanInterval != time.Minute {
		t.Errorf("expected default scan interval 1m, got %s", cfg.Monitor.ScanInterval)
	}
	if cfg.Monitor.TempThreshold != 40 {
		t.Errorf("expected default temp threshold 40, got %.2f", cfg.Monitor.TempThreshold)
	}
	if cfg.Notifier.Workers != 2 {
		t.Errorf("expected default worker count 2, got %d", cfg.Notifier.Workers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SCAN_INTERVAL", "30s")
	t.Setenv("TEMP_THRESHOLD", "35.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Monitor.ScanInterval != 30*time.Second {
		t.Errorf("expected scan interval 30s, got %s", cfg.Monitor.ScanInterval)
	}
	if cfg.Monitor.TempThreshold != 35.5 {
		t.Errorf("expected temp threshold 35.5, got %.2f", cfg.Monitor.TempThreshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"SERVER_PORT":        "70000",
		"LOG_LEVEL":          "verbose",
		"SCAN_INTERVAL":      "500ms",
		"HUMIDITY_THRESHOLD": "150",
		"NOTIFIER_WORKERS":   "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", key, val)
			}
		})
	}
}
