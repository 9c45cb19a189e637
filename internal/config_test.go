package internal

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if !cfg.Search.FullText {
		t.Error("full-text search should default to enabled")
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("port 0 should fail validation")
	}
	cfg.App.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("port 70000 should fail validation")
	}
}

func TestHTTPConfig_NegativeRateLimit(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.HTTP.CreatePerMinute = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative rate limit should fail validation")
	}
}

func TestSQLiteConfig_PathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SQLite.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty sqlite path should fail validation")
	}
}

func TestHTTPConfig_Address(t *testing.T) {
	cfg := HTTPConfig{Port: 9090}
	if got := cfg.Address(); got != ":9090" {
		t.Errorf("Address() = %q, want :9090", got)
	}
}
