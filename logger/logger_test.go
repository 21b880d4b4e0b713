package logger

import (
	"errors"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg)
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg)
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault()
	cl := l.WithComponent("codec")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithFields(t *testing.T) {
	l := NewDefault()
	cl := l.WithFields(map[string]interface{}{"format": "csv"})
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithError(t *testing.T) {
	l := NewDefault()
	cl := l.WithError(errors.New("boom"))
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestLogMethods(t *testing.T) {
	// Level methods must not panic with or without fields.
	l := New(&Config{Level: "trace", Format: "json", Output: "stdout"})
	l.Debug("debug message")
	l.Info("info message", Fields("format", "csv"))
	l.Warn("warn message", map[string]interface{}{"stage": "encode"})
	l.Error("error message", ErrorFields("encode", errors.New("boom")))
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "console"}, false},
		{"trace level", Config{Level: "trace", Format: "json"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "text"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	m := Fields("format", "csv", "records", 42)
	if m["format"] != "csv" || m["records"] != 42 {
		t.Errorf("unexpected map: %v", m)
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %v", m)
	}

	// Non-string keys are skipped.
	m = Fields(42, "value")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("parse", errors.New("boom"))
	if m[FieldOperation] != "parse" {
		t.Errorf("operation = %v", m[FieldOperation])
	}
	if m[FieldError] != "boom" {
		t.Errorf("error = %v", m[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("encode", 1500*time.Millisecond)
	if m[FieldOperation] != "encode" {
		t.Errorf("operation = %v", m[FieldOperation])
	}
	if m[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v", m[FieldDuration])
	}
}

func TestGlobalLogger(t *testing.T) {
	l := NewDefault()
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected the logger just set")
	}
	// Package-level helpers route through the global logger.
	Debug("debug")
	Info("info", Fields("k", "v"))
}
