package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(cfg *Config)
		wantField string
	}{
		{
			name:   "defaults are valid",
			modify: func(cfg *Config) {},
		},
		{
			name:      "backend host without scheme",
			modify:    func(cfg *Config) { cfg.Backend.Host = "localhost:11434" },
			wantField: "backend.host",
		},
		{
			name:      "backend host with ftp scheme",
			modify:    func(cfg *Config) { cfg.Backend.Host = "ftp://localhost" },
			wantField: "backend.host",
		},
		{
			name:      "blank default model",
			modify:    func(cfg *Config) { cfg.Backend.DefaultModel = "  " },
			wantField: "backend.default_model",
		},
		{
			name:      "negative idle timeout",
			modify:    func(cfg *Config) { cfg.Backend.StreamIdleTimeout = -1 },
			wantField: "backend.stream_idle_timeout",
		},
		{
			name:      "bad cron schedule",
			modify:    func(cfg *Config) { cfg.Backend.ProbeSchedule = "every now and then" },
			wantField: "backend.probe_schedule",
		},
		{
			name:   "probe disabled",
			modify: func(cfg *Config) { cfg.Backend.ProbeSchedule = "off" },
		},
		{
			name:      "port zero",
			modify:    func(cfg *Config) { cfg.Proxy.Port = 0 },
			wantField: "proxy.port",
		},
		{
			name:      "unknown log level",
			modify:    func(cfg *Config) { cfg.Telemetry.Logging.Level = "verbose" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "metrics path without slash",
			modify:    func(cfg *Config) { cfg.Telemetry.Metrics.Path = "metrics" },
			wantField: "telemetry.metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want ValidationError", err)
			}
			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() fields = %v, want %s", verr.Errors, tt.wantField)
			}
		})
	}
}

func TestValidationError_MultipleErrors(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Proxy.Port = -1
	cfg.Backend.DefaultModel = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "2 errors") {
		t.Errorf("Error() = %q, want mention of 2 errors", err.Error())
	}
}
