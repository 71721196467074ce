package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInvalidConfigFlushesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mazeband.log")
	t.Setenv("MAZE_LOG_FILE", logPath)
	t.Setenv("MAZE_PRESET", "huge")
	t.Setenv("HONEYCOMB_MAZEBAND_API_KEY", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	if code := run(); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "invalid configuration") {
		t.Errorf("log file does not record the failure:\n%s", content)
	}
}

func TestSetupOTelEnv(t *testing.T) {
	tests := []struct {
		name         string
		apiKey       string
		wantEndpoint string
		wantHeaders  string
	}{
		{
			name:         "no key leaves exporter unconfigured",
			apiKey:       "",
			wantEndpoint: "",
			wantHeaders:  "",
		},
		{
			name:         "key configures honeycomb",
			apiKey:       "secret",
			wantEndpoint: "https://api.honeycomb.io",
			wantHeaders:  "x-honeycomb-team=secret,x-honeycomb-dataset=mazeband",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HONEYCOMB_MAZEBAND_API_KEY", tt.apiKey)
			t.Setenv("HONEYCOMB_MAZEBAND_DATASET", "")
			t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
			// t.Setenv restores the variable; unset it so the default applies.
			t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
			os.Unsetenv("OTEL_EXPORTER_OTLP_ENDPOINT")

			setupOTelEnv()

			if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != tt.wantEndpoint {
				t.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT = %q, want %q", got, tt.wantEndpoint)
			}
			if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != tt.wantHeaders {
				t.Errorf("OTEL_EXPORTER_OTLP_HEADERS = %q, want %q", got, tt.wantHeaders)
			}
			if got := otlpConfigured(); got != (tt.apiKey != "") {
				t.Errorf("otlpConfigured() = %v, want %v", got, tt.apiKey != "")
			}
		})
	}
}
