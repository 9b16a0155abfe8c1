package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/wonny/gridsight/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantLevel zerolog.Level
	}{
		{
			name: "debug level",
			cfg: &config.Config{
				Env:       "development",
				LogLevel:  "debug",
				LogFormat: "json",
			},
			wantLevel: zerolog.DebugLevel,
		},
		{
			name: "info level",
			cfg: &config.Config{
				Env:       "production",
				LogLevel:  "info",
				LogFormat: "json",
			},
			wantLevel: zerolog.InfoLevel,
		},
		{
			name: "warn level",
			cfg: &config.Config{
				Env:       "staging",
				LogLevel:  "warn",
				LogFormat: "console",
			},
			wantLevel: zerolog.WarnLevel,
		},
		{
			name: "unknown level falls back to info",
			cfg: &config.Config{
				Env:       "development",
				LogLevel:  "loud",
				LogFormat: "json",
			},
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.cfg)
			if logger == nil {
				t.Fatal("Expected logger to be created")
			}

			// Verify global level is set
			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("Expected global level %v, got %v", tt.wantLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestWithHelpers(t *testing.T) {
	logger := New(&config.Config{Env: "development", LogLevel: "debug", LogFormat: "json"})

	withField := logger.WithField("state", "TX")
	if withField == logger {
		t.Error("WithField should return a new logger")
	}

	withComponent := logger.WithComponent("source.csv")
	if withComponent == nil {
		t.Fatal("WithComponent returned nil")
	}

	withFields := logger.WithFields(map[string]interface{}{
		"rows":    561,
		"skipped": 3,
	})
	if withFields == nil {
		t.Fatal("WithFields returned nil")
	}
}
