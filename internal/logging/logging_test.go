package logging

import (
	"orbitdemo/internal/config"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		cfg  config.LoggingConfig
		want zapcore.Level
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel},
		{config.LoggingConfig{Level: "nonsense", Format: "console"}, zapcore.InfoLevel},
		{config.LoggingConfig{}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		logger, err := New(tt.cfg)
		if err != nil {
			t.Fatalf("New(%+v): %v", tt.cfg, err)
		}
		if got := logger.Level(); got != tt.want {
			t.Errorf("New(%+v).Level() = %v, want %v", tt.cfg, got, tt.want)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("New(%+v) should not log debug", tt.cfg)
		}
	}
}
