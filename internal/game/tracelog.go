package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// routeTraceLog sends raylib's own log lines through zap. raylib filters by
// its level before calling back, so it is set to match the logger.
func routeTraceLog(logger *zap.Logger) {
	rl.SetTraceLogLevel(traceLevel(logger.Level()))
	rl.SetTraceLogCallback(func(level int, msg string) {
		switch rl.TraceLogLevel(level) {
		case rl.LogTrace, rl.LogDebug:
			logger.Debug(msg)
		case rl.LogInfo:
			logger.Info(msg)
		case rl.LogWarning:
			logger.Warn(msg)
		default:
			logger.Error(msg)
		}
	})
}

func traceLevel(level zapcore.Level) rl.TraceLogLevel {
	switch {
	case level <= zapcore.DebugLevel:
		return rl.LogDebug
	case level == zapcore.InfoLevel:
		return rl.LogInfo
	case level == zapcore.WarnLevel:
		return rl.LogWarning
	default:
		return rl.LogError
	}
}
