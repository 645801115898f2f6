// Package logger builds the zap logger shared by search and node modes; logs always go to stderr
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/UnendingLoop/MiniGrep/internal/model"
)

func New(ai *model.AppInit) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(levelFor(ai))

	return zapCfg.Build()
}

// stdout belongs to matches in search mode, so only warnings get through there unless verbose
func levelFor(ai *model.AppInit) zapcore.Level {
	switch {
	case ai.Verbose:
		return zap.DebugLevel
	case ai.Mode == model.ModeNode:
		return zap.InfoLevel
	default:
		return zap.WarnLevel
	}
}
