package logger_test

import (
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/logger"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name      string
		ai        *model.AppInit
		wantLevel zap.AtomicLevel
	}{
		{name: "Search mode is quiet", ai: &model.AppInit{Mode: model.ModeSearch}, wantLevel: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "Node mode logs requests", ai: &model.AppInit{Mode: model.ModeNode}, wantLevel: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{name: "Verbose wins", ai: &model.AppInit{Mode: model.ModeSearch, Verbose: true}, wantLevel: zap.NewAtomicLevelAt(zap.DebugLevel)},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.ai)
			require.NoError(t, err)
			require.NotNil(t, l)
			require.True(t, l.Core().Enabled(tt.wantLevel.Level()))
			if tt.wantLevel.Level() > zap.DebugLevel {
				require.False(t, l.Core().Enabled(tt.wantLevel.Level()-1))
			}
		})
	}
}
