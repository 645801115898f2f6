package appmode

import (
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/runner"
	"go.uber.org/zap"
)

// RunSearch searches the configured file once and prints matches to out
func RunSearch(ai *model.AppInit, out io.Writer, logger *zap.Logger) error {
	logger.Debug("searching",
		zap.String("query", ai.Run.Query),
		zap.String("file", ai.Run.FilePath),
	)
	return runner.New(logger).Run(ai.Run, out)
}
