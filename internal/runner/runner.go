// Package runner loads the target file, runs the matcher selected by config and prints matching lines
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"go.uber.org/zap"
)

var ErrWriteOutput = errors.New("failed to write output")

type Runner struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run prints every matching line to out, one per line, in file order.
// Nothing is written if the file can't be read; zero matches is not an error.
func (r *Runner) Run(cfg *model.RunConfig, out io.Writer) error {
	content, err := reader.ReadFile(cfg.FilePath)
	if err != nil {
		return err
	}

	search := matcher.Select(cfg.CaseSensitive)

	w := bufio.NewWriter(out)
	found := 0
	for line := range search(cfg.Query, content) {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		found++
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	r.logger.Debug("search finished",
		zap.String("file", cfg.FilePath),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
		zap.Int("matches", found),
	)
	return nil
}
