// Package appmode provides 2 methods to work in preliminarily defined mode: 'search' and 'node'
package appmode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// RunNode serves search tasks over HTTP until ctx is cancelled.
// A listen failure calls stop and is returned.
func RunNode(ctx context.Context, stop context.CancelFunc, ai *model.AppInit, logger *zap.Logger) error {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(ai.Address, processor.Processor{}, logger)

	// запуск сервера
	errCh := make(chan error, 1)
	go func() {
		logger.Info("node running", zap.String("address", srv.Addr))
		err := srv.ListenAndServe()
		switch {
		case err == nil, errors.Is(err, http.ErrServerClosed):
			logger.Info("server gracefully stopping...")
		default:
			logger.Error("server stopped", zap.Error(err))
			errCh <- err
			stop()
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("failed to shutdown node correctly", zap.String("address", ai.Address), zap.Error(err))
	} else {
		logger.Info("node server is closed", zap.String("address", ai.Address))
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
