// Package transport provides a new server-entity(by ginext) for node-mode with handlers to serve endpoints
package transport

import (
	"context"
	"net/http"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
	"go.uber.org/zap"
)

type TaskProcessor interface {
	ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handler struct {
	proc   TaskProcessor
	logger *zap.Logger
}

func NewNodeServer(addr string, proc TaskProcessor, logger *zap.Logger) *http.Server {
	h := handler{proc: proc, logger: logger}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.ReceiveTask)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handler) HealthCheck(ctx *ginext.Context) {
	h.logger.Debug("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handler) ReceiveTask(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}
	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	h.logger.Info("received task",
		zap.String("tid", task.TaskID),
		zap.Bool("case_sensitive", task.CaseSensitive),
		zap.Int("content_bytes", len(task.Content)),
	)

	res := h.proc.ProcessTask(ctx.Request.Context(), &task)
	h.logger.Debug("calculated result", zap.String("tid", res.TaskID), zap.Int("lines", len(res.Lines)))

	ctx.JSON(http.StatusOK, res)
}
