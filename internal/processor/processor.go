// Package processor runs a search task received by the node and sends the result back to transport-layer
package processor

import (
	"context"

	"github.com/UnendingLoop/MiniGrep/internal/matcher"
	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Lines:  getMatchingLines(ctx, task),
	}

	// считаем общий хеш
	result.HashSumm = Hash(result.Lines)

	return &result
}

// отмена контекста обрывает поиск - результат пустой
func getMatchingLines(ctx context.Context, task *model.SearchTask) []string {
	result := []string{}
	search := matcher.Select(task.CaseSensitive)

	for line := range search(task.Query, task.Content) {
		select {
		case <-ctx.Done():
			return []string{}
		default:
			result = append(result, line)
		}
	}
	if ctx.Err() != nil {
		return []string{}
	}

	return result
}

// Hash - digest of output lines as printed, each followed by '\n'
func Hash(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
