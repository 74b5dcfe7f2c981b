package worker

import (
	"context"
)

// Worker - фоновый потребитель событий
type Worker interface {
	// Start блокирует до остановки воркера или отмены ctx
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться. Повторный вызов безопасен.
	Stop() error

	Name() string
}
