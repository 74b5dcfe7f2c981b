package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	"github.com/vivemap/internal/domain/repository"
	"github.com/vivemap/internal/usecase"
	"github.com/vivemap/internal/worker"
)

const (
	defaultBatchSize = 20
	readBlock        = 2 * time.Second        // ожидание новых сообщений в XREADGROUP
	errorPause       = time.Second            // пауза после ошибки чтения
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	retryBackoff     = 200 * time.Millisecond // база backoff при ошибке записи статистики
	staleClaimIdle   = time.Minute            // сообщения упавших consumer старше этого забираются при старте
)

// Options - параметры PopularSearchWorker
type Options struct {
	ConsumerGroup string
	BatchSize     int
	MaxRetries    int
}

// PopularSearchWorker читает stream:filters:applied и копит счётчики популярных поисков
type PopularSearchWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	searchUC   *usecase.SearchUseCase
	batchSize  int64
	maxRetries int
}

// NewPopularSearchWorker создает новый PopularSearchWorker
func NewPopularSearchWorker(
	streamRepo repository.StreamRepository,
	searchUC *usecase.SearchUseCase,
	opts Options,
	logger *zap.Logger,
) *PopularSearchWorker {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	return &PopularSearchWorker{
		BaseWorker: worker.NewBaseWorker("popular-searches", opts.ConsumerGroup, logger),
		streamRepo: streamRepo,
		searchUC:   searchUC,
		batchSize:  int64(opts.BatchSize),
		maxRetries: opts.MaxRetries,
	}
}

// Start создаёт consumer group и обрабатывает пачки до остановки
func (w *PopularSearchWorker) Start(parent context.Context) error {
	ctx, cancel := w.RunContext(parent)
	defer cancel()

	logger := w.Logger()
	logger.Info("Starting PopularSearchWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int64("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFiltersApplied, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// предыдущий процесс мог упасть, не подтвердив сообщения: имя consumer у него было другим
	if _, err := w.streamRepo.ClaimStale(
		ctx, domain.StreamFiltersApplied, w.ConsumerGroup(), w.ConsumerName(), staleClaimIdle, w.batchSize,
	); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Failed to claim stale messages", zap.Error(err))
	}

	pending := true
	for {
		if w.IsStopped() {
			logger.Info("Worker stopped")
			return nil
		}
		if parent.Err() != nil {
			logger.Info("Context cancelled")
			return parent.Err()
		}

		if pending {
			processed, err := w.ProcessPending(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue
				}
				logger.Error("Failed to process pending messages", zap.Error(err))
				w.Sleep(ctx, errorPause)
				continue
			}
			if processed == 0 {
				pending = false
			}
			continue
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			logger.Error("Failed to process batch", zap.Error(err))
			// неподтверждённые сообщения остались в PEL, перечитываем их до новых
			pending = true
			w.Sleep(ctx, errorPause)
			continue
		}
		if processed == 0 {
			w.Sleep(ctx, emptyQueueSleep)
		}
	}
}

// ProcessBatch читает одну пачку новых сообщений, засчитывает события и подтверждает сообщения.
// Возвращает число прочитанных сообщений.
func (w *PopularSearchWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamFiltersApplied,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
		readBlock,
	)
	if err != nil {
		return 0, err
	}
	return w.handle(ctx, messages)
}

// ProcessPending повторно обрабатывает пачку сообщений из PEL этого consumer.
// Ноль означает, что PEL пуст.
func (w *PopularSearchWorker) ProcessPending(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumePending(
		ctx,
		domain.StreamFiltersApplied,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.batchSize,
	)
	if err != nil {
		return 0, err
	}
	if len(messages) > 0 {
		w.Logger().Info("Reprocessing pending messages", zap.Int("count", len(messages)))
	}
	return w.handle(ctx, messages)
}

// handle - битые сообщения подтверждаются сразу, чтобы не застревали в PEL;
// остальные только после успешной записи статистики.
func (w *PopularSearchWorker) handle(ctx context.Context, messages []domain.StreamMessage) (int, error) {
	logger := w.Logger()
	if len(messages) == 0 {
		return 0, nil
	}

	events := make([]domain.FilterAppliedEvent, 0, len(messages))
	valid := make([]string, 0, len(messages))
	broken := make([]string, 0)

	for _, msg := range messages {
		event, err := usecase.DecodeFilterEvent(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			broken = append(broken, msg.ID)
			continue
		}
		events = append(events, *event)
		valid = append(valid, msg.ID)
	}

	if len(broken) > 0 {
		if err := w.streamRepo.AckMessages(ctx, domain.StreamFiltersApplied, w.ConsumerGroup(), broken...); err != nil {
			logger.Error("Failed to ack broken messages", zap.Error(err))
		}
	}
	if len(events) == 0 {
		return len(messages), nil
	}

	counted, err := w.recordWithRetry(ctx, events)
	if err != nil {
		// без ACK: сообщения останутся в PEL и будут перечитаны ProcessPending
		return len(messages), fmt.Errorf("failed to record popular searches: %w", err)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamFiltersApplied, w.ConsumerGroup(), valid...); err != nil {
		return len(messages), fmt.Errorf("failed to ack messages: %w", err)
	}

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("counted", counted),
		zap.Int("broken", len(broken)))

	return len(messages), nil
}

func (w *PopularSearchWorker) recordWithRetry(ctx context.Context, events []domain.FilterAppliedEvent) (int, error) {
	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			if !w.Sleep(ctx, retryBackoff*time.Duration(attempt)) {
				return 0, lastErr
			}
		}

		counted, err := w.searchUC.RecordApplied(ctx, events)
		if err == nil {
			return counted, nil
		}
		lastErr = err
		w.Logger().Warn("Failed to record popular searches",
			zap.Int("attempt", attempt+1),
			zap.Error(err))
	}
	return 0, lastErr
}
