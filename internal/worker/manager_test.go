package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started atomic.Int32
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{BaseWorker: NewBaseWorker(name, "test-group", zap.NewNop())}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Add(1)
	select {
	case <-w.StopChan():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stuckWorker игнорирует Stop
type stuckWorker struct {
	*BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewWorkerManager(zap.NewNop(), time.Second)
	a, b := newBlockingWorker("a"), newBlockingWorker("b")
	require.NoError(t, m.Register(a))
	require.NoError(t, m.Register(b))

	require.NoError(t, m.Start(context.Background()))
	assert.Eventually(t, func() bool {
		return a.started.Load() == 1 && b.started.Load() == 1
	}, time.Second, 10*time.Millisecond)

	assert.Error(t, m.Start(context.Background()))
	assert.Error(t, m.Register(newBlockingWorker("late")))

	require.NoError(t, m.Stop())
	assert.True(t, a.IsStopped())
	assert.True(t, b.IsStopped())

	// повторная остановка безопасна
	require.NoError(t, m.Stop())
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop(), 0)
	assert.Error(t, m.Start(context.Background()))
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	stuck := &stuckWorker{BaseWorker: NewBaseWorker("stuck", "g", zap.NewNop()), release: make(chan struct{})}
	m := NewWorkerManager(zap.NewNop(), 50*time.Millisecond)
	require.NoError(t, m.Register(stuck))
	require.NoError(t, m.Start(context.Background()))

	assert.Error(t, m.Stop())

	close(stuck.release)
	m.wg.Wait()
	// горутина ожидания из Stop завершается после wg.Wait
	time.Sleep(10 * time.Millisecond)
}

func TestBaseWorker_RunContextAndSleep(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewBaseWorker("ctx", "g", zap.NewNop())
	assert.Equal(t, "g", w.ConsumerGroup())
	assert.NotEmpty(t, w.ConsumerName())

	ctx, cancel := w.RunContext(context.Background())
	defer cancel()

	assert.True(t, w.Sleep(ctx, time.Millisecond))

	require.NoError(t, w.Stop())
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled by Stop")
	}
	assert.False(t, w.Sleep(context.Background(), time.Hour))
}
