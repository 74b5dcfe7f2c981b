package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vivemap/internal/domain"
	redisRepo "github.com/vivemap/internal/repository/redis"
)

const testStream = "test:stream:filters:applied"

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testStream, redisRepo.KeyPopularSearches)
	t.Cleanup(func() {
		client.Del(context.Background(), testStream, redisRepo.KeyPopularSearches)
		_ = client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))

	groups, err := client.XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "test-group", groups[0].Name)

	// BUSYGROUP is not an error
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-group"))
}

func TestStreamRepository_PublishConsumeAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-consume-group"))

	sessionID := uuid.New()
	state := domain.FilterState{Category: domain.CategoryEvents, Subcategories: []string{"Festivales"}}
	event := &domain.FilterAppliedEvent{
		SessionID: sessionID,
		Action:    domain.ActionToggleSubcategory,
		State:     state,
		Summary:   domain.FilterSummary(state),
		AppliedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.PublishToStream(ctx, testStream, event))

	messages, err := repo.ConsumeBatch(ctx, testStream, "test-consume-group", "c1", 10, time.Second)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	raw, ok := messages[0].Data["data"].(string)
	require.True(t, ok)

	var received domain.FilterAppliedEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &received))
	assert.Equal(t, sessionID, received.SessionID)
	assert.Equal(t, "eventos - Festivales", received.Summary)

	pending, err := client.XPending(ctx, testStream, "test-consume-group").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Count)

	require.NoError(t, repo.AckMessages(ctx, testStream, "test-consume-group", messages[0].ID))

	pending, err = client.XPending(ctx, testStream, "test-consume-group").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_ConsumeBatch_Timeout(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-empty-group"))

	messages, err := repo.ConsumeBatch(ctx, testStream, "test-empty-group", "c1", 10, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestStreamRepository_AckMessages_NoIDs(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())

	assert.NoError(t, repo.AckMessages(context.Background(), testStream, "any"))
}

func TestStreamRepository_ConsumePending(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-pending-group"))
	require.NoError(t, repo.PublishToStream(ctx, testStream, map[string]string{"n": "1"}))
	require.NoError(t, repo.PublishToStream(ctx, testStream, map[string]string{"n": "2"}))

	delivered, err := repo.ConsumeBatch(ctx, testStream, "test-pending-group", "c1", 10, time.Second)
	require.NoError(t, err)
	require.Len(t, delivered, 2)

	// новые сообщения больше не выдаются, а PEL отдаёт их повторно
	fresh, err := repo.ConsumeBatch(ctx, testStream, "test-pending-group", "c1", 10, 100*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, fresh)

	pending, err := repo.ConsumePending(ctx, testStream, "test-pending-group", "c1", 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, delivered[0].ID, pending[0].ID)
	assert.Equal(t, delivered[0].Data, pending[0].Data)

	require.NoError(t, repo.AckMessages(ctx, testStream, "test-pending-group", pending[0].ID))

	pending, err = repo.ConsumePending(ctx, testStream, "test-pending-group", "c1", 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, delivered[1].ID, pending[0].ID)

	other, err := repo.ConsumePending(ctx, testStream, "test-pending-group", "c2", 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStreamRepository_ClaimStale(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, "test-claim-group"))
	require.NoError(t, repo.PublishToStream(ctx, testStream, map[string]string{"n": "1"}))

	delivered, err := repo.ConsumeBatch(ctx, testStream, "test-claim-group", "dead-consumer", 10, time.Second)
	require.NoError(t, err)
	require.Len(t, delivered, 1)

	claimed, err := repo.ClaimStale(ctx, testStream, "test-claim-group", "c2", time.Hour, 10)
	require.NoError(t, err)
	assert.Zero(t, claimed)

	claimed, err = repo.ClaimStale(ctx, testStream, "test-claim-group", "c2", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, claimed)

	pending, err := repo.ConsumePending(ctx, testStream, "test-claim-group", "c2", 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, delivered[0].ID, pending[0].ID)

	left, err := repo.ConsumePending(ctx, testStream, "test-claim-group", "dead-consumer", 10)
	require.NoError(t, err)
	assert.Empty(t, left)
}
