//go:build ignore

// Публикует тестовые события применения фильтров в stream:filters:applied,
// чтобы проверить воркер популярных поисков без мобильного клиента.
//
//	go run scripts/test_publish.go -redis localhost:6379 -n 3
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vivemap/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	count := flag.Int("n", 1, "сколько событий опубликовать")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// "Qué hacer el fin de semana" + только бесплатные
	state := domain.FilterState{
		Category:      domain.CategoryEvents,
		Subcategories: []string{"Festivales", "Conciertos"},
		TimeFrame:     domain.TimeFrameWeekend,
		ShowFreeOnly:  true,
	}

	for i := 0; i < *count; i++ {
		event := domain.FilterAppliedEvent{
			SessionID: uuid.New(),
			Action:    domain.ActionApplyPreset,
			State:     state,
			Summary:   domain.FilterSummary(state),
			AppliedAt: time.Now().UTC(),
		}

		data, err := json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}

		id, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: domain.StreamFiltersApplied,
			Values: map[string]interface{}{
				"data": string(data),
			},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish event: %v", err)
		}

		fmt.Printf("Published %s: %s\n", id, event.Summary)
	}
}
