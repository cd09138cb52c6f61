//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/asset-map-service/internal/domain"
)

// Публикует событие изменения набора активов, чтобы вручную проверить
// инвалидацию кешей и пересборку сессий в запущенном API.
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	fingerprint := flag.String("fingerprint", "manual", "Fingerprint of the new asset set")
	count := flag.Int("count", 0, "Asset count to report")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.AssetsChangedEvent{
		EventID:     uuid.New(),
		Source:      "manual",
		Fingerprint: *fingerprint,
		Previous:    "unknown",
		AssetCount:  *count,
		DetectedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamAssetsChanged,
		MaxLen: 1000,
		Approx: true,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published %s to %s\n", id, domain.StreamAssetsChanged)
	fmt.Printf("Payload: %s\n", data)
}
