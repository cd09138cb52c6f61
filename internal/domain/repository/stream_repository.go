package repository

import (
	"context"
	"time"

	"github.com/asset-map-service/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// ConsumeStream читает сообщения из стрима; block — время ожидания одного XREADGROUP
	ConsumeStream(ctx context.Context, stream, group, consumer string, block time.Duration) (<-chan domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// DestroyConsumerGroup удаляет consumer group вместе с её pending-сообщениями
	DestroyConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
