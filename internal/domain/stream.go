package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamAssetsChanged = "stream:assets:changed"
)

// AssetsChangedEvent — список активов у источника изменился
type AssetsChangedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Source      string    `json:"source"`
	Fingerprint string    `json:"fingerprint"`
	Previous    string    `json:"previous,omitempty"`
	AssetCount  int       `json:"asset_count"`
	DetectedAt  time.Time `json:"detected_at"`
}

// IsInitial проверяет, что событие порождено первым опросом источника
func (e *AssetsChangedEvent) IsInitial() bool {
	return e.Previous == ""
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
