package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKeyTTL is how long a processed checkout can be replayed before
// its key is reclaimed by the expiry sweeper.
const IdempotencyKeyTTL = 24 * time.Hour

// IdempotencyKey caches the response of a processed request so a client
// retrying with the same Idempotency-Key gets the original outcome instead
// of a second checkout. Keys are scoped per cashier: two cashiers may send
// the same key without colliding.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"size:255;not null;uniqueIndex:idx_idempotency_user_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idempotency_user_key"`
	Endpoint     string    `gorm:"size:255;not null"`
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// NewIdempotencyKey records a completed request's response for later replay.
func NewIdempotencyKey(key string, userID uuid.UUID, endpoint string, code int, body string) *IdempotencyKey {
	return &IdempotencyKey{
		Key:          key,
		UserID:       userID,
		Endpoint:     endpoint,
		ResponseCode: code,
		ResponseBody: body,
		ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
	}
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired reports whether the key is past its replay window.
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
