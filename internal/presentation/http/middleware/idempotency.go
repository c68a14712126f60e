package middleware

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/entity"
	"github.com/supamart/pos-api/internal/domain/repository"
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response when a request repeats an
// Idempotency-Key header. Checkout clients retry on flaky networks; the
// replay keeps a retried checkout from charging twice. Requests without the
// header pass through untouched.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		userID, _ := c.Get(ContextUserID)
		uid, ok := userID.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		existing, err := repo.GetByKey(c.Request.Context(), key, uid)
		if err == nil && existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotent-Replay", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		// Cache successful outcomes only; a failed checkout may be retried
		// with the same key.
		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			endpoint := c.Request.Method + " " + c.FullPath()
			_ = repo.Create(c.Request.Context(), entity.NewIdempotencyKey(key, uid, endpoint, status, recorder.body.String()))
		}
	}
}
