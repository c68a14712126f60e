package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/supamart/pos-api/internal/domain/entity"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *fakeIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	ikey, ok := r.keys[key+"/"+userID.String()]
	if !ok {
		return nil, nil
	}
	return ikey, nil
}

func (r *fakeIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key+"/"+ikey.UserID.String()] = ikey
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(_ context.Context) error {
	return nil
}

// newCheckoutRouter wires the middleware in front of a handler that counts
// its invocations, the way the checkout route is wired.
func newCheckoutRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, status int, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/sales",
		func(c *gin.Context) { c.Set(ContextUserID, userID) },
		Idempotency(repo),
		func(c *gin.Context) {
			*calls++
			c.JSON(status, gin.H{"status": "done"})
		},
	)
	return router
}

func postSale(router *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sales", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysCachedResponse(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := newCheckoutRouter(repo, uuid.New(), http.StatusCreated, &calls)

	first := postSale(router, "retry-1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, 1, calls)
	assert.Empty(t, first.Header().Get("X-Idempotent-Replay"))

	second := postSale(router, "retry-1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotent-Replay"))
	// The handler must not run again; a replay never charges twice.
	assert.Equal(t, 1, calls)
}

func TestIdempotencyExpiredKeyProcessesAgain(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	userID := uuid.New()
	calls := 0
	router := newCheckoutRouter(repo, userID, http.StatusCreated, &calls)

	stale := entity.NewIdempotencyKey("retry-1", userID, "POST /sales", http.StatusCreated, `{"status":"stale"}`)
	stale.ExpiresAt = time.Now().Add(-time.Minute)
	assert.NoError(t, repo.Create(context.Background(), stale))

	w := postSale(router, "retry-1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.Empty(t, w.Header().Get("X-Idempotent-Replay"))
}

func TestIdempotencyDoesNotCacheFailures(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := newCheckoutRouter(repo, uuid.New(), http.StatusBadRequest, &calls)

	postSale(router, "retry-1")
	assert.Empty(t, repo.keys)

	// A retry after a failure goes through to the handler.
	postSale(router, "retry-1")
	assert.Equal(t, 2, calls)
}

func TestIdempotencyWithoutKeyPassesThrough(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := newCheckoutRouter(repo, uuid.New(), http.StatusCreated, &calls)

	postSale(router, "")
	postSale(router, "")
	assert.Equal(t, 2, calls)
	assert.Empty(t, repo.keys)
}

func TestIdempotencyScopesKeysPerUser(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	callsA, callsB := 0, 0
	routerA := newCheckoutRouter(repo, uuid.New(), http.StatusCreated, &callsA)
	routerB := newCheckoutRouter(repo, uuid.New(), http.StatusCreated, &callsB)

	postSale(routerA, "retry-1")
	w := postSale(routerB, "retry-1")

	// Another cashier reusing the same key gets a fresh checkout, not a replay.
	assert.Equal(t, 1, callsB)
	assert.Empty(t, w.Header().Get("X-Idempotent-Replay"))
}
