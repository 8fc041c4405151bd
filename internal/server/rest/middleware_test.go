package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/dmitrijs2005/fitkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_PerKeyBuckets(t *testing.T) {
	l := NewRateLimiter(1, 2)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))

	// other clients have their own bucket
	assert.True(t, l.Allow("2.2.2.2"))

	clock = clock.Add(time.Second)
	assert.True(t, l.Allow("1.1.1.1"))
}

func TestRateLimiter_PrunesIdleVisitors(t *testing.T) {
	l := NewRateLimiter(1, 1)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }

	l.Allow("a")
	l.Allow("b")
	require.Len(t, l.visitors, 2)

	clock = clock.Add(limiterIdleTTL + time.Minute)
	l.Allow("c")
	assert.Len(t, l.visitors, 1)
}

func TestRateLimiter_HandlerReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logging.NewNop()
	r := NewRouter(NewHandler(&fakeUsers{loginToken: "t"}, &fakePhotos{}, log, true), NewAuth([][]byte{testSecret}), NewRateLimiter(0.001, 1), log)

	w := do(r, http.MethodPost, "/api/auth/login", "", loginRequest{Username: "a", Password: "b"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/auth/login", "", loginRequest{Username: "a", Password: "b"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// only /api/auth is limited
	w = do(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_AcceptsPreviousKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	oldKey := []byte("old")
	tok, err := auth.GenerateToken("u-9", common.RoleAdmin, oldKey, time.Hour)
	require.NoError(t, err)

	var got *auth.Claims
	r := gin.New()
	r.GET("/x", NewAuth([][]byte{[]byte("new"), oldKey}).ValidateJWT, func(c *gin.Context) {
		got, _ = ClaimsFrom(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u-9", got.UserID)
	assert.Equal(t, common.RoleAdmin, got.Role)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(logging.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(requestIDHeader))
}
