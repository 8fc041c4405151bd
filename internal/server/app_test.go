package server

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fitkeeper/internal/server/config"
	"github.com/dmitrijs2005/fitkeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.SecretKey = "test-secret"
	return c
}

func TestNewApp_RequiresSecretKey(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey = ""

	_, err := NewApp(context.Background(), cfg)
	assert.ErrorIs(t, err, config.ErrMissingSecretKey)
	assert.ErrorContains(t, err, "config error")
}

func TestNewApp_InMemoryWhenNoDSN(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	_, ok := app.repomanager.(*repomanager.MemoryRepositoryManager)
	assert.True(t, ok)
	assert.Nil(t, app.db)
}

func TestNewApp_DBErrors(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })

	cfg := testConfig()
	cfg.DatabaseDSN = "postgres://example"

	openDB = func(string) (*sql.DB, error) { return nil, errors.New("bad dsn") }
	_, err := NewApp(context.Background(), cfg)
	assert.ErrorContains(t, err, "db open error")

	openDB = func(string) (*sql.DB, error) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		if err != nil {
			return nil, err
		}
		mock.ExpectPing().WillReturnError(errors.New("refused"))
		return db, nil
	}
	_, err = NewApp(context.Background(), cfg)
	assert.ErrorContains(t, err, "db ping error")
}

func TestRouter_ServesHealthAndPlaceholders(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	r := app.router()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/forum", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "forum endpoint not implemented yet")
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
