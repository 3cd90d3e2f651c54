package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/scoreboard/internal/config"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "scoreboard-api",
		ServiceVersion:     "test",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		StorageDriver:      config.StorageDriverMemory,
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNewHTTPServer_MemoryStorageServesScoreboard(t *testing.T) {
	srv, closeStore, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() { _ = closeStore() })

	post := httptest.NewRequest(http.MethodPost, "/api/players/score", strings.NewReader(`{"name":"A","score":10}`))
	postRec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(postRec, post)
	if postRec.Code != http.StatusOK {
		t.Fatalf("add score: expected status 200, got %d", postRec.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/players/scores", nil)
	getRec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(getRec, get)
	if got := strings.TrimSpace(getRec.Body.String()); got != `[{"name":"A","score":10}]` {
		t.Fatalf("unexpected scoreboard body: %s", got)
	}
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNewHTTPServer_RejectsUnknownStorageDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"

	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}
