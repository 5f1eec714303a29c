package health_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/binhbb2204/Translation-Hub/internal/events"
	"github.com/binhbb2204/Translation-Hub/internal/health"
	"github.com/binhbb2204/Translation-Hub/pkg/database"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/gin-gonic/gin"
)

func setupHealthTest(t *testing.T, broker *events.Broker) (*gin.Engine, func()) {
	tmpDir := t.TempDir()
	dbPath := tmpDir + "/test.db"
	logger.Init(logger.INFO, false, nil)
	if err := database.InitDatabase(dbPath); err != nil {
		t.Fatalf("init db: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	health.NewHandler(broker).RegisterRoutes(router)

	cleanup := func() {
		database.Close()
	}
	return router, cleanup
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHealthz_AlwaysReturnsOK(t *testing.T) {
	router, cleanup := setupHealthTest(t, nil)
	defer cleanup()

	for _, path := range []string{"/health", "/healthz"} {
		resp := get(router, path)
		if resp.Code != 200 {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
		if body := resp.Body.String(); body != `{"status":"alive"}` {
			t.Fatalf("%s: unexpected body: %s", path, body)
		}
	}
}

func TestReadyz_HealthySystem(t *testing.T) {
	router, cleanup := setupHealthTest(t, nil)
	defer cleanup()

	resp := get(router, "/readyz")
	if resp.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body := resp.Body.String(); body != `{"status":"ready"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestReadyz_ReportsSubscribers(t *testing.T) {
	router, cleanup := setupHealthTest(t, events.NewBroker(time.Minute))
	defer cleanup()

	resp := get(router, "/readyz")
	if body := resp.Body.String(); body != `{"event_subscribers":0,"status":"ready"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestReadyz_DatabaseClosed(t *testing.T) {
	router, cleanup := setupHealthTest(t, nil)
	defer cleanup()

	database.Close()

	resp := get(router, "/readyz")
	if resp.Code != 503 {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
