package integration_test

import (
	"database/sql"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/binhbb2204/Translation-Hub/internal/events"
	"github.com/binhbb2204/Translation-Hub/internal/health"
	"github.com/binhbb2204/Translation-Hub/internal/rating"
	"github.com/binhbb2204/Translation-Hub/pkg/database"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/gin-gonic/gin"
)

// TestEnvironment runs the rating API on a real sqlite file behind httptest.
type TestEnvironment struct {
	Server       *httptest.Server
	Broker       *events.Broker
	Service      *rating.Service
	DB           *sql.DB
	Logger       *logger.Logger
	cleanup      []func()
	cleanupMutex sync.Mutex
}

func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	logger.Init(logger.ERROR, false, nil)
	log := logger.GetLogger()

	dbPath := filepath.Join(t.TempDir(), "integration_test.db")
	if err := database.InitDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	broker := events.NewBroker(time.Minute)
	service := rating.NewService(rating.NewDBRepository(database.DB), rating.DefaultWindow)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	health.NewHandler(broker).RegisterRoutes(router)
	router.GET("/events", broker.ServeSSE)
	rating.NewHandler(service, broker).RegisterRoutes(router)

	server := httptest.NewServer(router)

	env := &TestEnvironment{
		Server:  server,
		Broker:  broker,
		Service: service,
		DB:      database.DB,
		Logger:  log,
		cleanup: []func(){
			func() { database.Close() },
			func() { server.Close() },
		},
	}
	t.Cleanup(env.Cleanup)
	return env
}

func (env *TestEnvironment) AddCleanup(fn func()) {
	env.cleanupMutex.Lock()
	defer env.cleanupMutex.Unlock()
	env.cleanup = append(env.cleanup, fn)
}

func (env *TestEnvironment) Cleanup() {
	env.cleanupMutex.Lock()
	defer env.cleanupMutex.Unlock()

	for i := len(env.cleanup) - 1; i >= 0; i-- {
		env.cleanup[i]()
	}
	env.cleanup = nil
}

// WaitForSubscribers polls until n SSE clients are attached.
func (env *TestEnvironment) WaitForSubscribers(t *testing.T, n int) {
	deadline := time.Now().Add(2 * time.Second)
	for env.Broker.ClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d subscribers, have %d", n, env.Broker.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
