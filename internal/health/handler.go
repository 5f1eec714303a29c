package health

import (
	"net/http"

	"github.com/binhbb2204/Translation-Hub/internal/events"
	"github.com/binhbb2204/Translation-Hub/pkg/database"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	broker *events.Broker
}

// NewHandler reports readiness of the ratings database. broker may be nil.
func NewHandler(broker *events.Broker) *Handler {
	return &Handler{broker: broker}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Healthz)
	router.GET("/healthz", h.Healthz)
	router.GET("/readyz", h.Readyz)
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *Handler) Readyz(c *gin.Context) {
	if database.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "reason": "database_not_initialized"})
		return
	}

	if err := database.DB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "reason": "database_ping_failed"})
		return
	}

	res := gin.H{"status": "ready"}
	if h.broker != nil {
		res["event_subscribers"] = h.broker.ClientCount()
	}
	c.JSON(http.StatusOK, res)
}
