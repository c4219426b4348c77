package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"merval-chat-service/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Merval Inteligente Chat API"
	HealthVersion = "1.0.0"
	ServiceName   = "merval-chat-service"
)

// healthCheck reports overall service health. The service stays "degraded"
// rather than down when the store is unreachable: chat still answers, only
// history suffers.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	status := "healthy"
	storeStatus := "ok"
	if err := srv.store.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "healthCheck: store ping failed: %v", err)
		status = "degraded"
		storeStatus = "unreachable"
	}

	aiStatus := srv.ai.Status(ctx)
	if aiStatus.Configured && !aiStatus.Available {
		status = "degraded"
	}

	response.OK(c, gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"services": gin.H{
			"store": gin.H{
				"backend": srv.store.Name(),
				"status":  storeStatus,
			},
			"openai": gin.H{
				"configured":          aiStatus.Configured,
				"available":           aiStatus.Available,
				"assistant_available": aiStatus.AssistantAvailable,
			},
		},
	})
}

// readyCheck reports whether the server should receive traffic. The store
// must answer: a chat service that cannot load history misleads users.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.store.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "readyCheck: store ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not ready",
			"service": ServiceName,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
