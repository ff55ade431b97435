package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/campuskit/enrollment-api/pkg/response"
)

// HealthHandler reports process liveness and dependency reachability.
// The endpoint always answers 200; component state lives in the body.
type HealthHandler struct {
	db    *sqlx.DB
	redis *redis.Client
}

// NewHealthHandler constructs HealthHandler. redis may be nil.
func NewHealthHandler(db *sqlx.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Check godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	database := "connected"
	if h.db == nil || h.db.PingContext(c.Request.Context()) != nil {
		database = "disconnected"
	}

	status := "healthy"
	if database != "connected" {
		status = "unhealthy"
	}

	body := gin.H{
		"status":   status,
		"message":  "Course enrollment API is running",
		"database": database,
	}

	if h.redis != nil {
		cache := "connected"
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			cache = "disconnected"
		}
		body["cache"] = cache
	}

	response.JSON(c, http.StatusOK, body)
}
