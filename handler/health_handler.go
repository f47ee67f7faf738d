package handler

import (
	"context"
	"net/http"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	MongoClient *mongo.Client
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{MongoClient: client}
}

// Health reports dependency reachability and basic host load
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	mongoStatus := "up"
	if err := h.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		mongoStatus = "down"
	}

	redisStatus := "disabled"
	if services.TokenBlacklist != nil {
		redisStatus = "up"
		if !services.TokenBlacklist.IsConnected() {
			redisStatus = "down"
		}
	}

	status := http.StatusOK
	message := "Service healthy."
	if mongoStatus == "down" {
		status = http.StatusInternalServerError
		message = "Service degraded."
	}

	c.JSON(status, gin.H{
		"error":   status != http.StatusOK,
		"message": message,
		"mongo":   mongoStatus,
		"redis":   redisStatus,
		"system": gin.H{
			"cpuPercent":    utils.GetCPUUsage(),
			"memoryPercent": utils.GetMemoryUsage(),
		},
	})
}
