package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// BrokerStatus is implemented by *infra.KitchenPublisher.
type BrokerStatus interface {
	Healthy() bool
}

// Health returns a JSON health check response.
// The durable slot store must answer; Redis and the kitchen broker are
// reported but optional, and "disabled" when not configured.
func Health(store repository.SlotStore, rdb *redis.Client, broker BrokerStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		if store.Ping(ctx) != nil {
			storeStatus = "error"
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
		}

		brokerStatus := "disabled"
		if broker != nil {
			brokerStatus = "connected"
			if !broker.Healthy() {
				brokerStatus = "error"
			}
		}

		status := http.StatusOK
		if storeStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":           status == http.StatusOK,
			"state_driver": store.Driver(),
			"state":        storeStatus,
			"redis":        redisStatus,
			"kitchen":      brokerStatus,
		})
	}
}
