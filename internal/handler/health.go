package handler

import (
	"context"
	"net/http"
	"time"

	"gestor/internal/storage"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response with storage reachability.
func Health(st storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storageStatus := "ok"
		status := http.StatusOK
		if err := st.Ping(ctx); err != nil {
			storageStatus = "error"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": storageStatus,
		})
	}
}
