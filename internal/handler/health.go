package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// Health reports service liveness and probes the database with a SELECT 1.
func Health(db *sqlx.DB, serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ok int
		if err := db.Get(&ok, `SELECT 1`); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"service": serviceName,
				"status":  "running",
				"db":      "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"service": serviceName,
			"status":  "running",
			"db":      "up",
		})
	}
}
