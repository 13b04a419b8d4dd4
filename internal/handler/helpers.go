package handler

import (
	"net/http"
	"strconv"

	"bloodlink/internal/middleware"

	"github.com/gin-gonic/gin"
)

// callerIdentity pulls the verified identity off the context. Routes using
// it always sit behind RequireAuth; a missing identity means the route was
// wired without the middleware, which is rejected rather than guessed.
func callerIdentity(c *gin.Context) (middleware.Identity, bool) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
	}
	return ident, ok
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
