package handlers

import (
	"net/http"

	"gobookhotel/utils"

	"github.com/gin-gonic/gin"
)

// LivenessHandler answers the root path with the plain-text liveness string.
func LivenessHandler(c *gin.Context) {
	c.String(http.StatusOK, "running...")
}

// HealthHandler returns the latest store health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
