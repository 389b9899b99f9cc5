package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthAPI struct{}

// Get /api/health
func (api *HealthAPI) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Pet Adoption Center API is running",
	})
}
