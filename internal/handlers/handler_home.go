package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome is a trivial liveness handler.
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "monetra backend up"})
}
