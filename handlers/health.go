package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/zachristian7-dotcom/videovault/utils"
)

func HealthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "videovault",
	})
}
