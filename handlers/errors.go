package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError logs err and writes {"message": message} with status.
func respondError(c *gin.Context, logger *zap.Logger, status int, message string, err error) {
	if err != nil {
		logger.Error(message, zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}
