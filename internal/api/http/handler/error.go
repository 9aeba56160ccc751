package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbarbosa/recado-server/internal/model"
)

// handleError translates core errors to a terminal HTTP response with a
// machine-usable code and a human message. Authentication causes were
// already normalized to ErrUnauthorized below this boundary.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    "unauthorized",
			"message": "invalid credentials",
		})
	case errors.Is(err, model.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    "forbidden",
			"message": "you do not have permission to modify this resource",
		})
	case errors.Is(err, model.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"code":    "not_found",
			"message": "resource not found",
		})
	case errors.Is(err, model.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"code":    "conflict",
			"message": "email already in use",
		})
	case errors.Is(err, model.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"code":    "invalid_input",
			"message": "invalid input",
		})
	default:
		c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
	}
}

func invalidInput(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"code":    "invalid_input",
		"message": message,
	})
}
