package handler

import (
	"errors"
	"net/http"

	apperrors "theme-park-ticketing/pkg/app_errors"
	"theme-park-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError maps the domain error taxonomy onto HTTP responses. Every
// failure returns control to the caller with a descriptive message; nothing
// here is fatal to the process.
func handleError(c *gin.Context, err error, component, operation string) {
	log := logger.WithComponent(component).With(zap.String("operation", operation), zap.Error(err))
	if ve := apperrors.AsValidation(err); ve != nil {
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrAuthentication):
		log.Warn("Authentication failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrEmptyCart):
		log.Warn("Cart is empty")
		c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
