package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// respondError maps domain errors onto the API's error body. All
// recoverable conditions come back as 4xx with a user-facing message;
// anything unclassified is a generic 500.
func (ctl *Controller) respondError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": vErr.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "not found"})
	case errors.Is(err, model.ErrNotEligible):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not_eligible", "message": "This application is not eligible for interview scheduling."})
	case errors.Is(err, model.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "slot_taken", "message": "That slot was just taken. Please pick another slot."})
	default:
		ctl.logger.Error("Unhandled request error",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "An unexpected server error occurred."})
	}
}
