package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// GET /api/companies/:id/slots
//
// The listing is re-derived on every call; nothing is reserved by
// viewing it. Each slot carries the token the booking POST expects.
func (ctl *Controller) ListSlots(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := ctl.companies.GetByID(c.Request.Context(), companyID); err != nil {
		ctl.respondError(c, err)
		return
	}

	days, err := ctl.slots.ListOpenSlots(c.Request.Context(), companyID, time.Now())
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	if days == nil {
		days = []model.DaySlots{}
	}

	c.JSON(http.StatusOK, gin.H{
		"company_id":   companyID,
		"horizon_days": ctl.slots.HorizonDays(),
		"days":         days,
	})
}

type bookRequest struct {
	SlotToken string `json:"slot_token" binding:"required"`
}

// POST /api/applications/:id/book
func (ctl *Controller) Book(c *gin.Context) {
	applicationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": "slot_token is required"})
		return
	}

	companyID, startAt, err := ctl.tokens.Verify(req.SlotToken)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	interview, err := ctl.bookings.Book(c.Request.Context(), applicationID, companyID, startAt)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"interview": interview,
		"message":   "Interview scheduled for " + interview.ScheduledAt.Format("Monday, 02 Jan 2006 15:04"),
	})
}
