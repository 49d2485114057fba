package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talentdesk/interview-scheduler/internal/controller/weekimage"
	"github.com/talentdesk/interview-scheduler/internal/model"
	"github.com/talentdesk/interview-scheduler/internal/service"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (ctl *Controller) requireScheduleAccess(c *gin.Context, companyID int64) bool {
	if ctl.authorizer.CanManageSchedule(claimsFrom(c), companyID) {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "message": "You are not authorized to manage this company's schedule."})
	return false
}

// windowListing re-reads the ordered list after a mutation, mirroring
// the redirect-back-to-list flow of the administration screen.
func (ctl *Controller) windowListing(c *gin.Context, companyID int64) ([]model.AvailabilityWindow, bool) {
	windows, err := ctl.schedule.ListWindows(c.Request.Context(), companyID)
	if err != nil {
		ctl.respondError(c, err)
		return nil, false
	}
	if windows == nil {
		windows = []model.AvailabilityWindow{}
	}
	return windows, true
}

// GET /api/companies/:id/windows
func (ctl *Controller) ListWindows(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !ctl.requireScheduleAccess(c, companyID) {
		return
	}
	if _, err := ctl.companies.GetByID(c.Request.Context(), companyID); err != nil {
		ctl.respondError(c, err)
		return
	}

	windows, ok := ctl.windowListing(c, companyID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"company_id": companyID, "windows": windows})
}

// POST /api/companies/:id/windows
func (ctl *Controller) AddWindow(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !ctl.requireScheduleAccess(c, companyID) {
		return
	}

	var in service.WindowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	window, err := ctl.schedule.AddWindow(c.Request.Context(), companyID, in)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	windows, ok := ctl.windowListing(c, companyID)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, gin.H{"window": window, "windows": windows})
}

// PUT /api/companies/:id/windows/:window_id
func (ctl *Controller) EditWindow(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	windowID, ok := pathID(c, "window_id")
	if !ok {
		return
	}
	if !ctl.requireScheduleAccess(c, companyID) {
		return
	}

	var in service.WindowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_error", "message": err.Error()})
		return
	}

	window, err := ctl.schedule.EditWindow(c.Request.Context(), windowID, companyID, in)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	windows, ok := ctl.windowListing(c, companyID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": window, "windows": windows})
}

// DELETE /api/companies/:id/windows/:window_id
//
// Idempotent: deleting a missing window reports 404 as a no-op signal.
// Already-booked interviews are never affected.
func (ctl *Controller) DeleteWindow(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	windowID, ok := pathID(c, "window_id")
	if !ok {
		return
	}
	if !ctl.requireScheduleAccess(c, companyID) {
		return
	}

	if err := ctl.schedule.DeleteWindow(c.Request.Context(), windowID, companyID); err != nil {
		ctl.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/companies/:id/interviews
func (ctl *Controller) ListInterviews(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !ctl.requireScheduleAccess(c, companyID) {
		return
	}

	interviews, err := ctl.interviews.ListUpcomingByCompany(c.Request.Context(), companyID, time.Now())
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	if interviews == nil {
		interviews = []model.Interview{}
	}
	c.JSON(http.StatusOK, gin.H{"company_id": companyID, "interviews": interviews})
}

// GET /api/companies/:id/schedule.png
func (ctl *Controller) ScheduleImage(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !ctl.requireScheduleAccess(c, companyID) {
		return
	}

	company, err := ctl.companies.GetByID(c.Request.Context(), companyID)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	windows, err := ctl.schedule.ListWindows(c.Request.Context(), companyID)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	png, err := weekimage.Render(company.Name, windows)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
