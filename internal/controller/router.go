package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/talentdesk/interview-scheduler/internal/model"
	"github.com/talentdesk/interview-scheduler/internal/service"
)

// ScheduleAdmin manages availability windows.
type ScheduleAdmin interface {
	AddWindow(ctx context.Context, companyID int64, in service.WindowInput) (*model.AvailabilityWindow, error)
	EditWindow(ctx context.Context, windowID, companyID int64, in service.WindowInput) (*model.AvailabilityWindow, error)
	DeleteWindow(ctx context.Context, windowID, companyID int64) error
	ListWindows(ctx context.Context, companyID int64) ([]model.AvailabilityWindow, error)
}

// SlotLister derives the candidate-facing slot listing.
type SlotLister interface {
	ListOpenSlots(ctx context.Context, companyID int64, now time.Time) ([]model.DaySlots, error)
	HorizonDays() int
}

// Booker commits a chosen slot for an application.
type Booker interface {
	Book(ctx context.Context, applicationID, companyID int64, startAt time.Time) (*model.Interview, error)
}

// SlotTokenVerifier resolves a listing token back into company and time.
type SlotTokenVerifier interface {
	Verify(token string) (int64, time.Time, error)
}

// CompanyLookup resolves companies for listing endpoints.
type CompanyLookup interface {
	GetByID(ctx context.Context, id int64) (*model.Company, error)
}

// InterviewLister reads booked interviews for the staff overview.
type InterviewLister interface {
	ListUpcomingByCompany(ctx context.Context, companyID int64, from time.Time) ([]model.Interview, error)
}

// Controller wires the HTTP surface to the scheduling services.
type Controller struct {
	schedule   ScheduleAdmin
	slots      SlotLister
	bookings   Booker
	tokens     SlotTokenVerifier
	companies  CompanyLookup
	interviews InterviewLister
	authorizer Authorizer
	logger     *zap.Logger
}

func NewController(
	schedule ScheduleAdmin,
	slots SlotLister,
	bookings Booker,
	tokens SlotTokenVerifier,
	companies CompanyLookup,
	interviews InterviewLister,
	authorizer Authorizer,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		schedule:   schedule,
		slots:      slots,
		bookings:   bookings,
		tokens:     tokens,
		companies:  companies,
		interviews: interviews,
		authorizer: authorizer,
		logger:     logger,
	}
}

// NewRouter assembles the gin engine with middleware and routes.
func NewRouter(ctl *Controller, pool *pgxpool.Pool, logger *zap.Logger, jwtSecret, staticTokens string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(AuthMiddleware(jwtSecret, staticTokens))
	{
		companies := api.Group("/companies/:id")
		{
			companies.GET("/slots", ctl.ListSlots)
			companies.GET("/windows", ctl.ListWindows)
			companies.POST("/windows", ctl.AddWindow)
			companies.PUT("/windows/:window_id", ctl.EditWindow)
			companies.DELETE("/windows/:window_id", ctl.DeleteWindow)
			companies.GET("/interviews", ctl.ListInterviews)
			companies.GET("/schedule.png", ctl.ScheduleImage)
		}
		api.POST("/applications/:id/book", ctl.Book)
	}

	return router
}
