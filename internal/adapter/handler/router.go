package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/johnquangdev/engagement-tracker/docs"
	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/engagement-tracker/pkg/config"
)

// HealthCheck probes one backing service
type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	authHandler       *Auth
	meetingHandler    *Meeting
	engagementHandler *Engagement
	sessions          middleware.SessionValidator
	checks            map[string]HealthCheck
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	meetingHandler *Meeting,
	engagementHandler *Engagement,
	sessions middleware.SessionValidator,
) *Router {
	return &Router{
		cfg:               cfg,
		authHandler:       authHandler,
		meetingHandler:    meetingHandler,
		engagementHandler: engagementHandler,
		sessions:          sessions,
		checks:            make(map[string]HealthCheck),
	}
}

// AddHealthCheck reports the named dependency on /health
func (rt *Router) AddHealthCheck(name string, check HealthCheck) {
	rt.checks[name] = check
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupParticipantRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	requireAuth := middleware.EchoAuth(rt.sessions)

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.GET("/user", rt.authHandler.Me, requireAuth)
	authGroup.POST("/logout", rt.authHandler.Logout, requireAuth)
}

// setupMeetingRoutes configures meeting, activity and engagement routes.
// Callers may be anonymous; a valid token only supplies the default user_id.
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings", middleware.OptionalAuth(rt.sessions))

	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.PUT("/:id", rt.meetingHandler.UpdateMeeting)
	meetings.DELETE("/:id", rt.meetingHandler.DeleteMeeting)

	meetings.GET("/:id/participants", rt.meetingHandler.ListParticipants)
	meetings.POST("/:id/participants", rt.meetingHandler.AddParticipant)

	meetings.GET("/:id/chat-messages", rt.meetingHandler.ListChatMessages)
	meetings.POST("/:id/chat-messages", rt.meetingHandler.AddChatMessage)
	meetings.GET("/:id/document-activities", rt.meetingHandler.ListDocumentActivities)
	meetings.POST("/:id/document-activities", rt.meetingHandler.AddDocumentActivity)
	meetings.GET("/:id/task-activities", rt.meetingHandler.ListTaskActivities)
	meetings.POST("/:id/task-activities", rt.meetingHandler.AddTaskActivity)

	meetings.POST("/:id/calculate-engagement", rt.engagementHandler.CalculateEngagement)
	meetings.GET("/:id/silent-contributors", rt.engagementHandler.ListSilentContributors)
	meetings.POST("/:id/engagement-report", rt.engagementHandler.ArchiveReport)
	meetings.GET("/:id/engagement-reports", rt.engagementHandler.ListReports)
}

// setupParticipantRoutes configures routes addressed by participant ID
func (rt *Router) setupParticipantRoutes(g *echo.Group) {
	participants := g.Group("/participants", middleware.OptionalAuth(rt.sessions))

	participants.GET("/:id/voice-activities", rt.meetingHandler.ListVoiceActivities)
	participants.POST("/:id/voice-activities", rt.meetingHandler.RecordVoiceActivity)
	participants.POST("/:id/leave", rt.meetingHandler.LeaveMeeting)
}

// healthCheck returns health status. Any failing dependency turns the
// response into a 503.
func (rt *Router) healthCheck(c echo.Context) error {
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}

	names := make([]string, 0, len(rt.checks))
	for name := range rt.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status, code := "ok", http.StatusOK
	deps := make(map[string]string, len(names))
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		err := rt.checks[name](ctx)
		cancel()
		if err != nil {
			deps[name] = err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	body := map[string]interface{}{
		"status":      status,
		"environment": env,
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}
	return c.JSON(code, body)
}
