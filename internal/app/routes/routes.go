package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/recruitment/internal/app/controllers"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/middleware"
	"github.com/yigit/recruitment/internal/pkg/websocket"
)

// Handlers groups the controllers mounted under /api
type Handlers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Candidate    *controllers.CandidateController
	Job          *controllers.JobController
	Interview    *controllers.InterviewController
	Offer        *controllers.OfferController
	Notification *controllers.NotificationController
	Dashboard    *controllers.DashboardController
	Report       *controllers.ReportController
	WebSocket    *websocket.Handler
}

// Middlewares groups the route-level middleware built from configuration
type Middlewares struct {
	Auth *middleware.AuthMiddleware
	// AuthRateLimit guards the public login and register endpoints
	AuthRateLimit gin.HandlerFunc
	// ReportCache caches report responses
	ReportCache gin.HandlerFunc
}

var (
	staffRoles   = []models.Role{models.RoleAdmin, models.RoleHR, models.RoleRecruiter, models.RoleInterviewer, models.RoleReviewer}
	jobEditors   = []models.Role{models.RoleAdmin, models.RoleHR, models.RoleRecruiter}
	statusEditor = []models.Role{models.RoleAdmin, models.RoleHR, models.RoleRecruiter, models.RoleReviewer}
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, h Handlers, m Middlewares) {
	api := router.Group("/api")

	if m.AuthRateLimit == nil {
		m.AuthRateLimit = func(c *gin.Context) { c.Next() }
	}
	if m.ReportCache == nil {
		m.ReportCache = func(c *gin.Context) { c.Next() }
	}

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", m.AuthRateLimit, h.Auth.Login)
		auth.POST("/register", m.AuthRateLimit, h.Auth.Register)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(m.Auth.JWTAuth())

	authenticated.GET("/auth/me", h.Auth.Me)

	admin := authenticated.Group("/admin")
	admin.Use(m.Auth.RolesRequired(models.RoleAdmin))
	{
		admin.GET("/pending-users", h.User.GetPendingUsers)
		admin.GET("/all-users", h.User.GetAllUsers)
		admin.POST("/approve-user", h.User.ApproveUser)
		admin.DELETE("/user/:id", h.User.DeleteUser)
	}

	authenticated.GET("/users/interviewers", h.User.GetInterviewers)

	// Candidate self-service
	candidate := authenticated.Group("/candidate")
	candidate.Use(m.Auth.RolesRequired(models.RoleCandidate))
	{
		candidate.GET("/jobs", h.Candidate.GetOpenJobs)
		candidate.GET("/profile", h.Candidate.GetProfile)
		candidate.PUT("/profile", h.Candidate.UpdateProfile)
		candidate.POST("/upload-cv", h.Candidate.UploadCV)
		candidate.POST("/upload-document", h.Candidate.UploadDocument)
		candidate.GET("/documents", h.Candidate.GetMyDocuments)
		candidate.DELETE("/documents/:id", h.Candidate.DeleteDocument)
		candidate.POST("/apply/:jobId", h.Candidate.ApplyForJob)
		candidate.GET("/offers", h.Offer.GetMyOffers)
		candidate.PUT("/offers/:id/respond", h.Offer.RespondToOffer)
	}

	// Staff candidate views
	candidates := authenticated.Group("/candidates")
	{
		candidates.GET("", m.Auth.RolesRequired(staffRoles...), h.Candidate.GetCandidates)
		candidates.PUT("/:id/status", m.Auth.RolesRequired(statusEditor...), h.Candidate.UpdateCandidateStatus)
		candidates.GET("/:id/documents",
			m.Auth.RolesRequired(models.RoleAdmin, models.RoleHR, models.RoleInterviewer),
			h.Candidate.GetCandidateDocuments)
		candidates.PUT("/documents/:id/verify",
			m.Auth.RolesRequired(models.RoleAdmin, models.RoleHR),
			h.Candidate.VerifyDocument)
	}

	jobs := authenticated.Group("/jobs")
	jobs.Use(m.Auth.RolesRequired(staffRoles...))
	{
		jobs.GET("", h.Job.GetAllJobs)
		jobs.GET("/skills", h.Job.GetSkills)
		jobs.GET("/:id", h.Job.GetJobByID)

		jobsEditable := jobs.Group("")
		jobsEditable.Use(m.Auth.RolesRequired(jobEditors...))
		{
			jobsEditable.POST("", h.Job.CreateJob)
			jobsEditable.PUT("/:id", h.Job.UpdateJob)
			jobsEditable.DELETE("/:id", h.Job.DeleteJob)
		}
	}

	skills := authenticated.Group("/skills")
	{
		skills.GET("", h.Job.GetSkills)
		skills.POST("", m.Auth.RolesRequired(jobEditors...), h.Job.CreateSkill)
	}

	// Interview routes - reads are open to any authenticated user, mutations are role-gated
	interview := authenticated.Group("/interview")
	{
		interview.GET("", h.Interview.GetAllInterviews)
		interview.GET("/candidate/:id", h.Interview.GetInterviewsByCandidate)
		interview.GET("/job/:id", h.Interview.GetInterviewsByJob)
		interview.GET("/interviewer/:id", h.Interview.GetInterviewsByInterviewer)
		interview.GET("/:id", h.Interview.GetInterviewByID)
		interview.GET("/:id/feedbacks", h.Interview.GetFeedbacks)

		interview.POST("/schedule", m.Auth.RolesRequired(models.RoleAdmin, models.RoleHR), h.Interview.ScheduleInterview)
		interview.PUT("/:id/status",
			m.Auth.RolesRequired(models.RoleAdmin, models.RoleHR, models.RoleInterviewer),
			h.Interview.UpdateInterviewStatus)
		interview.POST("/:id/feedback",
			m.Auth.RolesRequired(models.RoleAdmin, models.RoleHR, models.RoleInterviewer),
			h.Interview.AddFeedback)
		interview.DELETE("/:id", m.Auth.RolesRequired(models.RoleAdmin), h.Interview.DeleteInterview)
	}

	offers := authenticated.Group("/offers")
	offers.Use(m.Auth.RolesRequired(models.RoleAdmin, models.RoleHR))
	{
		offers.POST("", h.Offer.CreateOffer)
		offers.PUT("/:id/status", h.Offer.UpdateOfferStatus)
	}

	dashboard := authenticated.Group("/dashboard")
	{
		dashboard.GET("/admin", m.Auth.RolesRequired(models.RoleAdmin), h.Dashboard.GetAdminDashboard)
		dashboard.GET("/recruiter", m.Auth.RolesRequired(models.RoleRecruiter), h.Dashboard.GetAdminDashboard)
		dashboard.GET("/hr", m.Auth.RolesRequired(models.RoleHR), h.Dashboard.GetHRDashboard)
		dashboard.GET("/interviewer", m.Auth.RolesRequired(models.RoleInterviewer), h.Dashboard.GetInterviewerDashboard)
		dashboard.GET("/reviewer", m.Auth.RolesRequired(models.RoleReviewer), h.Dashboard.GetReviewerDashboard)
		dashboard.GET("/candidate", m.Auth.RolesRequired(models.RoleCandidate), h.Dashboard.GetCandidateDashboard)
		dashboard.GET("/others", h.Dashboard.GetOthersDashboard)
	}

	reports := authenticated.Group("/reports")
	reports.Use(m.ReportCache)
	{
		reports.GET("/overview", h.Report.GetOverview)
		reports.GET("/candidates-by-status", h.Report.GetCandidatesByStatus)
		reports.GET("/jobs-by-department", h.Report.GetJobsByDepartment)
		reports.GET("/interview-trends", h.Report.GetInterviewTrends)
	}

	notifications := authenticated.Group("/notifications")
	{
		notifications.GET("", h.Notification.GetNotifications)
		notifications.GET("/unread-count", h.Notification.GetUnreadCount)
		notifications.PUT("/read-all", h.Notification.MarkAllAsRead)
		notifications.PUT("/:id/read", h.Notification.MarkAsRead)
		notifications.GET("/ws", h.WebSocket.HandleConnection)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"status": "ok"}))
	})
}
