package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
)

// DashboardController serves the role-specific dashboards
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetAdminDashboard returns the admin and recruiter dashboard
// @Summary Admin dashboard
// @Description Stats, recent jobs, recent candidates, upcoming interviews, pending tasks and notifications
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboard} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /dashboard/admin [get]
// @Router /dashboard/recruiter [get]
func (c *DashboardController) GetAdminDashboard(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.Admin(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

// GetHRDashboard returns the HR dashboard
// @Summary HR dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HRDashboard} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /dashboard/hr [get]
func (c *DashboardController) GetHRDashboard(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.HR(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

// GetInterviewerDashboard returns the interviewer dashboard
// @Summary Interviewer dashboard
// @Description Interviews and pending tasks are limited to those assigned to the caller
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InterviewerDashboard} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /dashboard/interviewer [get]
func (c *DashboardController) GetInterviewerDashboard(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.Interviewer(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

// GetReviewerDashboard returns the reviewer dashboard
// @Summary Reviewer dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ReviewerDashboard} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /dashboard/reviewer [get]
func (c *DashboardController) GetReviewerDashboard(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.Reviewer(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

// GetCandidateDashboard returns the candidate dashboard
// @Summary Candidate dashboard
// @Description Profile summary, applied jobs, interviews, offers and notifications of the caller
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CandidateDashboard} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /dashboard/candidate [get]
func (c *DashboardController) GetCandidateDashboard(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.Candidate(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}

// GetOthersDashboard returns the generic staff dashboard
// @Summary Generic dashboard
// @Description HR-shaped dashboard, with recent jobs when the caller is a recruiter
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OtherDashboard} "Dashboard"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /dashboard/others [get]
func (c *DashboardController) GetOthersDashboard(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	dashboard, err := c.dashboardService.Others(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(dashboard))
}
