package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
)

// ReportController serves aggregate reports. Responses may be served from the response cache.
type ReportController struct {
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// GetOverview returns headline recruitment figures
// @Summary Report overview
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ReportOverview} "Overview"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/overview [get]
func (c *ReportController) GetOverview(ctx *gin.Context) {
	overview, err := c.reportService.Overview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(overview))
}

// GetCandidatesByStatus returns the candidate count per status
// @Summary Candidates by status
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StatusShare} "Counts per status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /reports/candidates-by-status [get]
func (c *ReportController) GetCandidatesByStatus(ctx *gin.Context) {
	shares, err := c.reportService.CandidatesByStatus(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(shares))
}

// GetJobsByDepartment returns the job count per department
// @Summary Jobs by department
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentShare} "Counts per department"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /reports/jobs-by-department [get]
func (c *ReportController) GetJobsByDepartment(ctx *gin.Context) {
	shares, err := c.reportService.JobsByDepartment(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(shares))
}

// GetInterviewTrends returns interviews per month
// @Summary Interview trends
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InterviewTrend} "Monthly counts"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /reports/interview-trends [get]
func (c *ReportController) GetInterviewTrends(ctx *gin.Context) {
	trends, err := c.reportService.InterviewTrends(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(trends))
}
