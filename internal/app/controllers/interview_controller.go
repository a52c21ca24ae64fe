package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
)

// InterviewController handles interview scheduling, status and feedback
type InterviewController struct {
	interviewService services.InterviewService
	logger           zerolog.Logger
}

// NewInterviewController creates a new InterviewController
func NewInterviewController(interviewService services.InterviewService, logger zerolog.Logger) *InterviewController {
	return &InterviewController{
		interviewService: interviewService,
		logger:           logger,
	}
}

// GetAllInterviews lists every interview
// @Summary List interviews
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.InterviewResponse} "Interviews"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview [get]
func (c *InterviewController) GetAllInterviews(ctx *gin.Context) {
	interviews, err := c.interviewService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(interviews))
}

// GetInterviewByID returns one interview with interviewers and feedback
// @Summary Get interview details
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InterviewResponse} "Interview"
// @Failure 400 {object} dto.ErrorResponse "Invalid interview ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interview/{id} [get]
func (c *InterviewController) GetInterviewByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	interview, err := c.interviewService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(interview))
}

// GetInterviewsByCandidate lists a candidate's interviews
// @Summary List interviews for a candidate
// @Description Candidates may only list their own interviews
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.InterviewResponse} "Interviews"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Router /interview/candidate/{id} [get]
func (c *InterviewController) GetInterviewsByCandidate(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	interviews, err := c.interviewService.ListByCandidate(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(interviews))
}

// GetInterviewsByJob lists a job's interviews
// @Summary List interviews for a job
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.InterviewResponse} "Interviews"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /interview/job/{id} [get]
func (c *InterviewController) GetInterviewsByJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	interviews, err := c.interviewService.ListByJob(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(interviews))
}

// GetInterviewsByInterviewer lists interviews assigned to a user
// @Summary List interviews for an interviewer
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interviewer user ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.InterviewResponse} "Interviews"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /interview/interviewer/{id} [get]
func (c *InterviewController) GetInterviewsByInterviewer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	interviews, err := c.interviewService.ListByInterviewer(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(interviews))
}

// GetFeedbacks lists the feedback recorded for an interview
// @Summary List interview feedback
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.FeedbackResponse} "Feedback"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interview/{id}/feedbacks [get]
func (c *InterviewController) GetFeedbacks(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	feedbacks, err := c.interviewService.ListFeedbacks(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(feedbacks))
}

// ScheduleInterview schedules a new interview round
// @Summary Schedule an interview
// @Description Creates a Scheduled interview and assigns the given interviewers in one transaction
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleInterviewRequest true "Interview details"
// @Success 201 {object} dto.APIResponse{data=dto.InterviewResponse} "Interview scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or interviewer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Candidate or job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /interview/schedule [post]
func (c *InterviewController) ScheduleInterview(ctx *gin.Context) {
	var req dto.ScheduleInterviewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	interview, err := c.interviewService.Schedule(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("interviewID", interview.ID).
		Int64("candidateID", req.CandidateID).
		Int64("jobID", req.JobID).
		Msg("Interview scheduled")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(interview))
}

// UpdateInterviewStatus changes an interview's status
// @Summary Update interview status
// @Description Sets the status and notifies the candidate. A failed notification does not undo the status change.
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Param request body dto.UpdateInterviewStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.InterviewResponse} "Updated interview"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interview/{id}/status [put]
func (c *InterviewController) UpdateInterviewStatus(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInterviewStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	interview, err := c.interviewService.UpdateStatus(ctx.Request.Context(), p, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(interview))
}

// AddFeedback records feedback for an interview
// @Summary Add interview feedback
// @Description Records a 1-5 rating. Interviewers can only submit feedback under their own ID.
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Param request body dto.AddFeedbackRequest true "Feedback"
// @Success 201 {object} dto.APIResponse{data=dto.FeedbackResponse} "Feedback recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating or comments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interview/{id}/feedback [post]
func (c *InterviewController) AddFeedback(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddFeedbackRequest
	if !bindJSON(ctx, &req) {
		return
	}

	feedback, err := c.interviewService.AddFeedback(ctx.Request.Context(), p, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(feedback))
}

// DeleteInterview deletes an interview with its assignments and feedback
// @Summary Delete an interview
// @Tags interviews
// @Security BearerAuth
// @Param id path int true "Interview ID" Format(int64) minimum(1)
// @Success 204 "Interview deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin only"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interview/{id} [delete]
func (c *InterviewController) DeleteInterview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.interviewService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("interviewID", id).Msg("Interview deleted")
	ctx.Status(http.StatusNoContent)
}
