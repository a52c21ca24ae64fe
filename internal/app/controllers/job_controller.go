package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
)

// JobController handles job posting operations
type JobController struct {
	jobService   services.JobService
	skillService services.SkillService
	logger       zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService, skillService services.SkillService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService:   jobService,
		skillService: skillService,
		logger:       logger,
	}
}

// GetAllJobs lists every job
// @Summary List jobs
// @Description Lists all jobs, newest first, with their required skills and creator
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.JobResponse} "Jobs"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *JobController) GetAllJobs(ctx *gin.Context) {
	jobs, err := c.jobService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(jobs))
}

// GetJobByID returns one job
// @Summary Get job details
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *JobController) GetJobByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(job))
}

// CreateJob creates a job posting
// @Summary Create a job
// @Description Creates an Open job. At least one existing skill ID is required.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job information"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse} "Job created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown skills"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.Create(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("jobID", job.ID).Int64("createdBy", p.UserID).Msg("Job created")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(job))
}

// UpdateJob updates a job posting
// @Summary Update a job
// @Description Updates a job. Closing a job requires a closed reason. The skill list is replaced by applying only the differences.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Param request body dto.UpdateJobRequest true "Job changes"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !bindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(job))
}

// DeleteJob deletes a job posting
// @Summary Delete a job
// @Tags jobs
// @Security BearerAuth
// @Param id path int true "Job ID" Format(int64) minimum(1)
// @Success 204 "Job deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid job ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("jobID", id).Msg("Job deleted")
	ctx.Status(http.StatusNoContent)
}

// GetSkills lists the skill catalogue
// @Summary List skills
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SkillResponse} "Skills"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/skills [get]
// @Router /skills [get]
func (c *JobController) GetSkills(ctx *gin.Context) {
	skills, err := c.skillService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(skills))
}

// CreateSkill adds a skill to the catalogue, or returns the existing one with the same name
// @Summary Create a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSkillRequest true "Skill"
// @Success 200 {object} dto.APIResponse{data=dto.SkillResponse} "Skill"
// @Failure 400 {object} dto.ErrorResponse "Blank name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /skills [post]
func (c *JobController) CreateSkill(ctx *gin.Context) {
	var req dto.CreateSkillRequest
	if !bindJSON(ctx, &req) {
		return
	}

	skill, err := c.skillService.GetOrCreate(ctx.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(skill))
}
