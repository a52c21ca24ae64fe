package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
	"github.com/yigit/recruitment/internal/pkg/filestorage"
	"github.com/yigit/recruitment/internal/pkg/helpers"
)

// CandidateController serves the candidate self-service area and the staff candidate views
type CandidateController struct {
	candidateService services.CandidateService
	logger           zerolog.Logger
}

// NewCandidateController creates a new CandidateController
func NewCandidateController(candidateService services.CandidateService, logger zerolog.Logger) *CandidateController {
	return &CandidateController{
		candidateService: candidateService,
		logger:           logger,
	}
}

// GetOpenJobs lists open jobs for candidates
// @Summary Browse open jobs
// @Description Lists jobs with status Open. Location and search are case-insensitive substring filters, skills is a comma-separated list of skill names, experience keeps jobs whose minimum experience does not exceed it.
// @Tags candidate
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Param location query string false "Location contains"
// @Param experience query int false "Candidate's years of experience"
// @Param skills query string false "Comma-separated skill names"
// @Param search query string false "Title or description contains"
// @Success 200 {object} dto.APIResponse{data=[]dto.JobResponse} "Open jobs"
// @Failure 400 {object} dto.ErrorResponse "Invalid experience value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/jobs [get]
func (c *CandidateController) GetOpenJobs(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.JobFilter{
		Page:     page,
		PageSize: size,
		Location: strings.TrimSpace(ctx.Query("location")),
		Skills:   helpers.SplitCSV(ctx.Query("skills")),
		Search:   strings.TrimSpace(ctx.Query("search")),
	}

	if raw := ctx.Query("experience"); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil || years < 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid experience").
				WithField("experience").
				WithDetails("experience must be a non-negative integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Experience = &years
	}

	jobs, pagination, err := c.candidateService.GetOpenJobs(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       jobs,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// GetProfile returns the caller's candidate profile
// @Summary Get my candidate profile
// @Description Returns the caller's candidate profile, creating an empty one on first access
// @Tags candidate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CandidateProfileResponse} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/profile [get]
func (c *CandidateController) GetProfile(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	profile, err := c.candidateService.GetProfile(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// UpdateProfile updates experience and skills
// @Summary Update my candidate profile
// @Description Updates experience years and the skill list. Unknown skill names are added to the catalogue.
// @Tags candidate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.APIResponse{data=dto.CandidateProfileResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/profile [put]
func (c *CandidateController) UpdateProfile(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	profile, err := c.candidateService.UpdateProfile(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// UploadCV uploads the caller's CV
// @Summary Upload CV
// @Description Uploads a CV (pdf, doc or docx). PDF files must contain at least one page.
// @Tags candidate
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CV file"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse} "Stored document"
// @Failure 400 {object} dto.ErrorResponse "Missing, empty, oversized or unsupported file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/upload-cv [post]
func (c *CandidateController) UploadCV(ctx *gin.Context) {
	c.upload(ctx, filestorage.DocumentTypeCV)
}

// UploadDocument uploads a supporting document
// @Summary Upload document
// @Description Uploads a document of the given type. CVs accept pdf, doc and docx; other types also accept jpg, jpeg and png.
// @Tags candidate
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file"
// @Param documentType formData string true "Document type, e.g. CV or Certificate"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse} "Stored document"
// @Failure 400 {object} dto.ErrorResponse "Missing, empty, oversized or unsupported file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/upload-document [post]
func (c *CandidateController) UploadDocument(ctx *gin.Context) {
	c.upload(ctx, ctx.PostForm("documentType"))
}

func (c *CandidateController) upload(ctx *gin.Context, documentType string) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded").
			WithField("file").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	doc, err := c.candidateService.UploadDocument(ctx.Request.Context(), p, documentType, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userID", p.UserID).
		Int64("documentID", doc.ID).
		Str("documentType", doc.DocumentType).
		Msg("Document uploaded")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(doc))
}

// GetMyDocuments lists the caller's documents
// @Summary List my documents
// @Description Lists the caller's documents, newest first
// @Tags candidate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DocumentResponse} "Documents"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/documents [get]
func (c *CandidateController) GetMyDocuments(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	docs, err := c.candidateService.ListMyDocuments(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(docs))
}

// DeleteDocument removes one of the caller's documents
// @Summary Delete my document
// @Description Deletes a document owned by the caller together with its stored file
// @Tags candidate
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID" Format(int64) minimum(1)
// @Success 204 "Document deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid document ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Document belongs to another candidate"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/documents/{id} [delete]
func (c *CandidateController) DeleteDocument(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.candidateService.DeleteDocument(ctx.Request.Context(), p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ApplyForJob applies the caller to an open job
// @Summary Apply for a job
// @Description Applies the caller to an open job. Applying twice for the same job is rejected.
// @Tags candidate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job ID" Format(int64) minimum(1)
// @Param request body dto.ApplyRequest false "Application source"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Application recorded"
// @Failure 400 {object} dto.ErrorResponse "Already applied or job not open"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidate/apply/{jobId} [post]
func (c *CandidateController) ApplyForJob(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	jobID, ok := parseIDParam(ctx, "jobId")
	if !ok {
		return
	}

	// The body is optional.
	var req dto.ApplyRequest
	if ctx.Request.ContentLength > 0 && !bindJSON(ctx, &req) {
		return
	}

	applied, err := c.candidateService.ApplyForJob(ctx.Request.Context(), p, jobID, req.Source)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !applied {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Already applied for this job")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: "Application submitted successfully"}))
}

// GetCandidates lists candidates for staff
// @Summary List candidates
// @Description Lists every candidate with status, experience, skills and the last staff member who changed the status
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CandidateSummaryResponse} "Candidates"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates [get]
func (c *CandidateController) GetCandidates(ctx *gin.Context) {
	candidates, err := c.candidateService.ListCandidates(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(candidates))
}

// UpdateCandidateStatus moves a candidate through the pipeline
// @Summary Update candidate status
// @Description Sets a candidate's status and records who changed it
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCandidateStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.CandidateSummaryResponse} "Updated candidate"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates/{id}/status [put]
func (c *CandidateController) UpdateCandidateStatus(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCandidateStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	candidate, err := c.candidateService.UpdateStatus(ctx.Request.Context(), p, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(candidate))
}

// GetCandidateDocuments lists a candidate's documents for staff
// @Summary List a candidate's documents
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]dto.DocumentResponse} "Documents"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Router /candidates/{id}/documents [get]
func (c *CandidateController) GetCandidateDocuments(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	docs, err := c.candidateService.ListDocuments(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(docs))
}

// VerifyDocument marks a document verified
// @Summary Verify a document
// @Description Marks a candidate document as verified by the caller
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.DocumentResponse} "Verified document"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /candidates/documents/{id}/verify [put]
func (c *CandidateController) VerifyDocument(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	doc, err := c.candidateService.VerifyDocument(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("documentID", id).Int64("verifiedBy", p.UserID).Msg("Document verified")
	ctx.JSON(http.StatusOK, dto.NewDataResponse(doc))
}
