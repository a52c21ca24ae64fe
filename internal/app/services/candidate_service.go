package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/filestorage"
	"github.com/yigit/recruitment/internal/pkg/helpers"
)

// ErrAlreadyApplied is returned to HTTP callers when an application pair already exists
var ErrAlreadyApplied = apperrors.NewBadRequestError("Already applied for this job")

// CandidateService defines candidate operations
type CandidateService interface {
	GetByUserID(ctx context.Context, userID int64) (*dto.CandidateProfileResponse, error)
	GetProfile(ctx context.Context, p auth.Principal) (*dto.CandidateProfileResponse, error)
	UpdateProfile(ctx context.Context, p auth.Principal, req *dto.UpdateProfileRequest) (*dto.CandidateProfileResponse, error)
	GetOpenJobs(ctx context.Context, filter dto.JobFilter) ([]dto.JobResponse, dto.PaginationInfo, error)
	ApplyForJob(ctx context.Context, p auth.Principal, jobID int64, source string) (bool, error)
	UploadDocument(ctx context.Context, p auth.Principal, documentType string, file *multipart.FileHeader) (*dto.DocumentResponse, error)
	RecordDocument(ctx context.Context, candidateID int64, documentType, fileName, path string) (*models.Document, error)
	ListMyDocuments(ctx context.Context, p auth.Principal) ([]dto.DocumentResponse, error)
	ListDocuments(ctx context.Context, p auth.Principal, candidateID int64) ([]dto.DocumentResponse, error)
	DeleteDocument(ctx context.Context, p auth.Principal, documentID int64) error
	VerifyDocument(ctx context.Context, p auth.Principal, documentID int64) (*dto.DocumentResponse, error)
	GetOrCreateSkill(ctx context.Context, name string) (*models.Skill, error)
	ListCandidates(ctx context.Context) ([]dto.CandidateSummaryResponse, error)
	UpdateStatus(ctx context.Context, p auth.Principal, candidateID int64, status string) (*dto.CandidateSummaryResponse, error)
}

type candidateServiceImpl struct {
	candidateRepo repositories.ICandidateRepository
	jobRepo       repositories.IJobRepository
	skillRepo     repositories.ISkillRepository
	documentRepo  repositories.IDocumentRepository
	storage       filestorage.FileStorage
	authz         *auth.AuthorizationService
	limits        filestorage.UploadLimits
	baseURL       string
	logger        zerolog.Logger
	now           func() time.Time
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(
	candidateRepo repositories.ICandidateRepository,
	jobRepo repositories.IJobRepository,
	skillRepo repositories.ISkillRepository,
	documentRepo repositories.IDocumentRepository,
	storage filestorage.FileStorage,
	authz *auth.AuthorizationService,
	limits filestorage.UploadLimits,
	baseURL string,
	logger zerolog.Logger,
) CandidateService {
	return &candidateServiceImpl{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		skillRepo:     skillRepo,
		documentRepo:  documentRepo,
		storage:       storage,
		authz:         authz,
		limits:        limits,
		baseURL:       strings.TrimRight(baseURL, "/"),
		logger:        logger,
		now:           time.Now,
	}
}

// GetByUserID returns the candidate owned by userID with user and skills loaded
func (s *candidateServiceImpl) GetByUserID(ctx context.Context, userID int64) (*dto.CandidateProfileResponse, error) {
	c, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCandidateProfileResponse(c)
	return &resp, nil
}

// GetProfile returns the caller's profile, creating it on first access
func (s *candidateServiceImpl) GetProfile(ctx context.Context, p auth.Principal) (*dto.CandidateProfileResponse, error) {
	c, err := s.candidateRepo.EnsureForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCandidateProfileResponse(c)
	return &resp, nil
}

// UpdateProfile changes experience and, when given, replaces the skill set by name
func (s *candidateServiceImpl) UpdateProfile(ctx context.Context, p auth.Principal, req *dto.UpdateProfileRequest) (*dto.CandidateProfileResponse, error) {
	c, err := s.candidateRepo.EnsureForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	if req.ExperienceYears != nil {
		if *req.ExperienceYears < 0 || *req.ExperienceYears > 60 {
			return nil, apperrors.NewValidationError("experienceYears", "experienceYears must be between 0 and 60")
		}
		c.ExperienceYears = *req.ExperienceYears
	}

	var skillIDs []int64
	if req.Skills != nil {
		skillIDs = make([]int64, 0, len(req.Skills))
		for _, name := range req.Skills {
			if strings.TrimSpace(name) == "" {
				continue
			}
			skill, err := s.GetOrCreateSkill(ctx, name)
			if err != nil {
				return nil, err
			}
			skillIDs = append(skillIDs, skill.ID)
		}
		skillIDs = uniqueIDs(skillIDs)
	}

	if err := s.candidateRepo.UpdateProfile(ctx, c, skillIDs); err != nil {
		return nil, err
	}
	return s.GetByUserID(ctx, p.UserID)
}

// GetOpenJobs lists one page of Open jobs matching the filter
func (s *candidateServiceImpl) GetOpenJobs(ctx context.Context, filter dto.JobFilter) ([]dto.JobResponse, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	jobs, total, err := s.jobRepo.ListOpen(ctx, repositories.OpenJobsQuery{
		Location:      filter.Location,
		Search:        filter.Search,
		Skills:        filter.Skills,
		MaxExperience: filter.Experience,
		Offset:        offset,
		Limit:         limit,
	})
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing open jobs: %w", err)
	}

	return dto.NewJobResponses(jobs), helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// ApplyForJob records the caller's application. It reports false when they already applied.
func (s *candidateServiceImpl) ApplyForJob(ctx context.Context, p auth.Principal, jobID int64, source string) (bool, error) {
	c, err := s.candidateRepo.EnsureForUser(ctx, p.UserID)
	if err != nil {
		return false, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return false, err
	}
	if job.Status != models.JobStatusOpen {
		return false, apperrors.NewBadRequestError("Job is not open for applications")
	}

	source = strings.TrimSpace(source)
	if source == "" {
		source = models.DefaultApplicationSource
	}

	applied, err := s.candidateRepo.Apply(ctx, c.ID, jobID, source)
	if err != nil {
		return false, fmt.Errorf("error applying for job: %w", err)
	}
	if applied {
		s.logger.Info().Int64("candidateID", c.ID).Int64("jobID", jobID).Str("source", source).Msg("Candidate applied for job")
	}
	return applied, nil
}

// UploadDocument validates and stores an upload for the caller, then records it.
// The stored file is removed again if the row cannot be written.
func (s *candidateServiceImpl) UploadDocument(ctx context.Context, p auth.Principal, documentType string, file *multipart.FileHeader) (*dto.DocumentResponse, error) {
	documentType = strings.TrimSpace(documentType)
	ext, err := filestorage.ValidateUpload(file, documentType, s.limits)
	if err != nil {
		return nil, err
	}
	if filestorage.IsCV(documentType) {
		documentType = filestorage.DocumentTypeCV
	}

	c, err := s.candidateRepo.EnsureForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	dir, name := filestorage.BuildStoredName(c.ID, documentType, ext, s.now())
	path, err := s.storage.SaveFileWithPath(file, dir, name)
	if err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}

	doc, err := s.RecordDocument(ctx, c.ID, documentType, file.Filename, path)
	if err != nil {
		if delErr := s.storage.DeleteFile(path); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}

	resp := dto.NewDocumentResponse(doc, s.baseURL)
	return &resp, nil
}

// RecordDocument creates the document row for an already stored file
func (s *candidateServiceImpl) RecordDocument(ctx context.Context, candidateID int64, documentType, fileName, path string) (*models.Document, error) {
	doc := &models.Document{
		CandidateID:  candidateID,
		DocumentType: documentType,
		FileName:     fileName,
		FilePath:     path,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("error recording document: %w", err)
	}
	s.logger.Info().Int64("candidateID", candidateID).Int64("documentID", doc.ID).Str("type", documentType).Msg("Document uploaded")
	return doc, nil
}

// ListMyDocuments returns the caller's documents
func (s *candidateServiceImpl) ListMyDocuments(ctx context.Context, p auth.Principal) ([]dto.DocumentResponse, error) {
	c, err := s.candidateRepo.EnsureForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return s.listDocuments(ctx, c.ID)
}

// ListDocuments returns a candidate's documents, newest first
func (s *candidateServiceImpl) ListDocuments(ctx context.Context, p auth.Principal, candidateID int64) ([]dto.DocumentResponse, error) {
	if err := s.authz.ValidateCandidateAccess(ctx, p, candidateID); err != nil {
		return nil, err
	}
	return s.listDocuments(ctx, candidateID)
}

func (s *candidateServiceImpl) listDocuments(ctx context.Context, candidateID int64) ([]dto.DocumentResponse, error) {
	docs, err := s.documentRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.NewDocumentResponse(d, s.baseURL))
	}
	return out, nil
}

// DeleteDocument removes one of the caller's documents and its file
func (s *candidateServiceImpl) DeleteDocument(ctx context.Context, p auth.Principal, documentID int64) error {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	c, err := s.candidateRepo.GetByUserID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.NewForbiddenError("you can only delete your own documents")
		}
		return err
	}
	if doc.CandidateID != c.ID {
		return apperrors.NewForbiddenError("you can only delete your own documents")
	}

	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(doc.FilePath); err != nil {
		s.logger.Warn().Err(err).Int64("documentID", documentID).Str("path", doc.FilePath).Msg("Failed to delete document file")
	}
	return nil
}

// VerifyDocument marks a document verified by the caller
func (s *candidateServiceImpl) VerifyDocument(ctx context.Context, p auth.Principal, documentID int64) (*dto.DocumentResponse, error) {
	doc, err := s.documentRepo.Verify(ctx, documentID, p.UserID, s.now())
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("documentID", documentID).Int64("verifiedBy", p.UserID).Msg("Document verified")
	resp := dto.NewDocumentResponse(doc, s.baseURL)
	return &resp, nil
}

// GetOrCreateSkill resolves a skill name case-insensitively, creating it on a miss
func (s *candidateServiceImpl) GetOrCreateSkill(ctx context.Context, name string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, apperrors.NewValidationError("skills", "skill names must be between 1 and 100 characters")
	}
	skill, err := s.skillRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error resolving skill %q: %w", name, err)
	}
	return skill, nil
}

// ListCandidates returns every candidate for staff
func (s *candidateServiceImpl) ListCandidates(ctx context.Context) ([]dto.CandidateSummaryResponse, error) {
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing candidates: %w", err)
	}
	out := make([]dto.CandidateSummaryResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, dto.NewCandidateSummaryResponse(c))
	}
	return out, nil
}

// UpdateStatus moves a candidate through the pipeline and records who did it
func (s *candidateServiceImpl) UpdateStatus(ctx context.Context, p auth.Principal, candidateID int64, status string) (*dto.CandidateSummaryResponse, error) {
	if !p.IsStaff() {
		return nil, apperrors.NewForbiddenError("only staff can change candidate status")
	}
	next := models.CandidateStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return nil, apperrors.NewValidationError("status",
			"status must be one of Applied, Shortlisted, Interview, Selected, Rejected, On Hold")
	}

	if err := s.candidateRepo.UpdateStatus(ctx, candidateID, next, p.UserID); err != nil {
		return nil, err
	}

	c, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("candidateID", candidateID).Str("status", string(next)).Int64("updatedBy", p.UserID).Msg("Candidate status updated")
	resp := dto.NewCandidateSummaryResponse(c)
	return &resp, nil
}
