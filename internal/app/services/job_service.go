package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
)

// JobService defines job posting operations
type JobService interface {
	List(ctx context.Context) ([]dto.JobResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.JobResponse, error)
	Create(ctx context.Context, p auth.Principal, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, id int64) error
}

type jobServiceImpl struct {
	jobRepo       repositories.IJobRepository
	skillRepo     repositories.ISkillRepository
	candidateRepo repositories.ICandidateRepository
	logger        zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo repositories.IJobRepository,
	skillRepo repositories.ISkillRepository,
	candidateRepo repositories.ICandidateRepository,
	logger zerolog.Logger,
) JobService {
	return &jobServiceImpl{
		jobRepo:       jobRepo,
		skillRepo:     skillRepo,
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

// List returns every job, newest first
func (s *jobServiceImpl) List(ctx context.Context) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	return dto.NewJobResponses(jobs), nil
}

// GetByID returns one job
func (s *jobServiceImpl) GetByID(ctx context.Context, id int64) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Create opens a new job. At least one existing skill is required.
func (s *jobServiceImpl) Create(ctx context.Context, p auth.Principal, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		Title:         strings.TrimSpace(req.Title),
		Department:    strings.TrimSpace(req.Department),
		Description:   strings.TrimSpace(req.Description),
		MinExperience: strings.TrimSpace(req.MinExperience),
		Location:      strings.TrimSpace(req.Location),
		Status:        models.JobStatusOpen,
	}
	if err := validateJobFields(job); err != nil {
		return nil, err
	}
	if p.UserID > 0 {
		creator := p.UserID
		job.CreatedBy = &creator
	}

	skillIDs, err := s.checkSkills(ctx, req.SkillIDs)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.Create(ctx, job, skillIDs); err != nil {
		return nil, fmt.Errorf("error creating job: %w", err)
	}

	s.logger.Info().Int64("jobID", job.ID).Int64("createdBy", p.UserID).Msg("Job created")
	return s.GetByID(ctx, job.ID)
}

// Update rewrites a job. Skill links are patched to the requested set when one is given.
func (s *jobServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = strings.TrimSpace(req.Title)
	job.Department = strings.TrimSpace(req.Department)
	job.Description = strings.TrimSpace(req.Description)
	job.MinExperience = strings.TrimSpace(req.MinExperience)
	job.Location = strings.TrimSpace(req.Location)
	job.Status = models.JobStatus(req.Status)
	if err := validateJobFields(job); err != nil {
		return nil, err
	}
	if !job.Status.Valid() {
		return nil, apperrors.NewValidationError("status", "status must be one of Open, OnHold, Closed")
	}

	job.ClosedReason = nil
	if req.ClosedReason != nil {
		if reason := strings.TrimSpace(*req.ClosedReason); reason != "" {
			job.ClosedReason = &reason
		}
	}
	if job.Status == models.JobStatusClosed && job.ClosedReason == nil {
		return nil, apperrors.NewValidationError("closedReason", "closedReason is required when closing a job")
	}

	job.SelectedCandidateID = req.SelectedCandidateID
	if job.SelectedCandidateID != nil {
		exists, err := s.candidateRepo.Exists(ctx, *job.SelectedCandidateID)
		if err != nil {
			return nil, fmt.Errorf("error checking candidate: %w", err)
		}
		if !exists {
			return nil, apperrors.NewValidationError("selectedCandidateId", "selected candidate does not exist")
		}
	}

	var skillIDs []int64
	if req.SkillIDs != nil {
		if skillIDs, err = s.checkSkills(ctx, req.SkillIDs); err != nil {
			return nil, err
		}
	}

	if err := s.jobRepo.Update(ctx, job, skillIDs); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", id).Str("status", string(job.Status)).Msg("Job updated")
	return s.GetByID(ctx, id)
}

// Delete removes a job
func (s *jobServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("jobID", id).Msg("Job deleted")
	return nil
}

// checkSkills de-duplicates ids and requires every one of them to exist
func (s *jobServiceImpl) checkSkills(ctx context.Context, ids []int64) ([]int64, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return nil, apperrors.NewValidationError("skillIds", "at least one skill is required")
	}
	n, err := s.skillRepo.CountExisting(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("error checking skills: %w", err)
	}
	if n != len(unique) {
		return nil, apperrors.NewValidationError("skillIds", "one or more skills do not exist")
	}
	return unique, nil
}

func validateJobFields(job *models.Job) error {
	switch {
	case job.Title == "":
		return apperrors.NewValidationError("title", "title is required")
	case job.Department == "":
		return apperrors.NewValidationError("department", "department is required")
	case job.Description == "":
		return apperrors.NewValidationError("description", "description is required")
	case job.MinExperience == "":
		return apperrors.NewValidationError("minExperience", "minExperience is required")
	case job.Location == "":
		return apperrors.NewValidationError("location", "location is required")
	}
	return nil
}

// uniqueIDs drops non-positive and repeated ids, keeping first-seen order
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
