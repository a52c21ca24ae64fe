package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
)

// SkillService manages the shared skill catalogue
type SkillService interface {
	List(ctx context.Context) ([]dto.SkillResponse, error)
	GetOrCreate(ctx context.Context, name string) (*dto.SkillResponse, error)
}

type skillServiceImpl struct {
	skillRepo repositories.ISkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repositories.ISkillRepository) SkillService {
	return &skillServiceImpl{skillRepo: skillRepo}
}

// List returns all skills ordered by name
func (s *skillServiceImpl) List(ctx context.Context) ([]dto.SkillResponse, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing skills: %w", err)
	}
	return dto.NewSkillResponses(skills), nil
}

// GetOrCreate resolves a skill name case-insensitively, creating it on a miss
func (s *skillServiceImpl) GetOrCreate(ctx context.Context, name string) (*dto.SkillResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return nil, apperrors.NewValidationError("name", "skill name must be between 1 and 100 characters")
	}
	skill, err := s.skillRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error resolving skill: %w", err)
	}
	return &dto.SkillResponse{ID: skill.ID, Name: skill.Name}, nil
}
