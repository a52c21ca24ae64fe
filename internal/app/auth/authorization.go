package auth

import (
	"context"
	"errors"

	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// CandidateOwnerLookup resolves the user account that owns a candidate profile.
type CandidateOwnerLookup interface {
	GetUserIDByCandidateID(ctx context.Context, candidateID int64) (int64, error)
}

// AuthorizationService answers ownership questions that roles alone cannot.
type AuthorizationService struct {
	candidates CandidateOwnerLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(candidates CandidateOwnerLookup) *AuthorizationService {
	return &AuthorizationService{candidates: candidates}
}

// ValidateCandidateAccess lets staff through and limits candidates to their own profile.
func (s *AuthorizationService) ValidateCandidateAccess(ctx context.Context, p Principal, candidateID int64) error {
	if p.IsStaff() {
		return nil
	}

	ownerID, err := s.candidates.GetUserIDByCandidateID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		logger.Error().Err(err).Int64("candidateID", candidateID).Msg("Error resolving candidate owner")
		return err
	}

	if ownerID != p.UserID {
		return apperrors.NewForbiddenError("you can only access your own candidate profile")
	}
	return nil
}
