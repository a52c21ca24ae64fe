package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
)

// candidateOfferLimit bounds the offers listed to a candidate
const candidateOfferLimit = 50

// OfferService defines offer operations
type OfferService interface {
	Create(ctx context.Context, req *dto.CreateOfferRequest) (*dto.OfferResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*dto.OfferResponse, error)
	ListForCandidate(ctx context.Context, p auth.Principal) ([]dto.OfferResponse, error)
	Respond(ctx context.Context, p auth.Principal, id int64, accept bool) (*dto.OfferResponse, error)
}

type offerServiceImpl struct {
	offerRepo     repositories.IOfferRepository
	candidateRepo repositories.ICandidateRepository
	jobRepo       repositories.IJobRepository
	notifications NotificationService
	logger        zerolog.Logger
	now           func() time.Time
}

// NewOfferService creates a new OfferService
func NewOfferService(
	offerRepo repositories.IOfferRepository,
	candidateRepo repositories.ICandidateRepository,
	jobRepo repositories.IJobRepository,
	notifications NotificationService,
	logger zerolog.Logger,
) OfferService {
	return &offerServiceImpl{
		offerRepo:     offerRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// Create extends an Offered offer and tells the candidate about it
func (s *offerServiceImpl) Create(ctx context.Context, req *dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	userID, err := s.candidateRepo.GetUserIDByCandidateID(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	offer := &models.Offer{
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		JobTitle:    job.Title,
		OfferDate:   s.now(),
		JoiningDate: req.JoiningDate,
		Status:      models.OfferStatusOffered,
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("offerID", offer.ID).Int64("candidateID", offer.CandidateID).Int64("jobID", offer.JobID).Msg("Offer created")

	sideCtx, cancel := detached(ctx)
	defer cancel()
	msg := fmt.Sprintf("You have received an offer for '%s'.", job.Title)
	if _, err := s.notifications.Notify(sideCtx, userID, msg); err != nil {
		s.logger.Error().Err(err).Int64("offerID", offer.ID).Msg("Failed to notify candidate about offer")
	}

	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

// UpdateStatus sets any offer status and stamps statusUpdatedAt
func (s *offerServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) (*dto.OfferResponse, error) {
	next := models.OfferStatus(status)
	if !next.Valid() {
		return nil, apperrors.NewValidationError("status", "status must be one of Offered, Accepted, Rejected, Joined")
	}
	offer, err := s.offerRepo.UpdateStatus(ctx, id, next, s.now())
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("offerID", id).Str("status", status).Msg("Offer status updated")
	resp := dto.NewOfferResponse(offer)
	return &resp, nil
}

// ListForCandidate returns the caller's own offers
func (s *offerServiceImpl) ListForCandidate(ctx context.Context, p auth.Principal) ([]dto.OfferResponse, error) {
	c, err := s.candidateRepo.EnsureForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	offers, err := s.offerRepo.ListForCandidate(ctx, c.ID, candidateOfferLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing offers: %w", err)
	}
	return dto.NewOfferResponses(offers), nil
}

// Respond lets a candidate accept or reject one of their own pending offers
func (s *offerServiceImpl) Respond(ctx context.Context, p auth.Principal, id int64, accept bool) (*dto.OfferResponse, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := s.candidateRepo.GetByUserID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if offer.CandidateID != c.ID {
		return nil, apperrors.NewForbiddenError("you can only respond to your own offers")
	}
	if offer.Status != models.OfferStatusOffered {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Offer has already been %s", offer.Status))
	}

	next := models.OfferStatusRejected
	if accept {
		next = models.OfferStatusAccepted
	}
	return s.UpdateStatus(ctx, id, string(next))
}
