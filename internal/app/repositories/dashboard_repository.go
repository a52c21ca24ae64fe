package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// IDashboardRepository computes the pipeline counters
type IDashboardRepository interface {
	Stats(ctx context.Context, now time.Time) (*dto.DashboardStats, error)
}

// DashboardRepository runs read-only count queries across the pipeline tables
type DashboardRepository struct {
	db *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Stats counts jobs, candidates, interviews and offers by status.
// pendingInterviews counts Scheduled interviews later than now.
func (r *DashboardRepository) Stats(ctx context.Context, now time.Time) (*dto.DashboardStats, error) {
	var s dto.DashboardStats

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM jobs`,
		models.JobStatusOpen, models.JobStatusOnHold, models.JobStatusClosed,
	).Scan(&s.TotalJobs, &s.OpenJobs, &s.OnHoldJobs, &s.ClosedJobs)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting jobs")
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			COUNT(*) FILTER (WHERE status = $4),
			COUNT(*) FILTER (WHERE status = $5),
			COUNT(*) FILTER (WHERE status = $6)
		FROM candidates`,
		models.CandidateStatusApplied, models.CandidateStatusShortlisted, models.CandidateStatusInterview,
		models.CandidateStatusSelected, models.CandidateStatusRejected, models.CandidateStatusOnHold,
	).Scan(&s.TotalCandidates, &s.AppliedCandidates, &s.ShortlistedCandidates, &s.InterviewCandidates,
		&s.SelectedCandidates, &s.RejectedCandidates, &s.OnHoldCandidates)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting candidates")
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status IN ($2, $3)),
			COUNT(*) FILTER (WHERE status = $1 AND scheduled_date > $4)
		FROM interviews`,
		models.InterviewStatusScheduled, models.InterviewStatusSelected, models.InterviewStatusRejected, now,
	).Scan(&s.TotalInterviews, &s.ScheduledInterviews, &s.CompletedInterviews, &s.PendingInterviews)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting interviews")
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM offers`,
		models.OfferStatusOffered, models.OfferStatusAccepted, models.OfferStatusRejected,
	).Scan(&s.TotalOffers, &s.PendingOffers, &s.AcceptedOffers, &s.RejectedOffers)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting offers")
		return nil, err
	}

	return &s, nil
}
