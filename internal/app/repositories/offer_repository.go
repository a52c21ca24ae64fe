package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/dberrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// IOfferRepository defines offer persistence
type IOfferRepository interface {
	Create(ctx context.Context, o *models.Offer) error
	GetByID(ctx context.Context, id int64) (*models.Offer, error)
	ListForCandidate(ctx context.Context, candidateID int64, limit int) ([]*models.Offer, error)
	UpdateStatus(ctx context.Context, id int64, status models.OfferStatus, at time.Time) (*models.Offer, error)
}

// OfferRepository handles database operations for offers
type OfferRepository struct {
	db *pgxpool.Pool
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{db: db}
}

func selectOfferQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"o.id", "o.candidate_id", "o.job_id", "COALESCE(j.title, '')",
		"o.offer_date", "o.joining_date", "o.status", "o.status_updated_at",
	).From("offers o").
		LeftJoin("jobs j ON j.id = o.job_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanOffer(row pgx.Row) (*models.Offer, error) {
	var o models.Offer
	err := row.Scan(&o.ID, &o.CandidateID, &o.JobID, &o.JobTitle,
		&o.OfferDate, &o.JoiningDate, &o.Status, &o.StatusUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Create inserts an offer
func (r *OfferRepository) Create(ctx context.Context, o *models.Offer) error {
	sql, args, err := squirrel.Insert("offers").
		Columns("candidate_id", "job_id", "joining_date", "status").
		Values(o.CandidateID, o.JobID, o.JoiningDate, o.Status).
		Suffix("RETURNING id, offer_date, status_updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create offer SQL")
		return err
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.OfferDate, &o.StatusUpdatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("candidate or job not found")
		}
		logger.Error().Err(err).Msg("Error executing create offer query")
		return err
	}
	return nil
}

// GetByID retrieves an offer with its job title
func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*models.Offer, error) {
	sql, args, err := selectOfferQuery().Where(squirrel.Eq{"o.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get offer SQL")
		return nil, err
	}
	return scanOffer(r.db.QueryRow(ctx, sql, args...))
}

// ListForCandidate returns a candidate's offers, newest first. A limit of zero returns all.
func (r *OfferRepository) ListForCandidate(ctx context.Context, candidateID int64, limit int) ([]*models.Offer, error) {
	builder := selectOfferQuery().
		Where(squirrel.Eq{"o.candidate_id": candidateID}).
		OrderBy("o.offer_date DESC", "o.id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list offers SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("candidateID", candidateID).Msg("Error listing offers")
		return nil, err
	}
	defer rows.Close()

	offers := []*models.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// UpdateStatus sets an offer's status and stamps status_updated_at
func (r *OfferRepository) UpdateStatus(ctx context.Context, id int64, status models.OfferStatus, at time.Time) (*models.Offer, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE offers SET status = $2, status_updated_at = $3 WHERE id = $1`, id, status, at)
	if err != nil {
		logger.Error().Err(err).Int64("offerID", id).Msg("Error updating offer status")
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrOfferNotFound
	}
	return r.GetByID(ctx, id)
}
