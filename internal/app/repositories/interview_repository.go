package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/db"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// InterviewFilter narrows interview listings. Zero values do not filter.
type InterviewFilter struct {
	CandidateID    *int64
	JobID          *int64
	InterviewerID  *int64
	Status         *models.InterviewStatus
	ExcludeStatus  *models.InterviewStatus
	ScheduledFrom  *time.Time
	ScheduledUntil *time.Time
	// Ascending orders by scheduled date oldest first; the default is newest first
	Ascending bool
	Limit     int
}

// InterviewNotice is what a status-change notification needs to know about an interview
type InterviewNotice struct {
	InterviewID     int64
	CandidateUserID int64
	CandidateName   string
	CandidateEmail  string
	JobTitle        *string
}

// IInterviewRepository defines interview persistence
type IInterviewRepository interface {
	Create(ctx context.Context, i *models.Interview, interviewerIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Interview, error)
	List(ctx context.Context, f InterviewFilter) ([]*models.Interview, error)
	UpdateStatus(ctx context.Context, id int64, status models.InterviewStatus, at time.Time) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	AddFeedback(ctx context.Context, f *models.Feedback) error
	ListFeedbacks(ctx context.Context, interviewID int64) ([]models.Feedback, error)
	NoticeFor(ctx context.Context, id int64) (*InterviewNotice, error)
}

// InterviewRepository handles database operations for interviews
type InterviewRepository struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new InterviewRepository
func NewInterviewRepository(db *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func selectInterviewQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"i.id", "i.candidate_id", "i.job_id", "i.scheduled_date", "i.interview_type", "i.round_no",
		"i.status", "i.completed_at", "i.created_at",
		"COALESCE(u.full_name, '')", "COALESCE(c.user_id, 0)", "COALESCE(j.title, '')",
	).From("interviews i").
		LeftJoin("candidates c ON c.id = i.candidate_id").
		LeftJoin("users u ON u.id = c.user_id").
		LeftJoin("jobs j ON j.id = i.job_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanInterview(row pgx.Row) (*models.Interview, error) {
	var i models.Interview
	err := row.Scan(&i.ID, &i.CandidateID, &i.JobID, &i.ScheduledDate, &i.InterviewType, &i.RoundNo,
		&i.Status, &i.CompletedAt, &i.CreatedAt,
		&i.CandidateName, &i.CandidateUserID, &i.JobTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInterviewNotFound
		}
		logger.Error().Err(err).Msg("Error scanning interview")
		return nil, err
	}
	i.Interviewers = []models.InterviewerAssignment{}
	return &i, nil
}

// Create inserts the interview and its interviewer rows in one transaction
func (r *InterviewRepository) Create(ctx context.Context, i *models.Interview, interviewerIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := squirrel.Insert("interviews").
			Columns("candidate_id", "job_id", "scheduled_date", "interview_type", "round_no", "status").
			Values(i.CandidateID, i.JobID, i.ScheduledDate, i.InterviewType, i.RoundNo, i.Status).
			Suffix("RETURNING id, created_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create interview SQL")
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&i.ID, &i.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error executing create interview query")
			return err
		}

		if len(interviewerIDs) == 0 {
			return nil
		}
		builder := squirrel.Insert("interviewers").
			Columns("interview_id", "user_id").
			Suffix("ON CONFLICT DO NOTHING").
			PlaceholderFormat(squirrel.Dollar)
		for _, uid := range interviewerIDs {
			builder = builder.Values(i.ID, uid)
		}
		sql, args, err = builder.ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building assign interviewers SQL")
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("interviewID", i.ID).Msg("Error assigning interviewers")
			return err
		}
		return nil
	})
}

// GetByID retrieves an interview with interviewers and feedbacks
func (r *InterviewRepository) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	items, err := r.query(ctx, selectInterviewQuery().Where(squirrel.Eq{"i.id": id}))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrInterviewNotFound
	}
	interview := items[0]

	feedbacks, err := r.ListFeedbacks(ctx, id)
	if err != nil {
		return nil, err
	}
	interview.Feedbacks = feedbacks
	return interview, nil
}

// List returns interviews matching f with their interviewers
func (r *InterviewRepository) List(ctx context.Context, f InterviewFilter) ([]*models.Interview, error) {
	builder := selectInterviewQuery()
	if f.CandidateID != nil {
		builder = builder.Where(squirrel.Eq{"i.candidate_id": *f.CandidateID})
	}
	if f.JobID != nil {
		builder = builder.Where(squirrel.Eq{"i.job_id": *f.JobID})
	}
	if f.InterviewerID != nil {
		builder = builder.Where("EXISTS (SELECT 1 FROM interviewers iv WHERE iv.interview_id = i.id AND iv.user_id = ?)", *f.InterviewerID)
	}
	if f.Status != nil {
		builder = builder.Where(squirrel.Eq{"i.status": *f.Status})
	}
	if f.ExcludeStatus != nil {
		builder = builder.Where(squirrel.NotEq{"i.status": *f.ExcludeStatus})
	}
	if f.ScheduledFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"i.scheduled_date": *f.ScheduledFrom})
	}
	if f.ScheduledUntil != nil {
		builder = builder.Where(squirrel.LtOrEq{"i.scheduled_date": *f.ScheduledUntil})
	}
	if f.Ascending {
		builder = builder.OrderBy("i.scheduled_date ASC", "i.id ASC")
	} else {
		builder = builder.OrderBy("i.scheduled_date DESC", "i.id DESC")
	}
	if f.Limit > 0 {
		builder = builder.Limit(uint64(f.Limit))
	}
	return r.query(ctx, builder)
}

func (r *InterviewRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Interview, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building interviews SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing interviews query")
		return nil, err
	}
	defer rows.Close()

	items := []*models.Interview{}
	byID := map[int64]*models.Interview{}
	ids := []int64{}
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
		byID[i.ID] = i
		ids = append(ids, i.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(ids) == 0 {
		return items, nil
	}
	return items, r.attachInterviewers(ctx, ids, byID)
}

func (r *InterviewRepository) attachInterviewers(ctx context.Context, ids []int64, byID map[int64]*models.Interview) error {
	sql, args, err := squirrel.Select("iv.interview_id", "iv.user_id", "u.full_name").
		From("interviewers iv").
		Join("users u ON u.id = iv.user_id").
		Where(squirrel.Eq{"iv.interview_id": ids}).
		OrderBy("u.full_name").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building interviewers SQL")
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error loading interviewers")
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.InterviewerAssignment
		if err := rows.Scan(&a.InterviewID, &a.UserID, &a.FullName); err != nil {
			return err
		}
		if i, ok := byID[a.InterviewID]; ok {
			i.Interviewers = append(i.Interviewers, a)
		}
	}
	return rows.Err()
}

// UpdateStatus writes the new status. Entering Selected or Rejected stamps completed_at;
// other statuses leave it as it was.
func (r *InterviewRepository) UpdateStatus(ctx context.Context, id int64, status models.InterviewStatus, at time.Time) error {
	builder := squirrel.Update("interviews").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
	if status.IsTerminal() {
		builder = builder.Set("completed_at", at)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update interview status SQL")
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("interviewID", id).Msg("Error updating interview status")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInterviewNotFound
	}
	return nil
}

// Delete removes an interview; interviewer and feedback rows cascade
func (r *InterviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interviews WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("interviewID", id).Msg("Error deleting interview")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInterviewNotFound
	}
	return nil
}

// Exists checks whether an interview id resolves
func (r *InterviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM interviews WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// AddFeedback appends a feedback row
func (r *InterviewRepository) AddFeedback(ctx context.Context, f *models.Feedback) error {
	sql, args, err := squirrel.Insert("feedbacks").
		Columns("interview_id", "interviewer_id", "rating", "comments").
		Values(f.InterviewID, f.InterviewerID, f.Rating, f.Comments).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building add feedback SQL")
		return err
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		logger.Error().Err(err).Int64("interviewID", f.InterviewID).Msg("Error inserting feedback")
		return err
	}
	return nil
}

// ListFeedbacks returns an interview's feedback, oldest first
func (r *InterviewRepository) ListFeedbacks(ctx context.Context, interviewID int64) ([]models.Feedback, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.interview_id, f.interviewer_id, COALESCE(u.full_name, ''), f.rating, f.comments, f.created_at
		FROM feedbacks f
		LEFT JOIN users u ON u.id = f.interviewer_id
		WHERE f.interview_id = $1
		ORDER BY f.created_at, f.id`, interviewID)
	if err != nil {
		logger.Error().Err(err).Int64("interviewID", interviewID).Msg("Error listing feedbacks")
		return nil, err
	}
	defer rows.Close()

	feedbacks := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.InterviewID, &f.InterviewerID, &f.InterviewerName,
			&f.Rating, &f.Comments, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, f)
	}
	return feedbacks, rows.Err()
}

// NoticeFor loads the candidate's user and the job title for a status notification
func (r *InterviewRepository) NoticeFor(ctx context.Context, id int64) (*InterviewNotice, error) {
	n := InterviewNotice{InterviewID: id}
	err := r.db.QueryRow(ctx, `
		SELECT c.user_id, u.full_name, u.email, j.title
		FROM interviews i
		JOIN candidates c ON c.id = i.candidate_id
		JOIN users u ON u.id = c.user_id
		LEFT JOIN jobs j ON j.id = i.job_id
		WHERE i.id = $1`, id).Scan(&n.CandidateUserID, &n.CandidateName, &n.CandidateEmail, &n.JobTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInterviewNotFound
		}
		return nil, err
	}
	return &n, nil
}
