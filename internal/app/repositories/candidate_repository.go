package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/db"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/dberrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// ICandidateRepository defines candidate and application persistence
type ICandidateRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Candidate, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Candidate, error)
	GetUserIDByCandidateID(ctx context.Context, id int64) (int64, error)
	EnsureForUser(ctx context.Context, userID int64) (*models.Candidate, error)
	UpdateProfile(ctx context.Context, c *models.Candidate, skillIDs []int64) error
	UpdateStatus(ctx context.Context, id int64, status models.CandidateStatus, updatedBy int64) error
	List(ctx context.Context) ([]*models.Candidate, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Candidate, error)
	Exists(ctx context.Context, id int64) (bool, error)
	HasApplied(ctx context.Context, candidateID, jobID int64) (bool, error)
	Apply(ctx context.Context, candidateID, jobID int64, source string) (bool, error)
	ListApplications(ctx context.Context, candidateID int64, limit int) ([]*models.CandidateJob, error)
}

// CandidateRepository handles database operations for candidates
type CandidateRepository struct {
	db *pgxpool.Pool
}

// NewCandidateRepository creates a new CandidateRepository
func NewCandidateRepository(db *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func selectCandidateQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.user_id", "c.experience_years", "c.status", "c.updated_by", "ub.full_name",
		"c.created_at", "c.updated_at",
		"u.full_name", "u.email", "u.username", "u.status",
	).From("candidates c").
		Join("users u ON u.id = c.user_id").
		LeftJoin("users ub ON ub.id = c.updated_by").
		PlaceholderFormat(squirrel.Dollar)
}

func scanCandidate(row pgx.Row) (*models.Candidate, error) {
	c := models.Candidate{User: &models.User{}}
	err := row.Scan(&c.ID, &c.UserID, &c.ExperienceYears, &c.Status, &c.UpdatedBy, &c.UpdatedByName,
		&c.CreatedAt, &c.UpdatedAt,
		&c.User.FullName, &c.User.Email, &c.User.Username, &c.User.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCandidateNotFound
		}
		logger.Error().Err(err).Msg("Error scanning candidate")
		return nil, err
	}
	c.User.ID = c.UserID
	c.Skills = []models.Skill{}
	return &c, nil
}

func (r *CandidateRepository) queryCandidates(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Candidate, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building candidates SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing candidates query")
		return nil, err
	}
	defer rows.Close()

	candidates := []*models.Candidate{}
	ids := []int64{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := skillsFor(ctx, r.db, "candidate_skills", "candidate_id", ids)
	if err != nil {
		return nil, err
	}
	for _, c := range candidates {
		if s, ok := skills[c.ID]; ok {
			c.Skills = s
		}
	}
	return candidates, nil
}

func (r *CandidateRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Candidate, error) {
	items, err := r.queryCandidates(ctx, selectCandidateQuery().Where(where))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrCandidateNotFound
	}
	return items[0], nil
}

// GetByID retrieves a candidate with user and skills
func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	return r.getOne(ctx, squirrel.Eq{"c.id": id})
}

// GetByUserID retrieves the candidate owned by a user
func (r *CandidateRepository) GetByUserID(ctx context.Context, userID int64) (*models.Candidate, error) {
	return r.getOne(ctx, squirrel.Eq{"c.user_id": userID})
}

// GetUserIDByCandidateID returns the owning user of a candidate profile
func (r *CandidateRepository) GetUserIDByCandidateID(ctx context.Context, id int64) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `SELECT user_id FROM candidates WHERE id = $1`, id).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCandidateNotFound
		}
		return 0, err
	}
	return userID, nil
}

// insertCandidate creates the profile for userID unless one exists and returns its id
func insertCandidate(ctx context.Context, q db.Querier, userID int64) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO candidates (user_id, experience_years, status)
		VALUES ($1, 0, $2)
		ON CONFLICT ON CONSTRAINT candidates_user_id_key DO NOTHING
		RETURNING id`, userID, models.CandidateStatusApplied).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error inserting candidate")
		return 0, err
	}

	if err := q.QueryRow(ctx, `SELECT id FROM candidates WHERE user_id = $1`, userID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// EnsureForUser returns the user's candidate profile, creating it on first access.
// Existing profiles are read without touching the table for writes.
func (r *CandidateRepository) EnsureForUser(ctx context.Context, userID int64) (*models.Candidate, error) {
	c, err := r.GetByUserID(ctx, userID)
	if err == nil || !errors.Is(err, apperrors.ErrCandidateNotFound) {
		return c, err
	}

	id, err := insertCandidate(ctx, r.db, userID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateProfile stores experience and, when skillIDs is non-nil, patches the skill links
func (r *CandidateRepository) UpdateProfile(ctx context.Context, c *models.Candidate, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE candidates SET experience_years = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING updated_at`, c.ExperienceYears, c.ID).Scan(&c.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCandidateNotFound
			}
			logger.Error().Err(err).Int64("candidateID", c.ID).Msg("Error updating candidate profile")
			return err
		}
		if skillIDs == nil {
			return nil
		}
		return patchSkillLinks(ctx, tx, "candidate_skills", "candidate_id", c.ID, skillIDs)
	})
}

// UpdateStatus sets the pipeline status and records who changed it
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id int64, status models.CandidateStatus, updatedBy int64) error {
	sql, args, err := squirrel.Update("candidates").
		Set("status", status).
		Set("updated_by", updatedBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update candidate status SQL")
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("candidateID", id).Msg("Error updating candidate status")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCandidateNotFound
	}
	return nil
}

// List returns every candidate, newest first
func (r *CandidateRepository) List(ctx context.Context) ([]*models.Candidate, error) {
	return r.queryCandidates(ctx, selectCandidateQuery().OrderBy("c.created_at DESC", "c.id DESC"))
}

// ListRecent returns the most recently created candidates
func (r *CandidateRepository) ListRecent(ctx context.Context, limit int) ([]*models.Candidate, error) {
	return r.queryCandidates(ctx, selectCandidateQuery().OrderBy("c.created_at DESC", "c.id DESC").Limit(uint64(limit)))
}

// Exists checks whether a candidate id resolves
func (r *CandidateRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// HasApplied checks for an existing application of the pair
func (r *CandidateRepository) HasApplied(ctx context.Context, candidateID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM candidate_jobs WHERE candidate_id = $1 AND job_id = $2)`,
		candidateID, jobID).Scan(&exists)
	return exists, err
}

// Apply records an application. It returns false when the pair already exists,
// including when a concurrent request inserted it first.
func (r *CandidateRepository) Apply(ctx context.Context, candidateID, jobID int64, source string) (bool, error) {
	applied, err := r.HasApplied(ctx, candidateID, jobID)
	if err != nil {
		logger.Error().Err(err).Int64("candidateID", candidateID).Int64("jobID", jobID).Msg("Error checking application")
		return false, err
	}
	if applied {
		return false, nil
	}

	sql, args, err := squirrel.Insert("candidate_jobs").
		Columns("candidate_id", "job_id", "source").
		Values(candidateID, jobID, source).
		Suffix("ON CONFLICT ON CONSTRAINT candidate_jobs_candidate_job_key DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building apply SQL")
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("candidateID", candidateID).Int64("jobID", jobID).Msg("Error inserting application")
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListApplications returns a candidate's applications with their jobs, newest first.
// A limit of zero returns all of them.
func (r *CandidateRepository) ListApplications(ctx context.Context, candidateID int64, limit int) ([]*models.CandidateJob, error) {
	builder := squirrel.Select(
		"cj.id", "cj.candidate_id", "cj.job_id", "cj.applied_date", "cj.source",
		"j.title", "j.department", "j.location", "j.status",
	).From("candidate_jobs cj").
		Join("jobs j ON j.id = cj.job_id").
		Where(squirrel.Eq{"cj.candidate_id": candidateID}).
		OrderBy("cj.applied_date DESC", "cj.id DESC").
		PlaceholderFormat(squirrel.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list applications SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("candidateID", candidateID).Msg("Error listing applications")
		return nil, err
	}
	defer rows.Close()

	apps := []*models.CandidateJob{}
	for rows.Next() {
		a := models.CandidateJob{Job: &models.Job{}}
		if err := rows.Scan(&a.ID, &a.CandidateID, &a.JobID, &a.AppliedDate, &a.Source,
			&a.Job.Title, &a.Job.Department, &a.Job.Location, &a.Job.Status); err != nil {
			return nil, err
		}
		a.Job.ID = a.JobID
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}
