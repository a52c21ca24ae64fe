package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/db"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// OpenJobsQuery narrows the open-jobs listing. MaxExperience keeps jobs whose
// minimum experience, read as the first integer in the free text, is at most that many years.
type OpenJobsQuery struct {
	Location      string
	Search        string
	Skills        []string
	MaxExperience *int
	Offset        uint64
	Limit         int
}

// minExperienceYears mirrors how candidates read "3+ years": the first number, or 0 without one
const minExperienceYears = `COALESCE(SUBSTRING(j.min_experience FROM '[0-9]{1,9}')::int, 0)`

// IJobRepository defines job persistence
type IJobRepository interface {
	List(ctx context.Context) ([]*models.Job, error)
	ListOpen(ctx context.Context, q OpenJobsQuery) ([]*models.Job, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, job *models.Job, skillIDs []int64) error
	Update(ctx context.Context, job *models.Job, skillIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func selectJobQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"j.id", "j.title", "j.department", "j.description", "j.min_experience", "j.location",
		"j.status", "j.created_by", "u.full_name AS created_by_name", "j.closed_reason",
		"j.selected_candidate_id", "j.created_at", "j.updated_at",
		"(SELECT COUNT(*) FROM candidate_jobs cj WHERE cj.job_id = j.id) AS applied_count",
	).From("jobs j").
		LeftJoin("users u ON u.id = j.created_by").
		PlaceholderFormat(squirrel.Dollar)
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Department, &j.Description, &j.MinExperience, &j.Location,
		&j.Status, &j.CreatedBy, &j.CreatedByName, &j.ClosedReason,
		&j.SelectedCandidateID, &j.CreatedAt, &j.UpdatedAt, &j.AppliedCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Msg("Error scanning job")
		return nil, err
	}
	j.Skills = []models.Skill{}
	return &j, nil
}

func (r *JobRepository) queryJobs(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Job, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list jobs SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list jobs query")
		return nil, err
	}
	defer rows.Close()

	jobs := []*models.Job{}
	ids := []int64{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
		ids = append(ids, j.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skills, err := skillsFor(ctx, r.db, "job_skills", "job_id", ids)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		if s, ok := skills[j.ID]; ok {
			j.Skills = s
		}
	}
	return jobs, nil
}

// List returns every job, newest first
func (r *JobRepository) List(ctx context.Context) ([]*models.Job, error) {
	return r.queryJobs(ctx, selectJobQuery().OrderBy("j.created_at DESC", "j.id DESC"))
}

// ListRecent returns the newest jobs regardless of status
func (r *JobRepository) ListRecent(ctx context.Context, limit int) ([]*models.Job, error) {
	return r.queryJobs(ctx, selectJobQuery().OrderBy("j.created_at DESC", "j.id DESC").Limit(uint64(limit)))
}

// openJobsFilter builds the WHERE clause shared by the open-jobs page and its count
func openJobsFilter(q OpenJobsQuery) (squirrel.And, error) {
	filter := squirrel.And{squirrel.Eq{"j.status": models.JobStatusOpen}}

	if loc := strings.TrimSpace(q.Location); loc != "" {
		filter = append(filter, squirrel.ILike{"j.location": "%" + escapeLike(loc) + "%"})
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		filter = append(filter, squirrel.Or{
			squirrel.ILike{"j.title": pattern},
			squirrel.ILike{"j.description": pattern},
			squirrel.ILike{"j.department": pattern},
		})
	}
	if q.MaxExperience != nil {
		filter = append(filter, squirrel.Expr(minExperienceYears+" <= ?", *q.MaxExperience))
	}
	if len(q.Skills) > 0 {
		lowered := make([]string, len(q.Skills))
		for i, s := range q.Skills {
			lowered[i] = strings.ToLower(strings.TrimSpace(s))
		}
		sub, args, err := squirrel.Select("1").
			From("job_skills js").
			Join("skills s ON s.id = js.skill_id").
			Where("js.job_id = j.id").
			Where(squirrel.Eq{"LOWER(s.name)": lowered}).
			ToSql()
		if err != nil {
			return nil, err
		}
		filter = append(filter, squirrel.Expr("EXISTS ("+sub+")", args...))
	}
	return filter, nil
}

// openJobsQueries returns the page query and the matching count query
func openJobsQueries(q OpenJobsQuery) (page, count squirrel.SelectBuilder, err error) {
	filter, err := openJobsFilter(q)
	if err != nil {
		return page, count, err
	}

	page = selectJobQuery().
		Where(filter).
		OrderBy("j.created_at DESC", "j.id DESC").
		Offset(q.Offset)
	if q.Limit > 0 {
		page = page.Limit(uint64(q.Limit))
	}

	count = squirrel.Select("COUNT(*)").
		From("jobs j").
		Where(filter).
		PlaceholderFormat(squirrel.Dollar)
	return page, count, nil
}

// ListOpen returns one page of Open jobs matching the query, plus the total number of matches
func (r *JobRepository) ListOpen(ctx context.Context, q OpenJobsQuery) ([]*models.Job, int64, error) {
	pageQuery, countQuery, err := openJobsQueries(q)
	if err != nil {
		logger.Error().Err(err).Msg("Error building open jobs SQL")
		return nil, 0, err
	}

	sql, args, err := countQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count open jobs SQL")
		return nil, 0, err
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting open jobs")
		return nil, 0, err
	}
	if total == 0 {
		return []*models.Job{}, 0, nil
	}

	jobs, err := r.queryJobs(ctx, pageQuery)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// GetByID retrieves a job with its skills
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	jobs, err := r.queryJobs(ctx, selectJobQuery().Where(squirrel.Eq{"j.id": id}))
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, apperrors.ErrJobNotFound
	}
	return jobs[0], nil
}

// Create inserts the job and its skill links in one transaction
func (r *JobRepository) Create(ctx context.Context, job *models.Job, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := squirrel.Insert("jobs").
			Columns("title", "department", "description", "min_experience", "location", "status", "created_by").
			Values(job.Title, job.Department, job.Description, job.MinExperience, job.Location, job.Status, job.CreatedBy).
			Suffix("RETURNING id, created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create job SQL")
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error executing create job query")
			return err
		}
		return insertSkillLinks(ctx, tx, "job_skills", "job_id", job.ID, skillIDs)
	})
}

// Update rewrites the job row and patches its skill links. A nil skillIDs leaves skills untouched.
func (r *JobRepository) Update(ctx context.Context, job *models.Job, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := squirrel.Update("jobs").
			Set("title", job.Title).
			Set("department", job.Department).
			Set("description", job.Description).
			Set("min_experience", job.MinExperience).
			Set("location", job.Location).
			Set("status", job.Status).
			Set("closed_reason", job.ClosedReason).
			Set("selected_candidate_id", job.SelectedCandidateID).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": job.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building update job SQL")
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error executing update job query")
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrJobNotFound
		}

		if skillIDs == nil {
			return nil
		}
		return patchSkillLinks(ctx, tx, "job_skills", "job_id", job.ID, skillIDs)
	})
}

// Delete removes a job; applications, interviews and offers cascade
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error deleting job")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
