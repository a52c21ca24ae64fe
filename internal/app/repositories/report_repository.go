package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// LabelCount is one bucket of a grouped count
type LabelCount struct {
	Label string
	Count int64
}

// MonthCount is the number of rows falling in one calendar month
type MonthCount struct {
	Month time.Time
	Count int64
}

// FunnelCounts are the distinct-candidate numbers behind the overview rates
type FunnelCounts struct {
	Applications          int64
	Applicants            int64
	InterviewedApplicants int64
	HiredApplicants       int64
}

// Activity kinds returned by RecentActivity
const (
	ActivityApplication = "application"
	ActivityInterview   = "interview"
	ActivityShortlist   = "shortlist"
)

// ActivityRow is a raw recent-activity entry
type ActivityRow struct {
	Kind          string
	CandidateName string
	JobTitle      string
	At            time.Time
}

// IReportRepository defines the aggregate queries behind reports
type IReportRepository interface {
	Funnel(ctx context.Context) (*FunnelCounts, error)
	AverageDaysToHire(ctx context.Context) (float64, error)
	ApplicationsBySource(ctx context.Context) ([]LabelCount, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityRow, error)
	CandidatesByStatus(ctx context.Context) ([]LabelCount, error)
	JobsByDepartment(ctx context.Context) ([]LabelCount, error)
	InterviewsByMonth(ctx context.Context) ([]MonthCount, error)
}

// ReportRepository runs report aggregates
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// Funnel counts applications and the distinct applicants that were interviewed or hired
func (r *ReportRepository) Funnel(ctx context.Context) (*FunnelCounts, error) {
	var f FunnelCounts
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM candidate_jobs),
			(SELECT COUNT(DISTINCT candidate_id) FROM candidate_jobs),
			(SELECT COUNT(DISTINCT cj.candidate_id) FROM candidate_jobs cj
				WHERE EXISTS (SELECT 1 FROM interviews i WHERE i.candidate_id = cj.candidate_id)),
			(SELECT COUNT(DISTINCT cj.candidate_id) FROM candidate_jobs cj
				JOIN candidates c ON c.id = cj.candidate_id WHERE c.status = $1)`,
		models.CandidateStatusSelected,
	).Scan(&f.Applications, &f.Applicants, &f.InterviewedApplicants, &f.HiredApplicants)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing hiring funnel")
		return nil, err
	}
	return &f, nil
}

// AverageDaysToHire averages the days from application to the Selected interview of the same job
func (r *ReportRepository) AverageDaysToHire(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.QueryRow(ctx, `
		SELECT AVG(EXTRACT(EPOCH FROM (i.completed_at - cj.applied_date)) / 86400.0)::float8
		FROM candidate_jobs cj
		JOIN interviews i ON i.candidate_id = cj.candidate_id AND i.job_id = cj.job_id
		WHERE i.status = $1 AND i.completed_at IS NOT NULL`,
		models.InterviewStatusSelected,
	).Scan(&avg)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing time to hire")
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// ApplicationsBySource groups applications by where the candidate found the job
func (r *ReportRepository) ApplicationsBySource(ctx context.Context) ([]LabelCount, error) {
	return r.labelCounts(ctx, `
		SELECT source, COUNT(*) AS n FROM candidate_jobs
		GROUP BY source ORDER BY n DESC, source`)
}

// CandidatesByStatus groups candidates by pipeline status
func (r *ReportRepository) CandidatesByStatus(ctx context.Context) ([]LabelCount, error) {
	return r.labelCounts(ctx, `
		SELECT status, COUNT(*) AS n FROM candidates
		GROUP BY status ORDER BY n DESC, status`)
}

// JobsByDepartment groups jobs by department
func (r *ReportRepository) JobsByDepartment(ctx context.Context) ([]LabelCount, error) {
	return r.labelCounts(ctx, `
		SELECT department, COUNT(*) AS n FROM jobs
		GROUP BY department ORDER BY n DESC, department`)
}

func (r *ReportRepository) labelCounts(ctx context.Context, sql string, args ...any) ([]LabelCount, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing grouped count")
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (LabelCount, error) {
		var lc LabelCount
		err := row.Scan(&lc.Label, &lc.Count)
		return lc, err
	})
}

// InterviewsByMonth counts interviews per calendar month of their scheduled date, oldest first
func (r *ReportRepository) InterviewsByMonth(ctx context.Context) ([]MonthCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date_trunc('month', scheduled_date AT TIME ZONE 'UTC') AS month, COUNT(*)
		FROM interviews
		GROUP BY month ORDER BY month`)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing interview trends query")
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (MonthCount, error) {
		var mc MonthCount
		err := row.Scan(&mc.Month, &mc.Count)
		return mc, err
	})
}

// RecentActivity merges the latest applications, scheduled interviews and shortlistings
func (r *ReportRepository) RecentActivity(ctx context.Context, limit int) ([]ActivityRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT kind, candidate_name, job_title, at FROM (
			SELECT $1::text AS kind, u.full_name AS candidate_name, j.title AS job_title, cj.applied_date AS at
			FROM candidate_jobs cj
			JOIN candidates c ON c.id = cj.candidate_id
			JOIN users u ON u.id = c.user_id
			JOIN jobs j ON j.id = cj.job_id
			UNION ALL
			SELECT $2::text, u.full_name, j.title, i.created_at
			FROM interviews i
			JOIN candidates c ON c.id = i.candidate_id
			JOIN users u ON u.id = c.user_id
			JOIN jobs j ON j.id = i.job_id
			UNION ALL
			SELECT $3::text, u.full_name, '', c.updated_at
			FROM candidates c
			JOIN users u ON u.id = c.user_id
			WHERE c.status = $4
		) activity
		ORDER BY at DESC
		LIMIT $5`,
		ActivityApplication, ActivityInterview, ActivityShortlist, models.CandidateStatusShortlisted, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent activity query")
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ActivityRow, error) {
		var a ActivityRow
		err := row.Scan(&a.Kind, &a.CandidateName, &a.JobTitle, &a.At)
		return a, err
	})
}
