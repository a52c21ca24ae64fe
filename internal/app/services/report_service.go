package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/helpers"
)

const (
	recentActivityLimit = 10
	trendMonthLayout    = "Jan 2006"
)

// ReportService computes read only hiring reports
type ReportService interface {
	Overview(ctx context.Context) (*dto.ReportOverview, error)
	CandidatesByStatus(ctx context.Context) ([]dto.StatusShare, error)
	JobsByDepartment(ctx context.Context) ([]dto.DepartmentShare, error)
	InterviewTrends(ctx context.Context) ([]dto.InterviewTrend, error)
}

type reportServiceImpl struct {
	reportRepo repositories.IReportRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo repositories.IReportRepository, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Overview returns the funnel rates, source breakdown and recent activity
func (s *reportServiceImpl) Overview(ctx context.Context) (*dto.ReportOverview, error) {
	funnel, err := s.reportRepo.Funnel(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading funnel: %w", err)
	}
	days, err := s.reportRepo.AverageDaysToHire(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading time to hire: %w", err)
	}
	sources, err := s.reportRepo.ApplicationsBySource(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading application sources: %w", err)
	}
	activity, err := s.reportRepo.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("error loading recent activity: %w", err)
	}

	overview := &dto.ReportOverview{
		TotalApplications: funnel.Applications,
		InterviewRate:     helpers.Percentage(funnel.InterviewedApplicants, funnel.Applicants),
		HireRate:          helpers.Percentage(funnel.HiredApplicants, funnel.Applicants),
		TimeToHire:        helpers.RoundOneDecimal(days),
		SourceAnalysis:    make([]dto.SourceShare, 0, len(sources)),
		RecentActivity:    DescribeActivity(activity, s.now()),
	}
	total := sumCounts(sources)
	for _, src := range sources {
		overview.SourceAnalysis = append(overview.SourceAnalysis, dto.SourceShare{
			Source:     src.Label,
			Count:      src.Count,
			Percentage: helpers.Percentage(src.Count, total),
		})
	}
	return overview, nil
}

// DescribeActivity renders activity rows as feed items
func DescribeActivity(rows []repositories.ActivityRow, now time.Time) []dto.ActivityItem {
	items := make([]dto.ActivityItem, 0, len(rows))
	for _, r := range rows {
		var description string
		switch r.Kind {
		case repositories.ActivityApplication:
			description = fmt.Sprintf("%s applied for %s", r.CandidateName, r.JobTitle)
		case repositories.ActivityInterview:
			description = fmt.Sprintf("Interview scheduled with %s for %s", r.CandidateName, r.JobTitle)
		case repositories.ActivityShortlist:
			description = fmt.Sprintf("%s was shortlisted", r.CandidateName)
		default:
			continue
		}
		items = append(items, dto.ActivityItem{
			Type:        r.Kind,
			Description: description,
			Timestamp:   r.At,
			TimeAgo:     helpers.TimeAgo(r.At, now),
		})
	}
	return items
}

// CandidatesByStatus buckets candidates by pipeline status
func (s *reportServiceImpl) CandidatesByStatus(ctx context.Context) ([]dto.StatusShare, error) {
	rows, err := s.reportRepo.CandidatesByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading candidates by status: %w", err)
	}
	total := sumCounts(rows)
	out := make([]dto.StatusShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StatusShare{Status: r.Label, Count: r.Count, Percentage: helpers.Percentage(r.Count, total)})
	}
	return out, nil
}

// JobsByDepartment buckets jobs by department
func (s *reportServiceImpl) JobsByDepartment(ctx context.Context) ([]dto.DepartmentShare, error) {
	rows, err := s.reportRepo.JobsByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading jobs by department: %w", err)
	}
	total := sumCounts(rows)
	out := make([]dto.DepartmentShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DepartmentShare{Department: r.Label, Count: r.Count, Percentage: helpers.Percentage(r.Count, total)})
	}
	return out, nil
}

// InterviewTrends counts interviews per scheduled month, oldest first
func (s *reportServiceImpl) InterviewTrends(ctx context.Context) ([]dto.InterviewTrend, error) {
	rows, err := s.reportRepo.InterviewsByMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading interview trends: %w", err)
	}
	out := make([]dto.InterviewTrend, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.InterviewTrend{
			Month: r.Month.Format(trendMonthLayout),
			Year:  r.Month.Year(),
			Count: r.Count,
		})
	}
	return out, nil
}

func sumCounts(rows []repositories.LabelCount) int64 {
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	return total
}
