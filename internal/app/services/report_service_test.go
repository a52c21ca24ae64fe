package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/repositories"
)

type fakeReportRepo struct {
	repositories.IReportRepository
	funnel   repositories.FunnelCounts
	days     float64
	sources  []repositories.LabelCount
	activity []repositories.ActivityRow
	statuses []repositories.LabelCount
	months   []repositories.MonthCount
}

func (r *fakeReportRepo) Funnel(context.Context) (*repositories.FunnelCounts, error) {
	f := r.funnel
	return &f, nil
}

func (r *fakeReportRepo) AverageDaysToHire(context.Context) (float64, error) { return r.days, nil }

func (r *fakeReportRepo) ApplicationsBySource(context.Context) ([]repositories.LabelCount, error) {
	return r.sources, nil
}

func (r *fakeReportRepo) RecentActivity(context.Context, int) ([]repositories.ActivityRow, error) {
	return r.activity, nil
}

func (r *fakeReportRepo) CandidatesByStatus(context.Context) ([]repositories.LabelCount, error) {
	return r.statuses, nil
}

func (r *fakeReportRepo) InterviewsByMonth(context.Context) ([]repositories.MonthCount, error) {
	return r.months, nil
}

func TestReportOverview(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		funnel: repositories.FunnelCounts{Applications: 12, Applicants: 3, InterviewedApplicants: 2, HiredApplicants: 1},
		days:   4.26,
		sources: []repositories.LabelCount{
			{Label: "LinkedIn", Count: 2},
			{Label: "Company Website", Count: 1},
		},
		activity: []repositories.ActivityRow{
			{Kind: repositories.ActivityApplication, CandidateName: "Ann", JobTitle: "QA", At: now.Add(-2 * time.Hour)},
			{Kind: repositories.ActivityInterview, CandidateName: "Bob", JobTitle: "Ops", At: now.Add(-time.Minute)},
			{Kind: repositories.ActivityShortlist, CandidateName: "Cy", At: now.Add(-48 * time.Hour)},
		},
	}
	svc := NewReportService(repo, zerolog.Nop()).(*reportServiceImpl)
	svc.now = func() time.Time { return now }

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if got.TotalApplications != 12 {
		t.Errorf("TotalApplications = %d, want 12", got.TotalApplications)
	}
	if got.InterviewRate != 66.7 {
		t.Errorf("InterviewRate = %v, want 66.7", got.InterviewRate)
	}
	if got.HireRate != 33.3 {
		t.Errorf("HireRate = %v, want 33.3", got.HireRate)
	}
	if got.TimeToHire != 4.3 {
		t.Errorf("TimeToHire = %v, want 4.3", got.TimeToHire)
	}
	if len(got.SourceAnalysis) != 2 || got.SourceAnalysis[0].Percentage != 66.7 {
		t.Errorf("SourceAnalysis = %+v", got.SourceAnalysis)
	}

	wantDescriptions := []string{
		"Ann applied for QA",
		"Interview scheduled with Bob for Ops",
		"Cy was shortlisted",
	}
	if len(got.RecentActivity) != len(wantDescriptions) {
		t.Fatalf("RecentActivity len = %d", len(got.RecentActivity))
	}
	for i, want := range wantDescriptions {
		if got.RecentActivity[i].Description != want {
			t.Errorf("activity[%d] = %q, want %q", i, got.RecentActivity[i].Description, want)
		}
		if got.RecentActivity[i].TimeAgo == "" {
			t.Errorf("activity[%d] has empty timeAgo", i)
		}
	}
}

func TestReportOverviewEmpty(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, zerolog.Nop())
	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if got.InterviewRate != 0 || got.HireRate != 0 || got.TimeToHire != 0 {
		t.Errorf("empty store should give zero rates, got %+v", got)
	}
	if got.SourceAnalysis == nil || got.RecentActivity == nil {
		t.Error("lists should be empty, not nil")
	}
}

func TestCandidatesByStatusPercentages(t *testing.T) {
	repo := &fakeReportRepo{statuses: []repositories.LabelCount{
		{Label: "Applied", Count: 5},
		{Label: "Selected", Count: 2},
		{Label: "Rejected", Count: 1},
	}}
	got, err := NewReportService(repo, zerolog.Nop()).CandidatesByStatus(context.Background())
	if err != nil {
		t.Fatalf("CandidatesByStatus returned error: %v", err)
	}
	want := []float64{62.5, 25, 12.5}
	for i, w := range want {
		if got[i].Percentage != w {
			t.Errorf("%s percentage = %v, want %v", got[i].Status, got[i].Percentage, w)
		}
	}
}

func TestInterviewTrendsLabels(t *testing.T) {
	repo := &fakeReportRepo{months: []repositories.MonthCount{
		{Month: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), Count: 3},
		{Month: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Count: 7},
	}}
	got, err := NewReportService(repo, zerolog.Nop()).InterviewTrends(context.Background())
	if err != nil {
		t.Fatalf("InterviewTrends returned error: %v", err)
	}
	if got[0].Month != "Dec 2024" || got[0].Year != 2024 || got[1].Month != "Jan 2025" || got[1].Count != 7 {
		t.Errorf("unexpected trends %+v", got)
	}
}
