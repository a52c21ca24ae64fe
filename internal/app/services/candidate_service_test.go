package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/filestorage"
	"github.com/yigit/recruitment/internal/pkg/helpers"
)

func newTestCandidateService(candidates *fakeCandidateRepo, jobs *fakeJobRepo) CandidateService {
	return NewCandidateService(candidates, jobs, nil, nil, nil,
		auth.NewAuthorizationService(candidates), filestorage.UploadLimits{}, "http://localhost", zerolog.Nop())
}

func TestApplyForJob(t *testing.T) {
	candidates := newFakeCandidateRepo(&models.Candidate{ID: 3, UserID: 30})
	jobs := newFakeJobRepo(
		&models.Job{ID: 1, Title: "Open role", Status: models.JobStatusOpen},
		&models.Job{ID: 2, Title: "Closed role", Status: models.JobStatusClosed},
	)
	svc := newTestCandidateService(candidates, jobs)
	p := auth.Principal{UserID: 30, Roles: []models.Role{models.RoleCandidate}}
	ctx := context.Background()

	applied, err := svc.ApplyForJob(ctx, p, 1, "")
	if err != nil || !applied {
		t.Fatalf("first application = %v, %v; want true", applied, err)
	}
	if src := candidates.applied[[2]int64{3, 1}]; src != models.DefaultApplicationSource {
		t.Errorf("source = %q, want default", src)
	}

	applied, err = svc.ApplyForJob(ctx, p, 1, "LinkedIn")
	if err != nil || applied {
		t.Fatalf("second application = %v, %v; want false", applied, err)
	}
	if len(candidates.applied) != 1 {
		t.Errorf("applications = %d, want 1", len(candidates.applied))
	}

	if _, err := svc.ApplyForJob(ctx, p, 2, ""); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("closed job: err = %v, want bad request", err)
	}
	if _, err := svc.ApplyForJob(ctx, p, 9, ""); !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("missing job: err = %v, want job not found", err)
	}
}

func TestApplyForJobCreatesProfile(t *testing.T) {
	candidates := newFakeCandidateRepo()
	jobs := newFakeJobRepo(&models.Job{ID: 1, Status: models.JobStatusOpen})
	svc := newTestCandidateService(candidates, jobs)

	applied, err := svc.ApplyForJob(context.Background(), auth.Principal{UserID: 44}, 1, "Referral")
	if err != nil || !applied {
		t.Fatalf("ApplyForJob = %v, %v", applied, err)
	}
	if _, err := candidates.GetByUserID(context.Background(), 44); err != nil {
		t.Error("candidate profile should have been created")
	}
}

func TestGetOpenJobsPassesFiltersAndPages(t *testing.T) {
	two := 2
	tests := []struct {
		name       string
		filter     dto.JobFilter
		total      int64
		wantOffset uint64
		wantLimit  int
		wantPages  int
	}{
		{name: "first page", filter: dto.JobFilter{Page: 1, PageSize: 10}, total: 4, wantOffset: 0, wantLimit: 10, wantPages: 1},
		{name: "second page", filter: dto.JobFilter{Page: 2, PageSize: 3}, total: 4, wantOffset: 3, wantLimit: 3, wantPages: 2},
		{name: "oversized page falls back to default", filter: dto.JobFilter{Page: 1, PageSize: 1000}, total: 25, wantOffset: 0, wantLimit: helpers.DefaultPageSize, wantPages: 3},
		{name: "experience and location", filter: dto.JobFilter{Page: 1, PageSize: 5, Experience: &two, Location: "york", Skills: []string{"Go"}}, total: 1, wantOffset: 0, wantLimit: 5, wantPages: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := newFakeJobRepo()
			jobs.open = []*models.Job{{ID: 7, Status: models.JobStatusOpen}}
			jobs.openTotal = tt.total
			svc := newTestCandidateService(newFakeCandidateRepo(), jobs)

			got, page, err := svc.GetOpenJobs(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("GetOpenJobs returned error: %v", err)
			}
			if len(got) != 1 || got[0].ID != 7 {
				t.Errorf("jobs = %+v", got)
			}

			q := jobs.openQuery
			if q.Offset != tt.wantOffset || q.Limit != tt.wantLimit {
				t.Errorf("offset/limit = %d/%d, want %d/%d", q.Offset, q.Limit, tt.wantOffset, tt.wantLimit)
			}
			if q.MaxExperience != tt.filter.Experience || q.Location != tt.filter.Location || len(q.Skills) != len(tt.filter.Skills) {
				t.Errorf("query = %+v, filter = %+v", q, tt.filter)
			}
			if page.TotalItems != tt.total || page.TotalPages != tt.wantPages || page.PageSize != tt.wantLimit {
				t.Errorf("pagination = %+v", page)
			}
		})
	}
}
