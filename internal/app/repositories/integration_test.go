//go:build integration

// Run with: RECRUITMENT_TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/app/repositories/
package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/migrations"
	"github.com/yigit/recruitment/internal/app/models"
)

func newIntegrationRepos(t *testing.T) (*Repositories, *pgxpool.Pool, string) {
	t.Helper()
	url := os.Getenv("RECRUITMENT_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("RECRUITMENT_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.NewMigrator(pool, zerolog.Nop()).MigrateFromDirectory(ctx, filepath.Join("..", "..", "..", "migrations")); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// Rows from earlier runs stay behind; a per-run suffix keeps lookups apart.
	return NewRepositories(pool), pool, fmt.Sprintf("%d", time.Now().UnixNano())
}

func TestSkillGetOrCreateIsCaseInsensitive(t *testing.T) {
	repos, _, suffix := newIntegrationRepos(t)
	ctx := context.Background()

	first, err := repos.SkillRepository.GetOrCreate(ctx, "Java"+suffix)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := repos.SkillRepository.GetOrCreate(ctx, "  java"+suffix+" ")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("ids = %d and %d, want the same skill", first.ID, second.ID)
	}
	if second.Name != "Java"+suffix {
		t.Errorf("name = %q, want the first spelling kept", second.Name)
	}
}

func TestListOpenFilters(t *testing.T) {
	repos, _, suffix := newIntegrationRepos(t)
	ctx := context.Background()

	skill, err := repos.SkillRepository.GetOrCreate(ctx, "Go"+suffix)
	if err != nil {
		t.Fatal(err)
	}
	city := "Springfield" + suffix
	seed := []models.Job{
		{Title: "Senior", MinExperience: "5+ years", Location: city + ", IL", Status: models.JobStatusOpen},
		{Title: "Any", MinExperience: "Not specified", Location: "North " + city, Status: models.JobStatusOpen},
		{Title: "Paused", MinExperience: "1 year", Location: city, Status: models.JobStatusOnHold},
		{Title: "Elsewhere", MinExperience: "1 year", Location: "Shelbyville" + suffix, Status: models.JobStatusOpen},
	}
	for i := range seed {
		job := seed[i]
		job.Department = "Engineering"
		job.Description = "integration"
		if err := repos.JobRepository.Create(ctx, &job, []int64{skill.ID}); err != nil {
			t.Fatalf("create job %q: %v", job.Title, err)
		}
	}

	zero := 0
	tests := []struct {
		name       string
		query      OpenJobsQuery
		wantTitles []string
	}{
		{name: "location substring ignores case and status", query: OpenJobsQuery{Location: strings.ToUpper(city)}, wantTitles: []string{"Any", "Senior"}},
		{name: "no digits counts as zero years", query: OpenJobsQuery{Location: city, MaxExperience: &zero}, wantTitles: []string{"Any"}},
		{name: "skill name ignores case", query: OpenJobsQuery{Location: city, Skills: []string{strings.ToLower("GO" + suffix)}}, wantTitles: []string{"Any", "Senior"}},
		{name: "paged", query: OpenJobsQuery{Location: city, Limit: 1, Offset: 1}, wantTitles: []string{"Senior"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, total, err := repos.JobRepository.ListOpen(ctx, tt.query)
			if err != nil {
				t.Fatalf("ListOpen: %v", err)
			}
			var titles []string
			for _, j := range jobs {
				if j.Status != models.JobStatusOpen {
					t.Errorf("job %q has status %s", j.Title, j.Status)
				}
				titles = append(titles, j.Title)
			}
			// newest first
			if strings.Join(titles, ",") != strings.Join(tt.wantTitles, ",") {
				t.Errorf("titles = %v, want %v", titles, tt.wantTitles)
			}
			if tt.query.Limit == 0 && total != int64(len(tt.wantTitles)) {
				t.Errorf("total = %d, want %d", total, len(tt.wantTitles))
			}
		})
	}
}

func TestInterviewCompletedAtSurvivesLeavingTerminal(t *testing.T) {
	repos, _, suffix := newIntegrationRepos(t)
	ctx := context.Background()

	user := &models.User{
		FullName:     "Integration Candidate",
		Email:        "candidate" + suffix + "@example.com",
		Username:     "candidate" + suffix,
		PasswordHash: "x",
		Roles:        []models.Role{models.RoleCandidate},
		Status:       models.UserStatusActive,
	}
	if err := repos.UserRepository.Create(ctx, user, true); err != nil {
		t.Fatalf("create user: %v", err)
	}
	candidate, err := repos.CandidateRepository.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("candidate: %v", err)
	}
	skill, err := repos.SkillRepository.GetOrCreate(ctx, "SQL"+suffix)
	if err != nil {
		t.Fatal(err)
	}
	job := &models.Job{Title: "Role " + suffix, Department: "Ops", Description: "d", MinExperience: "1", Location: "Remote", Status: models.JobStatusOpen}
	if err := repos.JobRepository.Create(ctx, job, []int64{skill.ID}); err != nil {
		t.Fatal(err)
	}

	interview := &models.Interview{
		CandidateID:   candidate.ID,
		JobID:         job.ID,
		ScheduledDate: time.Now().Add(24 * time.Hour),
		InterviewType: "Technical",
		RoundNo:       1,
		Status:        models.InterviewStatusScheduled,
	}
	if err := repos.InterviewRepository.Create(ctx, interview, nil); err != nil {
		t.Fatalf("create interview: %v", err)
	}

	stamp := time.Now().UTC().Truncate(time.Second)
	if err := repos.InterviewRepository.UpdateStatus(ctx, interview.ID, models.InterviewStatusSelected, stamp); err != nil {
		t.Fatal(err)
	}
	if err := repos.InterviewRepository.UpdateStatus(ctx, interview.ID, models.InterviewStatusScheduled, stamp.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	got, err := repos.InterviewRepository.GetByID(ctx, interview.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.InterviewStatusScheduled {
		t.Errorf("status = %s, want Scheduled", got.Status)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(stamp) {
		t.Errorf("completedAt = %v, want %v", got.CompletedAt, stamp)
	}
}

func TestEnsureForUserReadsExistingProfile(t *testing.T) {
	repos, pool, suffix := newIntegrationRepos(t)
	ctx := context.Background()

	withProfile := &models.User{FullName: "Has Profile", Email: "has" + suffix + "@example.com", Username: "has" + suffix,
		PasswordHash: "x", Roles: []models.Role{models.RoleCandidate}, Status: models.UserStatusActive}
	if err := repos.UserRepository.Create(ctx, withProfile, true); err != nil {
		t.Fatal(err)
	}
	existing, err := repos.CandidateRepository.GetByUserID(ctx, withProfile.ID)
	if err != nil {
		t.Fatal(err)
	}

	var before, after int64
	if err := pool.QueryRow(ctx, `SELECT last_value FROM candidates_id_seq`).Scan(&before); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		got, err := repos.CandidateRepository.EnsureForUser(ctx, withProfile.ID)
		if err != nil {
			t.Fatalf("EnsureForUser: %v", err)
		}
		if got.ID != existing.ID {
			t.Fatalf("EnsureForUser id = %d, want %d", got.ID, existing.ID)
		}
	}
	if err := pool.QueryRow(ctx, `SELECT last_value FROM candidates_id_seq`).Scan(&after); err != nil {
		t.Fatal(err)
	}
	// ON CONFLICT consumes a sequence value even when nothing is inserted.
	if after != before {
		t.Errorf("candidates_id_seq moved from %d to %d on reads", before, after)
	}

	staff := &models.User{FullName: "No Profile", Email: "none" + suffix + "@example.com", Username: "none" + suffix,
		PasswordHash: "x", Roles: []models.Role{models.RoleHR}, Status: models.UserStatusActive}
	if err := repos.UserRepository.Create(ctx, staff, false); err != nil {
		t.Fatal(err)
	}
	created, err := repos.CandidateRepository.EnsureForUser(ctx, staff.ID)
	if err != nil {
		t.Fatalf("EnsureForUser on first access: %v", err)
	}
	if created.UserID != staff.ID {
		t.Errorf("created profile belongs to user %d, want %d", created.UserID, staff.ID)
	}
}
