package repositories

import (
	"strings"
	"testing"

	"github.com/yigit/recruitment/internal/app/models"
)

func TestOpenJobsQueries(t *testing.T) {
	three := 3

	tests := []struct {
		name         string
		query        OpenJobsQuery
		wantInWhere  []string
		wantArgs     []interface{}
		wantPageTail string
	}{
		{
			name:         "status only",
			query:        OpenJobsQuery{Limit: 10},
			wantInWhere:  []string{"j.status = $1"},
			wantArgs:     []interface{}{models.JobStatusOpen},
			wantPageTail: "LIMIT 10 OFFSET 0",
		},
		{
			name:         "location is a case-insensitive substring",
			query:        OpenJobsQuery{Location: " New_York ", Offset: 20, Limit: 10},
			wantInWhere:  []string{"j.status = $1", "j.location ILIKE $2"},
			wantArgs:     []interface{}{models.JobStatusOpen, `%New\_York%`},
			wantPageTail: "LIMIT 10 OFFSET 20",
		},
		{
			name:         "experience compares the first number in min_experience",
			query:        OpenJobsQuery{MaxExperience: &three, Limit: 5},
			wantInWhere:  []string{minExperienceYears + " <= $2"},
			wantArgs:     []interface{}{models.JobStatusOpen, 3},
			wantPageTail: "LIMIT 5 OFFSET 0",
		},
		{
			name:        "skills match by lower-cased name",
			query:       OpenJobsQuery{Skills: []string{"Go", " React"}, Limit: 10},
			wantInWhere: []string{"EXISTS (SELECT 1 FROM job_skills js JOIN skills s ON s.id = js.skill_id", "LOWER(s.name) IN ($2,$3)"},
			wantArgs:    []interface{}{models.JobStatusOpen, "go", "react"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, count, err := openJobsQueries(tt.query)
			if err != nil {
				t.Fatalf("openJobsQueries returned error: %v", err)
			}

			pageSQL, pageArgs, err := page.ToSql()
			if err != nil {
				t.Fatal(err)
			}
			countSQL, countArgs, err := count.ToSql()
			if err != nil {
				t.Fatal(err)
			}

			for _, fragment := range tt.wantInWhere {
				if !strings.Contains(pageSQL, fragment) {
					t.Errorf("page SQL missing %q:\n%s", fragment, pageSQL)
				}
				if !strings.Contains(countSQL, fragment) {
					t.Errorf("count SQL missing %q:\n%s", fragment, countSQL)
				}
			}
			if !strings.HasPrefix(countSQL, "SELECT COUNT(*) FROM jobs j WHERE") {
				t.Errorf("count SQL = %s", countSQL)
			}
			if tt.wantPageTail != "" && !strings.HasSuffix(pageSQL, tt.wantPageTail) {
				t.Errorf("page SQL should end with %q:\n%s", tt.wantPageTail, pageSQL)
			}

			if len(pageArgs) != len(tt.wantArgs) || len(countArgs) != len(tt.wantArgs) {
				t.Fatalf("args = %v / %v, want %v", pageArgs, countArgs, tt.wantArgs)
			}
			for i, want := range tt.wantArgs {
				if pageArgs[i] != want || countArgs[i] != want {
					t.Errorf("arg[%d] = %v / %v, want %v", i, pageArgs[i], countArgs[i], want)
				}
			}
		})
	}
}
