package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/recruitment/internal/app/models"
	appRepos "github.com/yigit/recruitment/internal/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

type defaultUser struct {
	fullName string
	email    string
	username string
	password string
	role     appModels.Role
}

// One active account per role. Passwords are demo credentials for local environments.
var defaultUsers = []defaultUser{
	{"System Administrator", "admin@recruitmentsystem.com", "admin", "admin123", appModels.RoleAdmin},
	{"HR Manager", "hr@recruitment.com", "hr", "hr123", appModels.RoleHR},
	{"Senior Recruiter", "recruiter@recruitment.com", "recruiter", "recruiter123", appModels.RoleRecruiter},
	{"Technical Interviewer", "interviewer@recruitment.com", "interviewer", "interviewer123", appModels.RoleInterviewer},
	{"CV Reviewer", "reviewer@recruitment.com", "reviewer", "reviewer123", appModels.RoleReviewer},
	{"John Doe", "candidate@recruitment.com", "candidate", "candidate123", appModels.RoleCandidate},
}

var defaultSkills = []string{"Go", "JavaScript", "React", "Node.js", "SQL", "Azure", "Docker", "Git", "Agile", "Communication"}

type defaultJob struct {
	job    appModels.Job
	skills []string
}

var defaultJobs = []defaultJob{
	{
		job: appModels.Job{
			Title:         "Senior Software Engineer",
			Department:    "Engineering",
			Description:   "We are looking for a senior software engineer with 5+ years of experience in Go and React.",
			MinExperience: "5 years",
			Location:      "New York, NY",
			Status:        appModels.JobStatusOpen,
		},
		skills: []string{"Go", "React", "SQL"},
	},
	{
		job: appModels.Job{
			Title:         "Full Stack Developer",
			Department:    "Engineering",
			Description:   "Full stack developer position with experience in JavaScript, Node.js, and React.",
			MinExperience: "3 years",
			Location:      "San Francisco, CA",
			Status:        appModels.JobStatusOpen,
		},
		skills: []string{"JavaScript", "Node.js", "React"},
	},
	{
		job: appModels.Job{
			Title:         "DevOps Engineer",
			Department:    "Operations",
			Description:   "DevOps engineer with experience in Azure, Docker, and CI/CD pipelines.",
			MinExperience: "4 years",
			Location:      "Seattle, WA",
			Status:        appModels.JobStatusOnHold,
		},
		skills: []string{"Azure", "Docker", "Git"},
	},
}

// CreateDefaultData creates the demo accounts, the skill catalogue and a few jobs.
// It only runs when the admin account does not exist yet, so it is safe to call on every start.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	exists, err := repos.UserRepository.UsernameExists(ctx, "admin")
	if err != nil {
		return fmt.Errorf("error checking if admin user exists: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Default data already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating default data (users, skills, jobs)...")
	var finalErr error // collect errors without stopping the process

	var recruiterID *int64
	for _, du := range defaultUsers {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Str("username", du.username).Msg("Error hashing default password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		u := &appModels.User{
			FullName:     du.fullName,
			Email:        du.email,
			Username:     du.username,
			PasswordHash: string(hashedPassword),
			Roles:        []appModels.Role{du.role},
			Status:       appModels.UserStatusActive,
		}
		if err := repos.UserRepository.Create(ctx, u, du.role == appModels.RoleCandidate); err != nil {
			lgr.Error().Err(err).Str("username", du.username).Msg("Error creating default user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if du.role == appModels.RoleRecruiter {
			id := u.ID
			recruiterID = &id
		}
	}

	skillIDs := make(map[string]int64, len(defaultSkills))
	for _, name := range defaultSkills {
		skill, err := repos.SkillRepository.GetOrCreate(ctx, name)
		if err != nil {
			lgr.Error().Err(err).Str("skill", name).Msg("Error creating default skill")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		skillIDs[name] = skill.ID
	}

	for _, dj := range defaultJobs {
		job := dj.job
		job.CreatedBy = recruiterID

		ids := make([]int64, 0, len(dj.skills))
		for _, name := range dj.skills {
			if id, ok := skillIDs[name]; ok {
				ids = append(ids, id)
			}
		}
		if err := repos.JobRepository.Create(ctx, &job, ids); err != nil {
			lgr.Error().Err(err).Str("title", job.Title).Msg("Error creating default job")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("users", len(defaultUsers)).Int("jobs", len(defaultJobs)).Msg("Default data created")
	}
	return finalErr
}
