package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
)

func TestCreateJobSkills(t *testing.T) {
	base := dto.CreateJobRequest{
		Title:         "Backend Engineer",
		Department:    "Engineering",
		Description:   "APIs",
		MinExperience: "3 years",
		Location:      "Remote",
	}
	tests := []struct {
		name     string
		skillIDs []int64
		want     error
		stored   []int64
	}{
		{name: "dedups ids", skillIDs: []int64{1, 2, 1}, stored: []int64{1, 2}},
		{name: "no skills", skillIDs: nil, want: apperrors.ErrValidationFailed},
		{name: "only invalid ids", skillIDs: []int64{0, -3}, want: apperrors.ErrValidationFailed},
		{name: "unknown skill", skillIDs: []int64{1, 99}, want: apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := newFakeJobRepo()
			svc := NewJobService(jobs, &fakeSkillRepo{existing: map[int64]bool{1: true, 2: true}}, newFakeCandidateRepo(), zerolog.Nop())
			req := base
			req.SkillIDs = tt.skillIDs

			resp, err := svc.Create(context.Background(), auth.Principal{UserID: 6}, &req)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if resp.Status != "Open" {
				t.Errorf("status = %q, want Open", resp.Status)
			}
			if len(jobs.created) != len(tt.stored) {
				t.Fatalf("stored skills = %v, want %v", jobs.created, tt.stored)
			}
			for i := range tt.stored {
				if jobs.created[i] != tt.stored[i] {
					t.Errorf("stored skills = %v, want %v", jobs.created, tt.stored)
				}
			}
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	got := uniqueIDs([]int64{3, 0, 3, 1, -1, 2, 1})
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("uniqueIDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("uniqueIDs = %v, want %v", got, want)
		}
	}
}

func TestUpdateJob(t *testing.T) {
	reason := "Position filled"
	blank := "   "
	missingCandidate := int64(404)

	base := dto.UpdateJobRequest{
		Title:         "Backend Engineer",
		Department:    "Engineering",
		Description:   "APIs",
		MinExperience: "3 years",
		Location:      "Remote",
		Status:        "Open",
	}

	tests := []struct {
		name       string
		mutate     func(r *dto.UpdateJobRequest)
		want       error
		wantSkills []int64
	}{
		{name: "keeps skill links when none are sent"},
		{name: "patches to the requested skills", mutate: func(r *dto.UpdateJobRequest) { r.SkillIDs = []int64{2, 2, 1} }, wantSkills: []int64{2, 1}},
		{name: "empty skill list is rejected", mutate: func(r *dto.UpdateJobRequest) { r.SkillIDs = []int64{} }, want: apperrors.ErrValidationFailed},
		{name: "unknown skill", mutate: func(r *dto.UpdateJobRequest) { r.SkillIDs = []int64{1, 50} }, want: apperrors.ErrValidationFailed},
		{name: "closed without reason", mutate: func(r *dto.UpdateJobRequest) { r.Status = "Closed" }, want: apperrors.ErrValidationFailed},
		{name: "closed with blank reason", mutate: func(r *dto.UpdateJobRequest) { r.Status = "Closed"; r.ClosedReason = &blank }, want: apperrors.ErrValidationFailed},
		{name: "closed with reason", mutate: func(r *dto.UpdateJobRequest) { r.Status = "Closed"; r.ClosedReason = &reason }},
		{name: "unknown status", mutate: func(r *dto.UpdateJobRequest) { r.Status = "Archived" }, want: apperrors.ErrValidationFailed},
		{name: "selected candidate must exist", mutate: func(r *dto.UpdateJobRequest) { r.SelectedCandidateID = &missingCandidate }, want: apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := newFakeJobRepo(&models.Job{ID: 5, Title: "Old", Status: models.JobStatusOpen})
			svc := NewJobService(jobs, &fakeSkillRepo{existing: map[int64]bool{1: true, 2: true}}, newFakeCandidateRepo(), zerolog.Nop())
			req := base
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			resp, err := svc.Update(context.Background(), 5, &req)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
				if jobs.updated != nil {
					t.Error("repository should not be written on a rejected update")
				}
				return
			}
			if err != nil {
				t.Fatalf("Update returned error: %v", err)
			}
			if resp.Title != "Backend Engineer" || resp.Status != req.Status {
				t.Errorf("response = %+v", resp)
			}
			if !reflect.DeepEqual(jobs.updatedIDs, tt.wantSkills) {
				t.Errorf("skill ids passed = %#v, want %#v", jobs.updatedIDs, tt.wantSkills)
			}
			if req.Status == "Closed" && (jobs.updated.ClosedReason == nil || *jobs.updated.ClosedReason != reason) {
				t.Errorf("closed reason = %v", jobs.updated.ClosedReason)
			}
		})
	}
}

func TestUpdateMissingJob(t *testing.T) {
	svc := NewJobService(newFakeJobRepo(), &fakeSkillRepo{}, newFakeCandidateRepo(), zerolog.Nop())
	_, err := svc.Update(context.Background(), 9, &dto.UpdateJobRequest{Title: "x"})
	if !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Errorf("err = %v, want job not found", err)
	}
}
