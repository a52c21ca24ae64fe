package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/yigit/recruitment/internal/app/models"
)

func TestBuildPendingTasks(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	interviews := []*models.Interview{
		{ID: 1, CandidateName: "Ann", JobTitle: "QA", InterviewType: "Technical", RoundNo: 2, ScheduledDate: now.Add(-time.Hour)},
		{ID: 2, CandidateName: "Bob", JobTitle: "Ops", InterviewType: "HR", RoundNo: 1, ScheduledDate: now.Add(3 * time.Hour)},
	}
	users := []*models.User{
		{ID: 9, FullName: "Pat Pending", CreatedAt: now.Add(-6 * 24 * time.Hour)},
	}

	tasks := BuildPendingTasks(interviews, users, now, "Interviewer")
	if len(tasks) != 3 {
		t.Fatalf("len(tasks) = %d, want 3", len(tasks))
	}

	overdue := tasks[0]
	if overdue.ID != "interview-1" || overdue.Priority != "High" {
		t.Errorf("first task = %+v, want overdue interview with High priority", overdue)
	}
	if overdue.Title != "Interview with Ann" || overdue.Description != "Technical Round 2 for QA" {
		t.Errorf("unexpected text %q / %q", overdue.Title, overdue.Description)
	}
	if tasks[1].ID != "interview-2" || tasks[1].Priority != "Medium" {
		t.Errorf("second task = %+v, want upcoming interview with Medium priority", tasks[1])
	}

	approval := tasks[2]
	if approval.ID != "user-9" || approval.Type != "Approval" || approval.AssignedTo != "Admin" {
		t.Errorf("approval task = %+v", approval)
	}
	if want := users[0].CreatedAt.Add(7 * 24 * time.Hour); !approval.DueDate.Equal(want) {
		t.Errorf("approval due = %v, want %v", approval.DueDate, want)
	}
	if approval.Title != "Approve user: Pat Pending" {
		t.Errorf("approval title = %q", approval.Title)
	}
}

func TestBuildPendingTasksCapsAtTen(t *testing.T) {
	now := time.Now()
	var interviews []*models.Interview
	for i := 15; i > 0; i-- {
		interviews = append(interviews, &models.Interview{ID: int64(i), ScheduledDate: now.Add(time.Duration(i) * time.Minute)})
	}

	tasks := BuildPendingTasks(interviews, nil, now, "You")
	if len(tasks) != 10 {
		t.Fatalf("len(tasks) = %d, want 10", len(tasks))
	}
	for i, task := range tasks {
		if want := fmt.Sprintf("interview-%d", i+1); task.ID != want {
			t.Errorf("tasks[%d].ID = %s, want %s", i, task.ID, want)
		}
		if task.AssignedTo != "You" {
			t.Errorf("tasks[%d].AssignedTo = %q, want You", i, task.AssignedTo)
		}
	}
}

func TestCandidateOffersFoldsSelectedInterviews(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	completed := base.Add(48 * time.Hour)
	offers := []*models.Offer{
		{ID: 1, JobTitle: "QA", OfferDate: base, Status: models.OfferStatusOffered},
	}
	selected := []*models.Interview{
		{ID: 10, JobTitle: "Ops", ScheduledDate: base.Add(time.Hour)},
		{ID: 11, JobTitle: "Dev", ScheduledDate: base, CompletedAt: &completed},
	}

	got := CandidateOffers(offers, selected)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != 1 || got[0].Status != "Offered" {
		t.Errorf("real offer should come first, got %+v", got[0])
	}
	if got[1].ID != 11 || !got[1].OfferDate.Equal(completed) || got[1].Status != "Selected" {
		t.Errorf("latest completed interview should follow, got %+v", got[1])
	}
	if got[2].ID != 10 || !got[2].OfferDate.Equal(base.Add(time.Hour)) {
		t.Errorf("interview without completedAt uses scheduled date, got %+v", got[2])
	}
	if got[2].JoiningDate != nil {
		t.Error("synthetic offers carry no joining date")
	}
}

func TestCandidateOffersLimitsSynthetic(t *testing.T) {
	var selected []*models.Interview
	for i := 0; i < 8; i++ {
		selected = append(selected, &models.Interview{ID: int64(i), ScheduledDate: time.Now()})
	}
	if got := CandidateOffers(nil, selected); len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}
