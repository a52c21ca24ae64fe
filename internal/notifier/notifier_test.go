package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/pkg/events"
)

type sentMail struct {
	kind     string
	to       string
	name     string
	jobTitle string
	status   string
	approved bool
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendInterviewStatusEmail(toEmail, toName, jobTitle, status string) error {
	f.sent = append(f.sent, sentMail{kind: "interview", to: toEmail, name: toName, jobTitle: jobTitle, status: status})
	return f.err
}

func (f *fakeMailer) SendAccountDecisionEmail(toEmail, toName string, approved bool) error {
	f.sent = append(f.sent, sentMail{kind: "account", to: toEmail, name: toName, approved: approved})
	return f.err
}

func mustEvent(t *testing.T, eventType string, payload interface{}) events.Event {
	t.Helper()
	e, err := events.NewEvent(eventType, payload)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestHandleRoutesEvents(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
		want  []sentMail
	}{
		{
			name: "interview status",
			event: mustEvent(t, events.TypeInterviewStatusChanged, events.InterviewStatusChanged{
				InterviewID: 4, CandidateName: "Jane", CandidateEmail: "jane@example.com", JobTitle: "Go Developer", Status: "Completed",
			}),
			want: []sentMail{{kind: "interview", to: "jane@example.com", name: "Jane", jobTitle: "Go Developer", status: "Completed"}},
		},
		{
			name:  "account approved",
			event: mustEvent(t, events.TypeAccountDecided, events.AccountDecided{UserID: 2, FullName: "Bob", Email: "bob@example.com", Approved: true}),
			want:  []sentMail{{kind: "account", to: "bob@example.com", name: "Bob", approved: true}},
		},
		{
			name:  "interview without email is skipped",
			event: mustEvent(t, events.TypeInterviewStatusChanged, events.InterviewStatusChanged{InterviewID: 5, Status: "Scheduled"}),
		},
		{
			name:  "unknown type is ignored",
			event: mustEvent(t, "offer.created", map[string]int{"id": 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			d := NewDispatcher(mailer, zerolog.Nop())

			if err := d.Handle(context.Background(), tt.event); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if len(mailer.sent) != len(tt.want) {
				t.Fatalf("sent %d mails, want %d", len(mailer.sent), len(tt.want))
			}
			for i := range tt.want {
				if mailer.sent[i] != tt.want[i] {
					t.Errorf("mail[%d] = %+v, want %+v", i, mailer.sent[i], tt.want[i])
				}
			}
		})
	}
}

func TestHandleReturnsMailerError(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	d := NewDispatcher(mailer, zerolog.Nop())

	event := mustEvent(t, events.TypeAccountDecided, events.AccountDecided{UserID: 1, Email: "a@example.com"})
	if err := d.Handle(context.Background(), event); err == nil {
		t.Fatal("expected error when the mailer fails")
	}
}

func TestHandleRejectsMalformedPayload(t *testing.T) {
	d := NewDispatcher(&fakeMailer{}, zerolog.Nop())

	event := events.Event{Type: events.TypeInterviewStatusChanged, Data: json.RawMessage(`"not an object"`)}
	if err := d.Handle(context.Background(), event); err == nil {
		t.Fatal("expected decode error")
	}
}
