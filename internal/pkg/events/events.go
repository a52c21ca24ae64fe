// Package events carries domain events from the API to background workers over RabbitMQ.
package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types
const (
	TypeInterviewStatusChanged = "interview.status_changed"
	TypeAccountDecided         = "account.decided"
)

// Event is the envelope published to the queue.
type Event struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// InterviewStatusChanged is published after an interview status update commits.
type InterviewStatusChanged struct {
	InterviewID     int64  `json:"interviewId"`
	CandidateUserID int64  `json:"candidateUserId"`
	CandidateName   string `json:"candidateName"`
	CandidateEmail  string `json:"candidateEmail"`
	JobTitle        string `json:"jobTitle"`
	Status          string `json:"status"`
}

// AccountDecided is published when an admin approves or rejects a staff registration.
type AccountDecided struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Approved bool   `json:"approved"`
}

// NewEvent wraps a payload in an envelope.
func NewEvent(eventType string, payload interface{}) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Data: data}, nil
}

// Decode unmarshals the event payload into out.
func (e Event) Decode(out interface{}) error {
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}
