// Package notifier turns domain events into outgoing emails.
package notifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/pkg/email"
	"github.com/yigit/recruitment/internal/pkg/events"
)

// Dispatcher routes events to the email service.
type Dispatcher struct {
	mailer email.EmailService
	logger zerolog.Logger
}

// NewDispatcher creates a dispatcher
func NewDispatcher(mailer email.EmailService, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{mailer: mailer, logger: logger}
}

// Handle satisfies events.Handler. Unknown event types are acknowledged and ignored.
func (d *Dispatcher) Handle(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.TypeInterviewStatusChanged:
		var payload events.InterviewStatusChanged
		if err := event.Decode(&payload); err != nil {
			return err
		}
		if payload.CandidateEmail == "" {
			d.logger.Warn().Int64("interviewId", payload.InterviewID).Msg("Interview event without candidate email, skipping")
			return nil
		}
		if err := d.mailer.SendInterviewStatusEmail(payload.CandidateEmail, payload.CandidateName, payload.JobTitle, payload.Status); err != nil {
			return fmt.Errorf("send interview status email: %w", err)
		}
		d.logger.Info().Int64("interviewId", payload.InterviewID).Str("status", payload.Status).Msg("Interview status email sent")

	case events.TypeAccountDecided:
		var payload events.AccountDecided
		if err := event.Decode(&payload); err != nil {
			return err
		}
		if payload.Email == "" {
			d.logger.Warn().Int64("userId", payload.UserID).Msg("Account event without email, skipping")
			return nil
		}
		if err := d.mailer.SendAccountDecisionEmail(payload.Email, payload.FullName, payload.Approved); err != nil {
			return fmt.Errorf("send account decision email: %w", err)
		}
		d.logger.Info().Int64("userId", payload.UserID).Bool("approved", payload.Approved).Msg("Account decision email sent")

	default:
		d.logger.Debug().Str("type", event.Type).Msg("Ignoring unknown event type")
	}
	return nil
}
