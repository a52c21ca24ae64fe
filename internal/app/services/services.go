// Package services holds the business rules between the HTTP controllers and the repositories.
//
// Services defined in this package:
//   - AuthService: login, registration and the current user
//   - UserService: admin account approval and deletion
//   - CandidateService: candidate profiles, open jobs, applications and documents
//   - JobService, SkillService: job postings and the shared skill catalogue
//   - InterviewService: scheduling, status lifecycle and feedback
//   - NotificationService: per-user notifications with live websocket push
//   - OfferService: job offers
//   - DashboardService, ReportService: read-only aggregates
package services

import (
	"context"
	"time"
)

// sideEffectTimeout bounds each best-effort action that follows a committed write.
const sideEffectTimeout = 5 * time.Second

// detached returns a context that survives the request being cancelled, so side effects
// started after a commit are not cut off when the client disconnects.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
}
