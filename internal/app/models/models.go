package models

import "strings"

// Role is a member of a user's role set, stored one row per role in user_roles.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleHR          Role = "HR"
	RoleRecruiter   Role = "Recruiter"
	RoleInterviewer Role = "Interviewer"
	RoleReviewer    Role = "Reviewer"
	RoleCandidate   Role = "Candidate"
)

// AllRoles lists every role the system knows about.
var AllRoles = []Role{RoleAdmin, RoleHR, RoleRecruiter, RoleInterviewer, RoleReviewer, RoleCandidate}

// StaffRoles are the roles allowed to work the hiring pipeline.
var StaffRoles = []Role{RoleAdmin, RoleHR, RoleRecruiter, RoleInterviewer, RoleReviewer}

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, bool) {
	for _, r := range AllRoles {
		if strings.EqualFold(string(r), strings.TrimSpace(name)) {
			return r, true
		}
	}
	return "", false
}

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	UserStatusActive          UserStatus = "Active"
	UserStatusPendingApproval UserStatus = "PendingApproval"
	UserStatusRejected        UserStatus = "Rejected"
	UserStatusSuspended       UserStatus = "Suspended"
)

// CandidateStatus is the overall pipeline status of a candidate.
type CandidateStatus string

const (
	CandidateStatusApplied     CandidateStatus = "Applied"
	CandidateStatusShortlisted CandidateStatus = "Shortlisted"
	CandidateStatusInterview   CandidateStatus = "Interview"
	CandidateStatusSelected    CandidateStatus = "Selected"
	CandidateStatusRejected    CandidateStatus = "Rejected"
	CandidateStatusOnHold      CandidateStatus = "On Hold"
)

// CandidateStatuses in pipeline order.
var CandidateStatuses = []CandidateStatus{
	CandidateStatusApplied,
	CandidateStatusShortlisted,
	CandidateStatusInterview,
	CandidateStatusSelected,
	CandidateStatusRejected,
	CandidateStatusOnHold,
}

// Valid reports whether s is a known candidate status.
func (s CandidateStatus) Valid() bool {
	for _, v := range CandidateStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// JobStatus is the publication state of a job.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusOnHold JobStatus = "OnHold"
	JobStatusClosed JobStatus = "Closed"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusOnHold, JobStatusClosed:
		return true
	}
	return false
}

// InterviewStatus is the state of one interview round. Any status may follow any other.
type InterviewStatus string

const (
	InterviewStatusScheduled      InterviewStatus = "Scheduled"
	InterviewStatusOtherInterview InterviewStatus = "Other Interview"
	InterviewStatusSelected       InterviewStatus = "Selected"
	InterviewStatusRejected       InterviewStatus = "Rejected"
	InterviewStatusCancelled      InterviewStatus = "Cancelled"
)

// Valid reports whether s is a known interview status.
func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusOtherInterview, InterviewStatusSelected,
		InterviewStatusRejected, InterviewStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether entering s stamps the interview's completion time.
func (s InterviewStatus) IsTerminal() bool {
	return s == InterviewStatusSelected || s == InterviewStatusRejected
}

// OfferStatus is the state of a job offer.
type OfferStatus string

const (
	OfferStatusOffered  OfferStatus = "Offered"
	OfferStatusAccepted OfferStatus = "Accepted"
	OfferStatusRejected OfferStatus = "Rejected"
	OfferStatusJoined   OfferStatus = "Joined"
)

// Valid reports whether s is a known offer status.
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusOffered, OfferStatusAccepted, OfferStatusRejected, OfferStatusJoined:
		return true
	}
	return false
}
