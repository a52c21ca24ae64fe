package dto

import "time"

// ReportOverview summarizes hiring funnel performance
type ReportOverview struct {
	TotalApplications int64          `json:"totalApplications"`
	InterviewRate     float64        `json:"interviewRate"`
	HireRate          float64        `json:"hireRate"`
	TimeToHire        float64        `json:"timeToHire"`
	SourceAnalysis    []SourceShare  `json:"sourceAnalysis"`
	RecentActivity    []ActivityItem `json:"recentActivity"`
}

// SourceShare is the share of applications from one source
type SourceShare struct {
	Source     string  `json:"source"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ActivityItem is one entry of the recent activity feed
type ActivityItem struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	TimeAgo     string    `json:"timeAgo"`
}

// StatusShare is a candidate-status bucket
type StatusShare struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DepartmentShare is a job-department bucket
type DepartmentShare struct {
	Department string  `json:"department"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// InterviewTrend counts interviews scheduled in one month
type InterviewTrend struct {
	Month string `json:"month" example:"Jan 2025"`
	Year  int    `json:"year" example:"2025"`
	Count int64  `json:"count"`
}
