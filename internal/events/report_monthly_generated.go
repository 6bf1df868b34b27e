package events

import "time"

const ReportMonthlyGeneratedTopic = "hr.report.monthly.v1"

type ReportMonthlyGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	EmployeeCount int       `json:"employee_count"`
	GeneratedBy   string    `json:"generated_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
