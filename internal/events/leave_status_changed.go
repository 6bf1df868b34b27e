package events

import "time"

const LeaveStatusChangedTopic = "hr.leave.status.v1"

type LeaveStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	LeaveID      string    `json:"leave_id"`
	EmpProfileID string    `json:"emp_profile_id"`
	LeaveType    string    `json:"leave_type"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}
