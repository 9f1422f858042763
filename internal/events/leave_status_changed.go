package events

import "time"

const LeaveStatusChangedTopic = "rota.leave.lifecycle.v1"

type LeaveStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	LeaveRequestID uint      `json:"leave_request_id"`
	EmployeeID     uint      `json:"employee_id"`
	FromStatus     string    `json:"from_status"`
	ToStatus       string    `json:"to_status"`
	ActorUserID    uint      `json:"actor_user_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
