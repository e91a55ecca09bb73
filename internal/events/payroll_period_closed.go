package events

import "time"

const PayrollAuditTopic = "payroll.audit.v1"

type PayrollPeriodClosedEvent struct {
	EventType      string    `json:"event_type"`
	PeriodID       string    `json:"period_id"`
	PeriodStart    string    `json:"period_start"`
	PeriodEnd      string    `json:"period_end"`
	StatementCount int       `json:"statement_count"`
	ClosedByUserID string    `json:"closed_by_user_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
