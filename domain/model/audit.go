package model

import "time"

type AuditEventType string

const (
	AuditUserSaved      AuditEventType = "user_saved"
	AuditAccessRecorded AuditEventType = "access_recorded"
	AuditSearchLogged   AuditEventType = "search_logged"
)

// AuditEvent is published after the matching row has been committed.
type AuditEvent struct {
	Type       AuditEventType `json:"type"`
	UserID     uint           `json:"user_id"`
	Tag        string         `json:"tag,omitempty"`
	Query      string         `json:"query,omitempty"`
	MaxResults int            `json:"max_results,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
