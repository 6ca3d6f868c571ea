package model

import (
	"encoding/json"
	"strings"
)

// ActionKind is the operation verb an audit action is prefixed with.
type ActionKind string

const (
	ActionDelete ActionKind = "DELETE"
	ActionCreate ActionKind = "CREATE"
	ActionUpdate ActionKind = "UPDATE"
	ActionLogin  ActionKind = "LOGIN"
	ActionLogout ActionKind = "LOGOUT"
	ActionOther  ActionKind = "OTHER"
)

// checked in this order; the first verb found in the action wins
var actionKinds = []ActionKind{ActionDelete, ActionCreate, ActionUpdate, ActionLogin, ActionLogout}

// AuditLog is a read-only entry from GET /admin/logs.
type AuditLog struct {
	ID        string          `json:"id"`
	UserID    *string         `json:"userId"`
	Action    string          `json:"action"`
	Entity    *string         `json:"entity"`
	EntityID  *string         `json:"entityId"`
	Changes   json.RawMessage `json:"changes,omitempty"`
	IPAddress *string         `json:"ipAddress"`
	UserAgent *string         `json:"userAgent"`
	CreatedAt string          `json:"createdAt"`
}

// Kind classifies the entry by the verb contained in its action.
func (l AuditLog) Kind() ActionKind {
	return ClassifyAction(l.Action)
}

// EntityName returns the entity or an empty string.
func (l AuditLog) EntityName() string {
	if l.Entity == nil {
		return ""
	}
	return *l.Entity
}

// ClassifyAction maps a free-form action string to its ActionKind.
func ClassifyAction(action string) ActionKind {
	for _, kind := range actionKinds {
		if strings.Contains(action, string(kind)) {
			return kind
		}
	}
	return ActionOther
}

// LogPage is one page of audit logs together with the server pagination.
type LogPage struct {
	Logs       []AuditLog `json:"logs"`
	Pagination Pagination `json:"pagination"`
}
