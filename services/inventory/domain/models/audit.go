package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is the short action code recorded for one mutation.
type AuditAction string

const (
	AuditCreate        AuditAction = "C" // item created
	AuditMove          AuditAction = "M" // subtree reparented
	AuditDelete        AuditAction = "D" // item deleted (with its subtree)
	AuditFeatureSet    AuditAction = "U" // own feature set or changed
	AuditFeatureRemove AuditAction = "L" // own feature removed
	AuditProductLink   AuditAction = "P" // product linked or unlinked
)

// AuditEntry is one immutable record of a structural or feature mutation.
// Entries are only ever appended; nothing updates or deletes them, and the
// item code is kept as plain text so history survives item deletion.
type AuditEntry struct {
	ID       uuid.UUID         `json:"id"`
	Time     time.Time         `json:"time"`
	Actor    string            `json:"actor"`
	ItemCode string            `json:"item_code"`
	Action   AuditAction       `json:"action"`
	Detail   map[string]string `json:"detail,omitempty"`
}

// NewAuditEntry stamps a new entry with a fresh ID and the current time.
func NewAuditEntry(actor string, code ItemCode, action AuditAction, detail map[string]string) AuditEntry {
	return AuditEntry{
		ID:       uuid.New(),
		Time:     time.Now().UTC(),
		Actor:    actor,
		ItemCode: code.String(),
		Action:   action,
		Detail:   detail,
	}
}
