package domain

import "time"

// AuditEntry records a mutation for the audit trail: who did what to which
// record, with the values before and after. Status transitions and asset
// deletions always produce an entry.
type AuditEntry struct {
	AuditID   string            `json:"auditID"`
	UserID    string            `json:"userID"`
	Action    string            `json:"action"` // e.g. "status_changed", "asset_deleted_via_auction"
	TableName string            `json:"tableName"`
	RecordID  string            `json:"recordID"`
	OldValues map[string]string `json:"oldValues,omitempty"`
	NewValues map[string]string `json:"newValues,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
