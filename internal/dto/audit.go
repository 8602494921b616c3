package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// ListAuditParams defines query parameters for listing the audit trail.
type ListAuditParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// AuditEntryResponse is the API representation of one audit trail entry.
type AuditEntryResponse struct {
	AuditID   string            `json:"auditID"`
	UserID    string            `json:"userID"`
	Action    string            `json:"action"`
	TableName string            `json:"tableName"`
	RecordID  string            `json:"recordID"`
	OldValues map[string]string `json:"oldValues,omitempty"`
	NewValues map[string]string `json:"newValues,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ToAuditEntryResponse converts a domain.AuditEntry.
func ToAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		AuditID:   e.AuditID,
		UserID:    e.UserID,
		Action:    e.Action,
		TableName: e.TableName,
		RecordID:  e.RecordID,
		OldValues: e.OldValues,
		NewValues: e.NewValues,
		CreatedAt: e.CreatedAt,
	}
}
