package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// AuditSvc records and lists audit trail entries.
type AuditSvc interface {
	// Record persists one entry. Failures are logged, not propagated: the
	// audited operation has already happened.
	Record(ctx context.Context, entry domain.AuditEntry)

	// ListEntries retrieves a paginated slice of the trail, newest first.
	// Callers gate on the audit permission.
	ListEntries(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error)
}
