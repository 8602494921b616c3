package repositories

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// AuditRepositoryFacade defines persistence for the audit trail.
type AuditRepositoryFacade interface {
	// SaveAuditEntry persists one audit trail entry.
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error

	// FindAuditEntries retrieves a paginated slice of the trail, newest first.
	FindAuditEntries(ctx context.Context, limit int, offset int) ([]domain.AuditEntry, error)
}
