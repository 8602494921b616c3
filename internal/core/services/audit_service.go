package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates the audit trail service.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvc {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvc = (*auditService)(nil)

// Record persists one trail entry. The audited operation has already
// committed, so persistence failures are logged rather than returned.
func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) {
	if err := s.auditRepo.SaveAuditEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to persist audit entry",
			slog.String("action", entry.Action),
			slog.String("table", entry.TableName),
			slog.String("record_id", entry.RecordID))
	}
}

func (s *auditService) ListEntries(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	entries, err := s.auditRepo.FindAuditEntries(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
