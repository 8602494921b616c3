package access

import "github.com/gusau-lga/asset_management_app/internal/core/domain"

// Locatable is any record that exposes the location gating its visibility.
// Workflow records report their referenced asset's location.
type Locatable interface {
	LocationName() string
}

// FilterVisible returns the subset of records the user may see, in input
// order. It must run before any search, category or status filter and before
// any aggregate statistic, so counts and sums never leak records from
// inaccessible locations.
func FilterVisible[T Locatable](user *domain.User, records []T) []T {
	if user.Role == domain.RoleAdmin || len(user.AssignedLocations()) == 0 {
		return records
	}
	visible := make([]T, 0, len(records))
	for _, rec := range records {
		if CanAccessLocation(user, rec.LocationName()) {
			visible = append(visible, rec)
		}
	}
	return visible
}
