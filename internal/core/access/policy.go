// Package access implements the location access policy and the entity
// visibility filter. Both are pure: they read a fully resolved domain.User
// and decide, never touching storage or ambient state.
package access

import "github.com/gusau-lga/asset_management_app/internal/core/domain"

// CanAccessLocation reports whether the user may read or mutate records at
// the given location.
//
// Admins pass unconditionally. Users with no assigned locations are
// unrestricted. Everyone else must match one of their assigned locations by
// exact string comparison: no case folding, no whitespace trimming. A record
// with an empty location fails closed for restricted users.
func CanAccessLocation(user *domain.User, location string) bool {
	if user.Role == domain.RoleAdmin {
		return true
	}
	assigned := user.AssignedLocations()
	if len(assigned) == 0 {
		return true
	}
	if location == "" {
		return false
	}
	for _, loc := range assigned {
		if loc == location {
			return true
		}
	}
	return false
}
