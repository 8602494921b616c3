package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Role is the coarse-grained identity tag assigned to a user. It determines
// default capabilities; fine-grained Permission tags are additive on top.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleManager            Role = "manager"
	RoleAssetManager       Role = "asset_manager"
	RoleMaintenanceManager Role = "maintenance_manager"
	RoleAuctionManager     Role = "auction_manager"
	RoleDisposalManager    Role = "disposal_manager"
	RoleUser               Role = "user"
	RoleAuditor            Role = "auditor"
	RoleViewer             Role = "viewer"
)

// Roles lists every valid role, used for request validation.
var Roles = []Role{
	RoleAdmin, RoleManager, RoleAssetManager, RoleMaintenanceManager,
	RoleAuctionManager, RoleDisposalManager, RoleUser, RoleAuditor, RoleViewer,
}

// Permission is a fine-grained capability tag, independent of role.
type Permission string

const (
	PermAssets        Permission = "assets"
	PermMaintenance   Permission = "maintenance"
	PermTransfers     Permission = "transfers"
	PermAuctions      Permission = "auctions"
	PermDisposals     Permission = "disposals"
	PermUsers         Permission = "users"
	PermReports       Permission = "reports"
	PermAudit         Permission = "audit"
	PermNotifications Permission = "notifications"

	// PermAll grants every capability.
	PermAll Permission = "all"
)

// UserStatus is the account state of a user.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
	UserPending   UserStatus = "pending"
)

// User represents a fully resolved actor: identity, role, explicit permission
// set and assigned locations. The policy and workflow layers only ever read
// from a User value; they never fetch or cache identity themselves.
type User struct {
	UserID       string       `json:"userID"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	Role         Role         `json:"role"`
	Status       UserStatus   `json:"status"`
	Department   string       `json:"department"`
	Phone        string       `json:"phone"`
	Permissions  []Permission `json:"permissions"`
	// AssetAccess is the normalized, ordered list of location names this user
	// is restricted to. Empty means unrestricted. Populated once at
	// construction via ParseAssetAccess; never re-parsed downstream.
	AssetAccess []string `json:"assetAccess"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// HasPermission reports whether the user carries the given capability tag.
// Admins hold every permission, and the "all" tag grants everything.
func (u *User) HasPermission(p Permission) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, held := range u.Permissions {
		if held == p || held == PermAll {
			return true
		}
	}
	return false
}

// ManagedDomain identifies a workflow domain that has a dedicated manager role.
type ManagedDomain string

const (
	DomainMaintenance ManagedDomain = "maintenance"
	DomainAuction     ManagedDomain = "auction"
	DomainDisposal    ManagedDomain = "disposal"
)

// IsManagerOf reports whether the user manages the given workflow domain,
// either through the dedicated manager role or the matching permission tag.
func (u *User) IsManagerOf(d ManagedDomain) bool {
	switch d {
	case DomainMaintenance:
		return u.Role == RoleMaintenanceManager || u.HasPermission(PermMaintenance)
	case DomainAuction:
		return u.Role == RoleAuctionManager || u.HasPermission(PermAuctions)
	case DomainDisposal:
		return u.Role == RoleDisposalManager || u.HasPermission(PermDisposals)
	default:
		return false
	}
}

// AssignedLocations returns the location names the user is restricted to.
// Nil means unrestricted: admins are always unrestricted regardless of what
// their AssetAccess holds.
func (u *User) AssignedLocations() []string {
	if u.Role == RoleAdmin {
		return nil
	}
	return u.AssetAccess
}

// ParseAssetAccess normalizes the stored asset_access value into a list of
// location names. The legacy column may hold a JSON array, a JSON string, a
// bare location name, or nothing. Unparseable text is treated as a single
// location name rather than an error.
func ParseAssetAccess(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			out := make([]string, 0, len(list))
			for _, loc := range list {
				if loc != "" {
					out = append(out, loc)
				}
			}
			if len(out) == 0 {
				return nil
			}
			return out
		}
		return []string{raw}
	}

	if strings.HasPrefix(trimmed, `"`) {
		var single string
		if err := json.Unmarshal([]byte(trimmed), &single); err == nil {
			if single == "" {
				return nil
			}
			return []string{single}
		}
	}

	return []string{raw}
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
