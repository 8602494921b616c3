package domain_test

import (
	"testing"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseAssetAccess(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"json array", `["Gusau North District Office","Gusau Central Market"]`, []string{"Gusau North District Office", "Gusau Central Market"}},
		{"json array single", `["Gusau Library"]`, []string{"Gusau Library"}},
		{"json array empty", `[]`, nil},
		{"json string", `"Gusau Library"`, []string{"Gusau Library"}},
		{"bare string", "Gusau Library", []string{"Gusau Library"}},
		{"malformed json falls back to raw", `["Gusau Library"`, []string{`["Gusau Library"`}},
		{"array with empty entries dropped", `["", "Gusau Library"]`, []string{"Gusau Library"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseAssetAccess(tt.raw))
		})
	}
}

func TestParseAssetAccess_PreservesExactNames(t *testing.T) {
	// Location matching is exact: case and inner whitespace must survive.
	got := domain.ParseAssetAccess(`[" Gusau  Library ","GUSAU MARKET"]`)
	assert.Equal(t, []string{" Gusau  Library ", "GUSAU MARKET"}, got)
}

func TestHasPermission(t *testing.T) {
	admin := &domain.User{Role: domain.RoleAdmin}
	assert.True(t, admin.HasPermission(domain.PermAudit), "admin holds every permission")

	holder := &domain.User{Role: domain.RoleUser, Permissions: []domain.Permission{domain.PermAssets}}
	assert.True(t, holder.HasPermission(domain.PermAssets))
	assert.False(t, holder.HasPermission(domain.PermUsers))

	all := &domain.User{Role: domain.RoleViewer, Permissions: []domain.Permission{domain.PermAll}}
	assert.True(t, all.HasPermission(domain.PermDisposals), `"all" grants everything`)
}

func TestIsManagerOf(t *testing.T) {
	tests := []struct {
		name   string
		user   domain.User
		domain domain.ManagedDomain
		want   bool
	}{
		{"role match", domain.User{Role: domain.RoleAuctionManager}, domain.DomainAuction, true},
		{"role mismatch", domain.User{Role: domain.RoleAuctionManager}, domain.DomainDisposal, false},
		{"permission match", domain.User{Role: domain.RoleUser, Permissions: []domain.Permission{domain.PermMaintenance}}, domain.DomainMaintenance, true},
		{"admin via implicit permission", domain.User{Role: domain.RoleAdmin}, domain.DomainDisposal, true},
		{"plain user", domain.User{Role: domain.RoleUser}, domain.DomainAuction, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.IsManagerOf(tt.domain))
		})
	}
}

func TestAssignedLocations(t *testing.T) {
	admin := &domain.User{Role: domain.RoleAdmin, AssetAccess: []string{"Gusau Library"}}
	assert.Nil(t, admin.AssignedLocations(), "admin is unrestricted regardless of asset access content")

	restricted := &domain.User{Role: domain.RoleMaintenanceManager, AssetAccess: []string{"Gusau Library"}}
	assert.Equal(t, []string{"Gusau Library"}, restricted.AssignedLocations())

	unrestricted := &domain.User{Role: domain.RoleManager}
	assert.Empty(t, unrestricted.AssignedLocations())
}
