package access_test

import (
	"testing"

	"github.com/gusau-lga/asset_management_app/internal/core/access"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanAccessLocation(t *testing.T) {
	tests := []struct {
		name     string
		user     domain.User
		location string
		want     bool
	}{
		{
			name:     "admin any location",
			user:     domain.User{Role: domain.RoleAdmin},
			location: "Gusau Central Market",
			want:     true,
		},
		{
			name:     "admin empty location",
			user:     domain.User{Role: domain.RoleAdmin},
			location: "",
			want:     true,
		},
		{
			name:     "admin ignores its own asset access list",
			user:     domain.User{Role: domain.RoleAdmin, AssetAccess: []string{"Gusau Library"}},
			location: "Gusau Central Market",
			want:     true,
		},
		{
			name:     "unrestricted non-admin",
			user:     domain.User{Role: domain.RoleManager},
			location: "Gusau Central Market",
			want:     true,
		},
		{
			name:     "restricted match",
			user:     domain.User{Role: domain.RoleMaintenanceManager, AssetAccess: []string{"Gusau North District Office"}},
			location: "Gusau North District Office",
			want:     true,
		},
		{
			name:     "restricted mismatch",
			user:     domain.User{Role: domain.RoleMaintenanceManager, AssetAccess: []string{"Gusau North District Office"}},
			location: "Gusau Central Market",
			want:     false,
		},
		{
			name:     "restricted empty location fails closed",
			user:     domain.User{Role: domain.RoleUser, AssetAccess: []string{"Gusau Library"}},
			location: "",
			want:     false,
		},
		{
			name:     "exact match only, case sensitive",
			user:     domain.User{Role: domain.RoleUser, AssetAccess: []string{"Gusau Library"}},
			location: "gusau library",
			want:     false,
		},
		{
			name:     "exact match only, whitespace sensitive",
			user:     domain.User{Role: domain.RoleUser, AssetAccess: []string{"Gusau Library"}},
			location: "Gusau Library ",
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.CanAccessLocation(&tt.user, tt.location))
		})
	}
}
