package access_test

import (
	"testing"

	"github.com/gusau-lga/asset_management_app/internal/core/access"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func maintenanceAt(id, location string) domain.MaintenanceRecord {
	return domain.MaintenanceRecord{
		MaintenanceID: id,
		AssetLocation: location,
		Status:        domain.StatusScheduled,
	}
}

// Scenario: a maintenance manager assigned to one district office sees only
// the record at that office.
func TestFilterVisible_RestrictedManager(t *testing.T) {
	user := &domain.User{
		Role:        domain.RoleMaintenanceManager,
		AssetAccess: []string{"Gusau North District Office"},
	}
	records := []domain.MaintenanceRecord{
		maintenanceAt("m1", "Gusau North District Office"),
		maintenanceAt("m2", "Gusau Central Market"),
	}

	visible := access.FilterVisible(user, records)

	assert.Len(t, visible, 1)
	assert.Equal(t, "m1", visible[0].MaintenanceID)
}

func TestFilterVisible_AdminSeesAll(t *testing.T) {
	user := &domain.User{Role: domain.RoleAdmin}
	records := []domain.MaintenanceRecord{
		maintenanceAt("m1", "Gusau North District Office"),
		maintenanceAt("m2", ""),
		maintenanceAt("m3", "Gusau Central Market"),
	}
	assert.Equal(t, records, access.FilterVisible(user, records))
}

func TestFilterVisible_OrderPreservedAndIdempotent(t *testing.T) {
	user := &domain.User{
		Role:        domain.RoleUser,
		AssetAccess: []string{"A", "C"},
	}
	records := []domain.MaintenanceRecord{
		maintenanceAt("m1", "C"),
		maintenanceAt("m2", "B"),
		maintenanceAt("m3", "A"),
		maintenanceAt("m4", "C"),
	}

	once := access.FilterVisible(user, records)
	twice := access.FilterVisible(user, once)

	ids := make([]string, len(once))
	for i, r := range once {
		ids[i] = r.MaintenanceID
	}
	assert.Equal(t, []string{"m1", "m3", "m4"}, ids, "input order preserved")
	assert.Equal(t, once, twice, "filter is idempotent")
}

func TestFilterVisible_EmptyLocationFailsClosed(t *testing.T) {
	user := &domain.User{Role: domain.RoleUser, AssetAccess: []string{"A"}}
	records := []domain.MaintenanceRecord{
		maintenanceAt("orphan", ""), // asset deleted out from under the record
		maintenanceAt("kept", "A"),
	}
	visible := access.FilterVisible(user, records)
	assert.Len(t, visible, 1)
	assert.Equal(t, "kept", visible[0].MaintenanceID)
}

func TestFilterVisible_WorksAcrossRecordTypes(t *testing.T) {
	user := &domain.User{Role: domain.RoleUser, AssetAccess: []string{"Gusau Library"}}

	assets := []domain.Asset{
		{AssetID: "a1", Location: "Gusau Library"},
		{AssetID: "a2", Location: "Gusau Central Market"},
	}
	auctions := []domain.AuctionRecord{
		{AuctionID: "au1", AssetLocation: "Gusau Central Market"},
	}

	assert.Len(t, access.FilterVisible(user, assets), 1)
	assert.Empty(t, access.FilterVisible(user, auctions))
}
