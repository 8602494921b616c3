package dto

import "github.com/gusau-lga/asset_management_app/internal/core/domain"

// CreateLocationRequest adds a location to the catalog.
type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Region  string `json:"region"`
}

// UpdateLocationRequest edits a catalog entry. The name itself is immutable:
// renaming a location would silently orphan every exact-match reference to it.
type UpdateLocationRequest struct {
	Address  *string `json:"address"`
	Region   *string `json:"region"`
	IsActive *bool   `json:"isActive"`
}

// LocationResponse is the API representation of a catalog entry.
type LocationResponse struct {
	LocationID string `json:"locationID"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	Region     string `json:"region,omitempty"`
	IsActive   bool   `json:"isActive"`
}

// ToLocationResponse converts a domain.Location.
func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		LocationID: l.LocationID,
		Name:       l.Name,
		Address:    l.Address,
		Region:     l.Region,
		IsActive:   l.IsActive,
	}
}
