package dto

import "github.com/gusau-lga/asset_management_app/internal/core/domain"

// ChangeStatusRequest asks the workflow executor to apply one action to a
// record. The action names come from the record type's transition table.
type ChangeStatusRequest struct {
	Action string `json:"action" binding:"required"`
}

// TransitionResponse reports a committed transition.
type TransitionResponse struct {
	Entity         string `json:"entity"`
	RecordID       string `json:"recordID"`
	Action         string `json:"action"`
	From           string `json:"from"`
	To             string `json:"to"`
	AssetDeleted   bool   `json:"assetDeleted"`
	AssetRelocated bool   `json:"assetRelocated"`
	NewLocation    string `json:"newLocation,omitempty"`
}

// ToTransitionResponse converts a domain.TransitionResult.
func ToTransitionResponse(r domain.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Entity:         r.Entity,
		RecordID:       r.RecordID,
		Action:         string(r.Action),
		From:           string(r.From),
		To:             string(r.To),
		AssetDeleted:   r.AssetDeleted,
		AssetRelocated: r.AssetRelocated,
		NewLocation:    r.NewLocation,
	}
}
