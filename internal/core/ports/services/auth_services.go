package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies credentials and issues a signed token for the user.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
