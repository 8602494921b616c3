package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user.
type CreateUserRequest struct {
	Username    string   `json:"username" binding:"required,min=3,max=50"`
	Password    string   `json:"password" binding:"required,min=8"`
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Role        string   `json:"role" binding:"required"`
	Department  string   `json:"department"`
	Phone       string   `json:"phone"`
	Permissions []string `json:"permissions"`
	// AssetAccess accepts the legacy forms: a JSON array of location names or
	// a single name. Normalized once at user construction.
	AssetAccess []string `json:"assetAccess"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	Email       *string   `json:"email"`
	Role        *string   `json:"role"`
	Status      *string   `json:"status"`
	Department  *string   `json:"department"`
	Phone       *string   `json:"phone"`
	Permissions *[]string `json:"permissions"`
	AssetAccess *[]string `json:"assetAccess"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the API representation of a user. The password hash never
// leaves the service.
type UserResponse struct {
	UserID      string     `json:"userID"`
	Username    string     `json:"username"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Department  string     `json:"department,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Permissions []string   `json:"permissions"`
	AssetAccess []string   `json:"assetAccess"`
	CreatedAt   time.Time  `json:"createdAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	perms := make([]string, len(user.Permissions))
	for i, p := range user.Permissions {
		perms[i] = string(p)
	}
	return UserResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		Role:        string(user.Role),
		Status:      string(user.Status),
		Department:  user.Department,
		Phone:       user.Phone,
		Permissions: perms,
		AssetAccess: user.AssetAccess,
		CreatedAt:   user.CreatedAt,
		DeletedAt:   user.DeletedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
