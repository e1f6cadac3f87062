package dto

import (
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
)

// CreateUserRequest is the payload for registering a back-office user.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=150"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required,max=200"`
	Email    string          `json:"email" binding:"required,email"`
	Phone    string          `json:"phone" binding:"omitempty,len=10,numeric"`
	Role     domain.UserRole `json:"role" binding:"required,userrole"`
}

// UpdateUserRequest updates user fields; nil pointers leave the field untouched.
type UpdateUserRequest struct {
	Name  *string          `json:"name,omitempty"`
	Email *string          `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string          `json:"phone,omitempty" binding:"omitempty,len=10,numeric"`
	Role  *domain.UserRole `json:"role,omitempty" binding:"omitempty,userrole"`
}

// UserResponse is the API representation of a user. The password hash is
// never exposed.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListUsersResponse is a paginated user listing.
type ListUsersResponse struct {
	Users     []UserResponse `json:"users"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// LoginRequest authenticates a user by username and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToUserResponse maps a domain user to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses maps a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
