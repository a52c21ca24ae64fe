package dto

import (
	"time"

	"github.com/yigit/recruitment/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Success   bool         `json:"success" example:"true"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn" example:"86400"`
	User      UserResponse `json:"user"`
}

// RegisterRequest represents a self-service registration
type RegisterRequest struct {
	FullName string   `json:"fullName" binding:"required,max=100" example:"Jane Smith"`
	Email    string   `json:"email" binding:"required,email" example:"jane@example.com"`
	Username string   `json:"username" binding:"required,min=3,max=50" example:"jane"`
	Password string   `json:"password" binding:"required,min=6" example:"secret1"`
	Roles    []string `json:"roles" example:"Candidate"`
}

// RegisterResponse is returned after registration
type RegisterResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Registration successful"`
	User    UserResponse `json:"user"`
}

// UserResponse represents a user without credentials
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	FullName  string    `json:"fullName" example:"Jane Smith"`
	Email     string    `json:"email" example:"jane@example.com"`
	Username  string    `json:"username" example:"jane"`
	Roles     []string  `json:"roles"`
	Status    string    `json:"status" example:"Active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApproveUserRequest is the admin decision on a pending account
type ApproveUserRequest struct {
	UserID int64  `json:"userId" binding:"required,min=1" example:"7"`
	Action string `json:"action" binding:"required" example:"approve"`
}

// InterviewerResponse lists a user who can be assigned to interviews
type InterviewerResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// NewUserResponse converts a user model to its response shape
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Username:  u.Username,
		Roles:     u.RoleNames(),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
	}
}

// NewUserResponses converts a slice of users
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
