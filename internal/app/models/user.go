package models

import "time"

// User defines the user model based on the 'users' and 'user_roles' tables
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	FullName     string     `json:"fullName" db:"full_name" example:"Jane Smith"`
	Email        string     `json:"email" db:"email" example:"jane@example.com"`
	Username     string     `json:"username" db:"username" example:"jane"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Roles        []Role     `json:"roles"`
	Status       UserStatus `json:"status" db:"status" example:"Active"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasRole reports whether the user holds role r.
func (u *User) HasRole(r Role) bool {
	for _, role := range u.Roles {
		if role == r {
			return true
		}
	}
	return false
}

// RoleNames returns the role set as plain strings, for tokens and responses.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r)
	}
	return names
}
