package domain

import "time"

// UserRole distinguishes regular members from platform administrators.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is a fully registered account holder.
type User struct {
	UserID       string   `json:"userID"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Role         UserRole `json:"role"`
	IsVerified   bool     `json:"isVerified"`
	IsActive     bool     `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	Timestamps
}

// Organization is a parish or community a user can belong to.
type Organization struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Timestamps
}

// UserOrganization links a user to an organization.
type UserOrganization struct {
	UserID         string    `json:"userID"`
	OrganizationID string    `json:"organizationID"`
	JoinedAt       time.Time `json:"joinedAt"`
}
