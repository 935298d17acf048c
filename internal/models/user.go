package models

import "time"

// User row in the users table.
type User struct {
	UserID       string     `db:"user_id"`
	Email        string     `db:"email"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Name         string     `db:"name"`
	Phone        *string    `db:"phone"`
	Role         string     `db:"role"`
	IsVerified   bool       `db:"is_verified"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
	Timestamps
}

// Organization row.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Timestamps
}

// UserOrganization membership row.
type UserOrganization struct {
	UserID         string    `db:"user_id"`
	OrganizationID string    `db:"organization_id"`
	JoinedAt       time.Time `db:"joined_at"`
}
