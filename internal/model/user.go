package model

import "time"

// User role constants
const (
	RoleDoctor         = "Doctor"
	RoleManager        = "Manager"
	RoleCA             = "CA"
	RoleAdmin          = "Admin"
	RoleSecondaryAdmin = "Secondary Admin"
)

// Roles is the closed set of roles a user may hold.
var Roles = []string{RoleDoctor, RoleManager, RoleCA, RoleAdmin, RoleSecondaryAdmin}

// ValidRole reports whether role is one of the allowed role names.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents a staff member of the CRM.
type User struct {
	Base
	FullName         string     `json:"fullName" db:"full_name"`
	Email            string     `json:"emailId" db:"email"`
	PasswordHash     string     `json:"-" db:"password_hash"`
	Phone            string     `json:"phoneNo" db:"phone"`
	Address          string     `json:"address" db:"address"`
	Role             string     `json:"role" db:"role"`
	Photo            *string    `json:"photo" db:"photo"`
	RefreshToken     *string    `json:"-" db:"refresh_token"`
	ResetToken       *string    `json:"-" db:"reset_token"`
	ResetTokenExpiry *time.Time `json:"-" db:"reset_token_expiry"`
	LastLoginAt      *time.Time `json:"lastLogin,omitempty" db:"last_login_at"`
}

// CreateUserRequest is bound from the multipart add-user form.
type CreateUserRequest struct {
	FullName string `form:"fullName" binding:"required"`
	Email    string `form:"emailId" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	Phone    string `form:"phoneNo" binding:"required"`
	Address  string `form:"address" binding:"required"`
	Role     string `form:"role" binding:"required"`
}

// UpdateUserRequest carries optional fields; only provided values are merged.
type UpdateUserRequest struct {
	FullName *string `form:"fullName" json:"fullName"`
	Email    *string `form:"emailId" json:"emailId" binding:"omitempty,email"`
	Password *string `form:"password" json:"password" binding:"omitempty,min=6"`
	Phone    *string `form:"phoneNo" json:"phoneNo"`
	Address  *string `form:"address" json:"address"`
	Role     *string `form:"role" json:"role"`
}

type InviteUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"emailId" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
}
