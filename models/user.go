package models

import "time"

const (
	RoleOrganizer = "organizer"
	RoleProvider  = "provider"
)

// ValidRole reports whether role is one of the supported account roles.
func ValidRole(role string) bool {
	return role == RoleOrganizer || role == RoleProvider
}

// User represents a platform account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	ProfileRef   string    `bson:"profileRef,omitempty" json:"profileRef,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserSummary is the populated form of a user reference.
type UserSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
}

// Summary strips everything but the public identity fields.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,role"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserUpdateRequest carries the optional fields of PUT /api/auth/profile.
type UserUpdateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	FCMToken string `json:"fcmToken"`
}

// AuthResponse contains the user's identity and a fresh token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}
