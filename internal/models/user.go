package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Platform roles. Every user account carries exactly one.
const (
	RoleStudent     = "student"
	RoleViewer      = "viewer"
	RoleSchoolAdmin = "school_admin"
	RoleSystemAdmin = "system_admin"
	RoleScout       = "scout"
	RoleScoutAdmin  = "scout_admin"
)

// User is the base account record. Display data on it may lag behind the
// role-specific profile tables, which are the canonical source for name/avatar.
type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Email         string    `json:"email" gorm:"uniqueIndex"`
	Role          string    `json:"role" gorm:"size:20;index"`
	ProfilePicURL string    `json:"profile_pic_url"`
	SchoolID      *uint     `json:"school_id,omitempty" gorm:"index"`
	LinkedID      *uint     `json:"linked_id,omitempty"` // row id in a legacy profile table, where one exists
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserCompact is the projection embedded in enriched API responses.
type UserCompact struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ProfilePicURL string `json:"profile_pic_url"`
	Role          string `json:"role"`
}

// ToCompact returns the compact projection of the base account record.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:            u.ID,
		Name:          u.Name,
		ProfilePicURL: u.ProfilePicURL,
		Role:          u.Role,
	}
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
