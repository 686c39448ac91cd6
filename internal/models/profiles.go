package models

import "time"

// Role-specific profile tables. These hold the presentation data shown across
// the app and are preferred over the base account record when resolving a
// display name and avatar.

// StudentProfile holds athlete presentation data, keyed by the account id.
type StudentProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Position  string    `json:"position,omitempty"`
	GradYear  int       `json:"grad_year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SchoolAdminProfile holds presentation data for school administrators.
type SchoolAdminProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SystemAdminProfile holds presentation data for platform operators.
type SystemAdminProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ViewerProfile holds presentation data for parents and other followers.
type ViewerProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Relation  string    `json:"relation,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScoutProfile holds presentation data for scouts and scout admins.
type ScoutProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Agency    string    `json:"agency,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScoutAdmin is the legacy scout-admin table. Accounts migrated from the old
// scouting tool still keep their identity data here, linked either by the
// account's LinkedID or, for the earliest rows, only by email.
type ScoutAdmin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"index"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}
