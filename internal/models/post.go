package models

import "time"

// Post represents a highlight or update shared by a student
type Post struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	UserID        uint      `json:"user_id" gorm:"index"`
	Content       string    `json:"content"`
	MediaURL      string    `json:"media_url,omitempty"`
	LikesCount    int       `json:"likes_count" gorm:"default:0"`
	CommentsCount int       `json:"comments_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=500"`
	MediaURL string `json:"media_url,omitempty" validate:"omitempty,url"`
}
