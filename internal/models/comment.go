package models

import "gorm.io/gorm"

// Comment represents a comment on a post
type Comment struct {
	gorm.Model
	PostID  string `json:"post_id" gorm:"index;size:36"`
	UserID  uint   `json:"user_id" gorm:"index"`
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
