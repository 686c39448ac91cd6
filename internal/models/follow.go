package models

import "time"

// Follow represents a follower relationship: a user (viewer, scout, another
// student) following a student athlete.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_student"`
	StudentID  uint      `json:"student_id" gorm:"index;uniqueIndex:idx_follower_student"`
	CreatedAt  time.Time `json:"created_at"`
}
