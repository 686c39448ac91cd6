package models

import "time"

// Notification types, a closed vocabulary the client maps to icons.
const (
	NotificationFollowingPosted    = "following_posted"
	NotificationPostLike           = "post_like"
	NotificationPostComment        = "post_comment"
	NotificationNewFollower        = "new_follower"
	NotificationSchoolPayment      = "school_payment_recorded"
	NotificationFormSubmitted      = "form_submitted"
	NotificationSubmissionReviewed = "submission_reviewed"
	NotificationScoutAssigned      = "scout_assigned"
)

// Entity types a notification may reference. The reference is weak: the
// entity can be deleted later without touching the notification row.
const (
	EntityPost       = "post"
	EntityUser       = "user"
	EntityPayment    = "school_payment_record"
	EntitySubmission = "evaluation_form_submission"
)

// Notification is one row per recipient; fan-out for an event produces N rows
// for N recipients. The (user_id, type, entity_type, entity_id) tuple is the
// dedup key, enforced by a unique index so concurrent fan-out for the same
// event cannot double-insert.
type Notification struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index;uniqueIndex:idx_notifications_dedup"`
	Type          string    `json:"type" gorm:"size:40;uniqueIndex:idx_notifications_dedup"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	EntityType    string    `json:"entity_type" gorm:"size:40;uniqueIndex:idx_notifications_dedup"`
	EntityID      string    `json:"entity_id" gorm:"size:64;uniqueIndex:idx_notifications_dedup"`
	RelatedUserID *uint     `json:"related_user_id,omitempty" gorm:"index"`
	Metadata      string    `json:"metadata,omitempty"` // JSON payload for client deep-linking only
	IsRead        bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
}
