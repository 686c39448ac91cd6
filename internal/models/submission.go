package models

import "time"

// Evaluation form submission statuses.
const (
	SubmissionStatusPending   = "pending"
	SubmissionStatusReviewed  = "reviewed"
	SubmissionStatusFinalized = "finalized"
)

// EvaluationFormSubmission is an evaluation form submitted for a student,
// reviewed by an assigned scout.
type EvaluationFormSubmission struct {
	ID              string    `json:"id" gorm:"primaryKey;size:36"`
	StudentID       uint      `json:"student_id" gorm:"index"`
	SubmittedBy     uint      `json:"submitted_by" gorm:"index"`
	FormName        string    `json:"form_name" gorm:"size:120"`
	Status          string    `json:"status" gorm:"size:20;default:pending;index"`
	AssignedScoutID *uint     `json:"assigned_scout_id,omitempty" gorm:"index"`
	ReviewNotes     string    `json:"review_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateSubmissionRequest defines the request body for submitting an evaluation form
type CreateSubmissionRequest struct {
	FormName string `json:"form_name" validate:"required,min=2,max=120"`
}

// AssignScoutRequest defines the request body for assigning a scout to a submission
type AssignScoutRequest struct {
	ScoutID uint `json:"scout_id" validate:"required"`
}

// ReviewSubmissionRequest defines the request body for reviewing a submission
type ReviewSubmissionRequest struct {
	Status      string `json:"status" validate:"required,oneof=reviewed finalized"`
	ReviewNotes string `json:"review_notes,omitempty" validate:"omitempty,max=2000"`
}
