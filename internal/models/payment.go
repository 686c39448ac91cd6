package models

import "time"

// Payment kinds recorded against a school subscription.
const (
	PaymentKindNew     = "new"
	PaymentKindRenewal = "renewal"
)

// SchoolPaymentRecord is a payment booked against a school's subscription.
type SchoolPaymentRecord struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	SchoolID   uint      `json:"school_id" gorm:"index"`
	Amount     float64   `json:"amount"`
	Kind       string    `json:"kind" gorm:"size:20"`
	RecordedBy uint      `json:"recorded_by"`
	Reference  string    `json:"reference,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordPaymentRequest defines the request body for recording a school payment
type RecordPaymentRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Kind      string  `json:"kind" validate:"required,oneof=new renewal"`
	Reference string  `json:"reference,omitempty" validate:"omitempty,max=64"`
}
