package domain

import (
	"time"

	"github.com/google/uuid"
)

type CallRequestStatus string

const (
	CallRequestPending  CallRequestStatus = "pending"
	CallRequestAccepted CallRequestStatus = "accepted"
	CallRequestDeclined CallRequestStatus = "declined"
)

func ParseCallRequestStatus(s string) (CallRequestStatus, error) {
	switch CallRequestStatus(s) {
	case CallRequestPending, CallRequestAccepted, CallRequestDeclined:
		return CallRequestStatus(s), nil
	}
	return "", ErrInvalidCallStatus
}

// CallRequest is a student's ask for a mentoring call with an alumni.
type CallRequest struct {
	ID           uuid.UUID         `json:"id" db:"id"`
	StudentID    uuid.UUID         `json:"student_id" db:"student_id"`
	AlumniID     uuid.UUID         `json:"alumni_id" db:"alumni_id"`
	Topic        string            `json:"topic" db:"topic"`
	Message      string            `json:"message" db:"message"`
	ProposedTime time.Time         `json:"proposed_time" db:"proposed_time"`
	Status       CallRequestStatus `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}
