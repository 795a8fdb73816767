package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the student-or-alumni decision on a persisted match.
// The matcher creates matches as pending and never changes the status.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusDeclined MatchStatus = "declined"
)

func ParseMatchStatus(s string) (MatchStatus, error) {
	switch MatchStatus(s) {
	case MatchStatusPending, MatchStatusAccepted, MatchStatusDeclined:
		return MatchStatus(s), nil
	}
	return "", ErrInvalidMatchStatus
}

// MatchCandidate is the ephemeral output of a single matcher run. Reasons is
// non-empty whenever Score is positive and holds at most five entries.
type MatchCandidate struct {
	AlumniID      uuid.UUID `json:"alumni_id"`
	Score         int       `json:"score"`
	Reasons       []string  `json:"reasons"`
	Compatibility []string  `json:"compatibility,omitempty"`
}

// Match is the persisted record of one student-alumni pairing. At most one
// live record exists per (StudentID, AlumniID) pair.
type Match struct {
	StudentID uuid.UUID   `json:"student_id" db:"student_id"`
	AlumniID  uuid.UUID   `json:"alumni_id" db:"alumni_id"`
	Score     int         `json:"score" db:"score"`
	Reasons   []string    `json:"reasons" db:"reasons"`
	Status    MatchStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// MatchWithAlumni joins a match with the alumni's display fields.
type MatchWithAlumni struct {
	Match
	AlumniName      string `json:"alumni_name" db:"alumni_name"`
	CurrentPosition string `json:"current_position" db:"current_position"`
	Company         string `json:"company" db:"company"`
	Location        string `json:"location" db:"location"`
}

// MatchWithStudent joins a match with the student's display fields, for the
// alumni-facing view.
type MatchWithStudent struct {
	Match
	StudentName     string        `json:"student_name" db:"student_name"`
	CurrentStanding ClassStanding `json:"current_standing" db:"current_standing"`
}
