package domain

import "errors"

var (
	ErrStudentNotFound     = errors.New("student profile not found")
	ErrAlumniNotFound      = errors.New("alumni profile not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrInvalidMatchStatus  = errors.New("invalid match status")
	ErrCallRequestNotFound = errors.New("call request not found")
	ErrInvalidCallStatus   = errors.New("invalid call request status")
	ErrNotCallRecipient    = errors.New("call request addressed to another alumni")
)
