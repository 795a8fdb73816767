package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hokies-connect/backend/internal/domain"
)

type MatchRepository interface {
	// CreateIfAbsent inserts the match unless one already exists for the
	// (student, alumni) pair. Returns true when a row was inserted.
	CreateIfAbsent(ctx context.Context, match *domain.Match) (bool, error)
	GetByPair(ctx context.Context, studentID, alumniID uuid.UUID) (*domain.Match, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.MatchWithAlumni, error)
	ListByAlumni(ctx context.Context, alumniID uuid.UUID) ([]*domain.MatchWithStudent, error)
	UpdateStatus(ctx context.Context, studentID, alumniID uuid.UUID, status domain.MatchStatus) error
	Delete(ctx context.Context, studentID, alumniID uuid.UUID) error
}

type CallRequestRepository interface {
	Create(ctx context.Context, req *domain.CallRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CallRequest, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.CallRequest, error)
	ListByAlumni(ctx context.Context, alumniID uuid.UUID) ([]*domain.CallRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CallRequestStatus) error
}
