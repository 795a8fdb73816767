package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hokies-connect/backend/internal/domain"
)

type StudentProfileRepository interface {
	Create(ctx context.Context, profile *domain.StudentProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudentProfile, error)
	Update(ctx context.Context, profile *domain.StudentProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AlumniProfileRepository interface {
	Create(ctx context.Context, profile *domain.AlumniProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AlumniProfile, error)
	List(ctx context.Context) ([]*domain.AlumniProfile, error)
	Update(ctx context.Context, profile *domain.AlumniProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
