package callrequest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/repository"
)

type CallRequestUseCase struct {
	callRepo  repository.CallRequestRepository
	matchRepo repository.MatchRepository
}

func NewCallRequestUseCase(
	callRepo repository.CallRequestRepository,
	matchRepo repository.MatchRepository,
) *CallRequestUseCase {
	return &CallRequestUseCase{
		callRepo:  callRepo,
		matchRepo: matchRepo,
	}
}

// CreateCallRequest represents a student's call scheduling request
type CreateCallRequest struct {
	AlumniID     uuid.UUID `json:"alumni_id" binding:"required"`
	Topic        string    `json:"topic" binding:"required,min=3,max=200"`
	Message      string    `json:"message" binding:"omitempty,max=2000"`
	ProposedTime time.Time `json:"proposed_time" binding:"required"`
}

// Create schedules a call request. The pair must already have a persisted
// match; a student cannot request calls with arbitrary alumni.
func (uc *CallRequestUseCase) Create(ctx context.Context, studentID uuid.UUID, req *CreateCallRequest) (*domain.CallRequest, error) {
	if _, err := uc.matchRepo.GetByPair(ctx, studentID, req.AlumniID); err != nil {
		return nil, err
	}

	callRequest := &domain.CallRequest{
		ID:           uuid.New(),
		StudentID:    studentID,
		AlumniID:     req.AlumniID,
		Topic:        req.Topic,
		Message:      req.Message,
		ProposedTime: req.ProposedTime,
		Status:       domain.CallRequestPending,
	}

	if err := uc.callRepo.Create(ctx, callRequest); err != nil {
		return nil, fmt.Errorf("failed to create call request: %w", err)
	}
	return callRequest, nil
}

func (uc *CallRequestUseCase) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.CallRequest, error) {
	return uc.callRepo.ListByStudent(ctx, studentID)
}

func (uc *CallRequestUseCase) ListForAlumni(ctx context.Context, alumniID uuid.UUID) ([]*domain.CallRequest, error) {
	return uc.callRepo.ListByAlumni(ctx, alumniID)
}

// Respond records the alumni's accept/decline decision. Only the alumni
// the request is addressed to may respond; repeating the same decision is
// a no-op.
func (uc *CallRequestUseCase) Respond(ctx context.Context, id, alumniID uuid.UUID, status string) error {
	parsed, err := domain.ParseCallRequestStatus(status)
	if err != nil {
		return err
	}

	request, err := uc.callRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.AlumniID != alumniID {
		return domain.ErrNotCallRecipient
	}

	return uc.callRepo.UpdateStatus(ctx, id, parsed)
}
