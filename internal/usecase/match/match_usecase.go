package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/matching"
	"github.com/hokies-connect/backend/internal/repository"
)

// MatchUseCase wires the matching strategies to the profile store and the
// persisted match records. Matching and persistence are separate calls:
// RunMatching never writes, PersistMatches never scores.
type MatchUseCase struct {
	studentRepo repository.StudentProfileRepository
	alumniRepo  repository.AlumniProfileRepository
	matchRepo   repository.MatchRepository
	strategy    matching.Strategy
	logger      *zap.Logger
}

func NewMatchUseCase(
	studentRepo repository.StudentProfileRepository,
	alumniRepo repository.AlumniProfileRepository,
	matchRepo repository.MatchRepository,
	strategy matching.Strategy,
	logger *zap.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		studentRepo: studentRepo,
		alumniRepo:  alumniRepo,
		matchRepo:   matchRepo,
		strategy:    strategy,
		logger:      logger,
	}
}

// RunMatching scores the full alumni pool against the student. An empty
// pool short-circuits to an empty result with no remote call.
func (uc *MatchUseCase) RunMatching(ctx context.Context, studentID uuid.UUID) ([]domain.MatchCandidate, error) {
	student, err := uc.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	pool, err := uc.alumniRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load alumni pool: %w", err)
	}
	if len(pool) == 0 {
		return []domain.MatchCandidate{}, nil
	}

	candidates, err := uc.strategy.Match(ctx, student, pool)
	if err != nil {
		return nil, fmt.Errorf("matching run failed: %w", err)
	}

	uc.logger.Info("matching run completed",
		zap.String("student_id", studentID.String()),
		zap.Int("pool_size", len(pool)),
		zap.Int("candidates", len(candidates)),
	)
	return candidates, nil
}

// PersistMatches stores candidates as pending matches. Rows are written
// independently with insert-if-absent semantics, so a re-run neither
// duplicates rows nor resets a recorded accept/decline decision, and one
// failed row never corrupts the others.
func (uc *MatchUseCase) PersistMatches(ctx context.Context, studentID uuid.UUID, candidates []domain.MatchCandidate) error {
	var errs []error
	for _, candidate := range candidates {
		match := &domain.Match{
			StudentID: studentID,
			AlumniID:  candidate.AlumniID,
			Score:     candidate.Score,
			Reasons:   candidate.Reasons,
			Status:    domain.MatchStatusPending,
		}
		inserted, err := uc.matchRepo.CreateIfAbsent(ctx, match)
		if err != nil {
			errs = append(errs, fmt.Errorf("persist match for alumni %s: %w", candidate.AlumniID, err))
			continue
		}
		if !inserted {
			uc.logger.Debug("match already recorded, left untouched",
				zap.String("student_id", studentID.String()),
				zap.String("alumni_id", candidate.AlumniID.String()),
			)
		}
	}
	return errors.Join(errs...)
}

// GetMatches returns the student's persisted matches enriched with alumni
// display fields, ordered by score descending.
func (uc *MatchUseCase) GetMatches(ctx context.Context, studentID uuid.UUID) ([]*domain.MatchWithAlumni, error) {
	if _, err := uc.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return uc.matchRepo.ListByStudent(ctx, studentID)
}

// GetMatchesForAlumni is the symmetric alumni-facing read.
func (uc *MatchUseCase) GetMatchesForAlumni(ctx context.Context, alumniID uuid.UUID) ([]*domain.MatchWithStudent, error) {
	if _, err := uc.alumniRepo.GetByID(ctx, alumniID); err != nil {
		return nil, err
	}
	return uc.matchRepo.ListByAlumni(ctx, alumniID)
}

// DeleteMatch removes a persisted match entirely. A later matching re-run
// may recreate the pair as pending; deletion is for clearing out declined
// or stale matches, not for hiding a decision.
func (uc *MatchUseCase) DeleteMatch(ctx context.Context, studentID, alumniID uuid.UUID) error {
	return uc.matchRepo.Delete(ctx, studentID, alumniID)
}

// SetMatchStatus records the caller's accept/decline decision. Setting the
// same status twice is a no-op; score and reasons are never touched.
func (uc *MatchUseCase) SetMatchStatus(ctx context.Context, studentID, alumniID uuid.UUID, status string) error {
	parsed, err := domain.ParseMatchStatus(status)
	if err != nil {
		return err
	}
	return uc.matchRepo.UpdateStatus(ctx, studentID, alumniID, parsed)
}
