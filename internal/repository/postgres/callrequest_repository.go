package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/repository"
)

type callRequestRepository struct {
	db *sqlx.DB
}

func NewCallRequestRepository(db *sqlx.DB) repository.CallRequestRepository {
	return &callRequestRepository{db: db}
}

func (r *callRequestRepository) Create(ctx context.Context, req *domain.CallRequest) error {
	query := `
		INSERT INTO call_requests (id, student_id, alumni_id, topic, message, proposed_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	if req.Status == "" {
		req.Status = domain.CallRequestPending
	}
	return r.db.QueryRowContext(
		ctx, query,
		req.ID, req.StudentID, req.AlumniID, req.Topic, req.Message,
		req.ProposedTime, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
}

func (r *callRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CallRequest, error) {
	var req domain.CallRequest
	query := `SELECT * FROM call_requests WHERE id = $1`
	err := r.db.GetContext(ctx, &req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCallRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *callRequestRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.CallRequest, error) {
	var requests []*domain.CallRequest
	query := `SELECT * FROM call_requests WHERE student_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &requests, query, studentID)
	return requests, err
}

func (r *callRequestRepository) ListByAlumni(ctx context.Context, alumniID uuid.UUID) ([]*domain.CallRequest, error) {
	var requests []*domain.CallRequest
	query := `SELECT * FROM call_requests WHERE alumni_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &requests, query, alumniID)
	return requests, err
}

func (r *callRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CallRequestStatus) error {
	query := `
		UPDATE call_requests
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCallRequestNotFound
	}
	return nil
}
