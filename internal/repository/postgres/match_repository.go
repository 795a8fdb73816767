package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// CreateIfAbsent relies on the unique constraint on (student_id, alumni_id).
// An existing row is left untouched so a re-run never resets a student's
// accept/decline decision.
func (r *matchRepository) CreateIfAbsent(ctx context.Context, match *domain.Match) (bool, error) {
	query := `
		INSERT INTO matches (student_id, alumni_id, score, reasons, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, alumni_id) DO NOTHING
	`
	if match.Status == "" {
		match.Status = domain.MatchStatusPending
	}
	result, err := r.db.ExecContext(
		ctx, query,
		match.StudentID, match.AlumniID, match.Score,
		pq.Array(match.Reasons), match.Status,
	)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *matchRepository) GetByPair(ctx context.Context, studentID, alumniID uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	query := `
		SELECT student_id, alumni_id, score, reasons, status, created_at, updated_at
		FROM matches WHERE student_id = $1 AND alumni_id = $2
	`
	err := r.db.QueryRowContext(ctx, query, studentID, alumniID).Scan(
		&match.StudentID, &match.AlumniID, &match.Score,
		pq.Array(&match.Reasons), &match.Status,
		&match.CreatedAt, &match.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.MatchWithAlumni, error) {
	query := `
		SELECT m.student_id, m.alumni_id, m.score, m.reasons, m.status,
		       m.created_at, m.updated_at,
		       a.name AS alumni_name, a.current_position, a.company, a.location
		FROM matches m
		JOIN alumni_profiles a ON a.id = m.alumni_id
		WHERE m.student_id = $1
		ORDER BY m.score DESC, m.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.MatchWithAlumni
	for rows.Next() {
		var m domain.MatchWithAlumni
		if err := rows.Scan(
			&m.StudentID, &m.AlumniID, &m.Score, pq.Array(&m.Reasons), &m.Status,
			&m.CreatedAt, &m.UpdatedAt,
			&m.AlumniName, &m.CurrentPosition, &m.Company, &m.Location,
		); err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

func (r *matchRepository) ListByAlumni(ctx context.Context, alumniID uuid.UUID) ([]*domain.MatchWithStudent, error) {
	query := `
		SELECT m.student_id, m.alumni_id, m.score, m.reasons, m.status,
		       m.created_at, m.updated_at,
		       s.name AS student_name, s.current_standing
		FROM matches m
		JOIN student_profiles s ON s.id = m.student_id
		WHERE m.alumni_id = $1
		ORDER BY m.score DESC, m.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, alumniID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*domain.MatchWithStudent
	for rows.Next() {
		var m domain.MatchWithStudent
		if err := rows.Scan(
			&m.StudentID, &m.AlumniID, &m.Score, pq.Array(&m.Reasons), &m.Status,
			&m.CreatedAt, &m.UpdatedAt,
			&m.StudentName, &m.CurrentStanding,
		); err != nil {
			return nil, err
		}
		matches = append(matches, &m)
	}
	return matches, rows.Err()
}

func (r *matchRepository) UpdateStatus(ctx context.Context, studentID, alumniID uuid.UUID, status domain.MatchStatus) error {
	query := `
		UPDATE matches
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE student_id = $2 AND alumni_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, studentID, alumniID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) Delete(ctx context.Context, studentID, alumniID uuid.UUID) error {
	query := `DELETE FROM matches WHERE student_id = $1 AND alumni_id = $2`
	result, err := r.db.ExecContext(ctx, query, studentID, alumniID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
