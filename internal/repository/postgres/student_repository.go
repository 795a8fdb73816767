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

type studentProfileRepository struct {
	db *sqlx.DB
}

func NewStudentProfileRepository(db *sqlx.DB) repository.StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

func (r *studentProfileRepository) Create(ctx context.Context, profile *domain.StudentProfile) error {
	query := `
		INSERT INTO student_profiles (
			id, name, majors, minors, current_standing,
			club_positions, journey_entries, resume_text
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.Name, pq.Array(profile.Majors), pq.Array(profile.Minors),
		profile.CurrentStanding, pq.Array(profile.ClubPositions),
		profile.JourneyEntries, profile.ResumeText,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *studentProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudentProfile, error) {
	var profile domain.StudentProfile
	query := `
		SELECT id, name, majors, minors, current_standing,
		       club_positions, journey_entries, resume_text,
		       created_at, updated_at
		FROM student_profiles WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID, &profile.Name, pq.Array(&profile.Majors), pq.Array(&profile.Minors),
		&profile.CurrentStanding, pq.Array(&profile.ClubPositions),
		&profile.JourneyEntries, &profile.ResumeText,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *studentProfileRepository) Update(ctx context.Context, profile *domain.StudentProfile) error {
	query := `
		UPDATE student_profiles
		SET name = $1, majors = $2, minors = $3, current_standing = $4,
		    club_positions = $5, journey_entries = $6, resume_text = $7,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Name, pq.Array(profile.Majors), pq.Array(profile.Minors),
		profile.CurrentStanding, pq.Array(profile.ClubPositions),
		profile.JourneyEntries, profile.ResumeText,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrStudentNotFound
	}
	return err
}

func (r *studentProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM student_profiles WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
