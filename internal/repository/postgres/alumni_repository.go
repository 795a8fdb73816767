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

type alumniProfileRepository struct {
	db *sqlx.DB
}

func NewAlumniProfileRepository(db *sqlx.DB) repository.AlumniProfileRepository {
	return &alumniProfileRepository{db: db}
}

const alumniColumns = `
	id, name, graduation_year, current_position, company, location,
	majors, contact, journey_entries, professional_entries,
	created_at, updated_at
`

func (r *alumniProfileRepository) Create(ctx context.Context, profile *domain.AlumniProfile) error {
	query := `
		INSERT INTO alumni_profiles (
			id, name, graduation_year, current_position, company, location,
			majors, contact, journey_entries, professional_entries
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.Name, profile.GraduationYear, profile.CurrentPosition,
		profile.Company, profile.Location, pq.Array(profile.Majors),
		profile.Contact, profile.JourneyEntries, profile.ProfessionalEntries,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *alumniProfileRepository) scanRow(row interface{ Scan(...interface{}) error }) (*domain.AlumniProfile, error) {
	var profile domain.AlumniProfile
	err := row.Scan(
		&profile.ID, &profile.Name, &profile.GraduationYear, &profile.CurrentPosition,
		&profile.Company, &profile.Location, pq.Array(&profile.Majors),
		&profile.Contact, &profile.JourneyEntries, &profile.ProfessionalEntries,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *alumniProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AlumniProfile, error) {
	query := `SELECT ` + alumniColumns + ` FROM alumni_profiles WHERE id = $1`
	profile, err := r.scanRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAlumniNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *alumniProfileRepository) List(ctx context.Context) ([]*domain.AlumniProfile, error) {
	query := `SELECT ` + alumniColumns + ` FROM alumni_profiles ORDER BY created_at DESC`
	return r.queryProfiles(ctx, query)
}

func (r *alumniProfileRepository) queryProfiles(ctx context.Context, query string, args ...interface{}) ([]*domain.AlumniProfile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.AlumniProfile
	for rows.Next() {
		profile, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

func (r *alumniProfileRepository) Update(ctx context.Context, profile *domain.AlumniProfile) error {
	query := `
		UPDATE alumni_profiles
		SET name = $1, graduation_year = $2, current_position = $3, company = $4,
		    location = $5, majors = $6, contact = $7,
		    journey_entries = $8, professional_entries = $9,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Name, profile.GraduationYear, profile.CurrentPosition, profile.Company,
		profile.Location, pq.Array(profile.Majors), profile.Contact,
		profile.JourneyEntries, profile.ProfessionalEntries,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrAlumniNotFound
	}
	return err
}

func (r *alumniProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM alumni_profiles WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAlumniNotFound
	}
	return nil
}
