package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/repository"
)

type ProfileUseCase struct {
	studentRepo repository.StudentProfileRepository
	alumniRepo  repository.AlumniProfileRepository
}

func NewProfileUseCase(
	studentRepo repository.StudentProfileRepository,
	alumniRepo repository.AlumniProfileRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		studentRepo: studentRepo,
		alumniRepo:  alumniRepo,
	}
}

// CreateStudentProfileRequest represents student profile creation
type CreateStudentProfileRequest struct {
	Name            string                `json:"name" binding:"required,min=2,max=100"`
	Majors          []string              `json:"majors" binding:"required,min=1,max=5,dive,min=2"`
	Minors          []string              `json:"minors" binding:"omitempty,max=5"`
	CurrentStanding string                `json:"current_standing" binding:"required,standing"`
	ClubPositions   []string              `json:"club_positions" binding:"omitempty,max=20"`
	JourneyEntries  []domain.JourneyEntry `json:"journey_entries" binding:"omitempty,max=4"`
	ResumeText      *string               `json:"resume_text" binding:"omitempty,max=20000"`
}

// UpdateStudentProfileRequest represents student profile update
type UpdateStudentProfileRequest struct {
	Name            *string                `json:"name" binding:"omitempty,min=2,max=100"`
	Majors          *[]string              `json:"majors" binding:"omitempty,min=1,max=5,dive,min=2"`
	Minors          *[]string              `json:"minors" binding:"omitempty,max=5"`
	CurrentStanding *string                `json:"current_standing" binding:"omitempty,standing"`
	ClubPositions   *[]string              `json:"club_positions" binding:"omitempty,max=20"`
	JourneyEntries  *[]domain.JourneyEntry `json:"journey_entries" binding:"omitempty,max=4"`
	ResumeText      *string                `json:"resume_text" binding:"omitempty,max=20000"`
}

// CreateAlumniProfileRequest represents alumni profile creation
type CreateAlumniProfileRequest struct {
	Name                string                     `json:"name" binding:"required,min=2,max=100"`
	GraduationYear      int                        `json:"graduation_year" binding:"required,min=1950,max=2100"`
	CurrentPosition     string                     `json:"current_position" binding:"omitempty,max=200"`
	Company             string                     `json:"company" binding:"omitempty,max=200"`
	Location            string                     `json:"location" binding:"omitempty,max=200"`
	Majors              []string                   `json:"majors" binding:"required,min=1,max=5,dive,min=2"`
	Contact             domain.ContactInfo         `json:"contact"`
	JourneyEntries      []domain.JourneyEntry      `json:"journey_entries" binding:"omitempty,max=4"`
	ProfessionalEntries []domain.ProfessionalEntry `json:"professional_entries" binding:"omitempty,max=30"`
}

// UpdateAlumniProfileRequest represents alumni profile update
type UpdateAlumniProfileRequest struct {
	Name                *string                     `json:"name" binding:"omitempty,min=2,max=100"`
	GraduationYear      *int                        `json:"graduation_year" binding:"omitempty,min=1950,max=2100"`
	CurrentPosition     *string                     `json:"current_position" binding:"omitempty,max=200"`
	Company             *string                     `json:"company" binding:"omitempty,max=200"`
	Location            *string                     `json:"location" binding:"omitempty,max=200"`
	Majors              *[]string                   `json:"majors" binding:"omitempty,min=1,max=5,dive,min=2"`
	Contact             *domain.ContactInfo         `json:"contact"`
	JourneyEntries      *[]domain.JourneyEntry      `json:"journey_entries" binding:"omitempty,max=4"`
	ProfessionalEntries *[]domain.ProfessionalEntry `json:"professional_entries" binding:"omitempty,max=30"`
}

func (uc *ProfileUseCase) CreateStudentProfile(ctx context.Context, req *CreateStudentProfileRequest) (*domain.StudentProfile, error) {
	profile := &domain.StudentProfile{
		ID:              uuid.New(),
		Name:            req.Name,
		Majors:          req.Majors,
		Minors:          req.Minors,
		CurrentStanding: domain.ClassStanding(req.CurrentStanding),
		ClubPositions:   req.ClubPositions,
		JourneyEntries:  req.JourneyEntries,
		ResumeText:      req.ResumeText,
	}

	if err := uc.studentRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create student profile: %w", err)
	}
	return profile, nil
}

func (uc *ProfileUseCase) GetStudentProfile(ctx context.Context, id uuid.UUID) (*domain.StudentProfile, error) {
	return uc.studentRepo.GetByID(ctx, id)
}

func (uc *ProfileUseCase) UpdateStudentProfile(ctx context.Context, id uuid.UUID, req *UpdateStudentProfileRequest) (*domain.StudentProfile, error) {
	profile, err := uc.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Majors != nil {
		profile.Majors = *req.Majors
	}
	if req.Minors != nil {
		profile.Minors = *req.Minors
	}
	if req.CurrentStanding != nil {
		profile.CurrentStanding = domain.ClassStanding(*req.CurrentStanding)
	}
	if req.ClubPositions != nil {
		profile.ClubPositions = *req.ClubPositions
	}
	if req.JourneyEntries != nil {
		profile.JourneyEntries = *req.JourneyEntries
	}
	if req.ResumeText != nil {
		profile.ResumeText = req.ResumeText
	}

	if err := uc.studentRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update student profile: %w", err)
	}
	return profile, nil
}

func (uc *ProfileUseCase) DeleteStudentProfile(ctx context.Context, id uuid.UUID) error {
	return uc.studentRepo.Delete(ctx, id)
}

func (uc *ProfileUseCase) CreateAlumniProfile(ctx context.Context, req *CreateAlumniProfileRequest) (*domain.AlumniProfile, error) {
	profile := &domain.AlumniProfile{
		ID:                  uuid.New(),
		Name:                req.Name,
		GraduationYear:      req.GraduationYear,
		CurrentPosition:     req.CurrentPosition,
		Company:             req.Company,
		Location:            req.Location,
		Majors:              req.Majors,
		Contact:             domain.Contact(req.Contact),
		JourneyEntries:      req.JourneyEntries,
		ProfessionalEntries: req.ProfessionalEntries,
	}
	profile.SortProfessionalEntries()

	if err := uc.alumniRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create alumni profile: %w", err)
	}
	return profile, nil
}

func (uc *ProfileUseCase) GetAlumniProfile(ctx context.Context, id uuid.UUID) (*domain.AlumniProfile, error) {
	profile, err := uc.alumniRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.SortProfessionalEntries()
	return profile, nil
}

func (uc *ProfileUseCase) ListAlumniProfiles(ctx context.Context) ([]*domain.AlumniProfile, error) {
	profiles, err := uc.alumniRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, profile := range profiles {
		profile.SortProfessionalEntries()
	}
	return profiles, nil
}

func (uc *ProfileUseCase) UpdateAlumniProfile(ctx context.Context, id uuid.UUID, req *UpdateAlumniProfileRequest) (*domain.AlumniProfile, error) {
	profile, err := uc.alumniRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.GraduationYear != nil {
		profile.GraduationYear = *req.GraduationYear
	}
	if req.CurrentPosition != nil {
		profile.CurrentPosition = *req.CurrentPosition
	}
	if req.Company != nil {
		profile.Company = *req.Company
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Majors != nil {
		profile.Majors = *req.Majors
	}
	if req.Contact != nil {
		profile.Contact = domain.Contact(*req.Contact)
	}
	if req.JourneyEntries != nil {
		profile.JourneyEntries = *req.JourneyEntries
	}
	if req.ProfessionalEntries != nil {
		profile.ProfessionalEntries = *req.ProfessionalEntries
		profile.SortProfessionalEntries()
	}

	if err := uc.alumniRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update alumni profile: %w", err)
	}
	return profile, nil
}

func (uc *ProfileUseCase) DeleteAlumniProfile(ctx context.Context, id uuid.UUID) error {
	return uc.alumniRepo.Delete(ctx, id)
}
