package match

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/matching"
)

type fakeStudentRepo struct {
	students map[uuid.UUID]*domain.StudentProfile
}

func (r *fakeStudentRepo) Create(_ context.Context, p *domain.StudentProfile) error {
	r.students[p.ID] = p
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.StudentProfile, error) {
	p, ok := r.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return p, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, p *domain.StudentProfile) error {
	r.students[p.ID] = p
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.students, id)
	return nil
}

type fakeAlumniRepo struct {
	pool []*domain.AlumniProfile
}

func (r *fakeAlumniRepo) Create(_ context.Context, p *domain.AlumniProfile) error {
	r.pool = append(r.pool, p)
	return nil
}

func (r *fakeAlumniRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.AlumniProfile, error) {
	for _, p := range r.pool {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrAlumniNotFound
}

func (r *fakeAlumniRepo) List(_ context.Context) ([]*domain.AlumniProfile, error) {
	return r.pool, nil
}

func (r *fakeAlumniRepo) Update(_ context.Context, _ *domain.AlumniProfile) error { return nil }
func (r *fakeAlumniRepo) Delete(_ context.Context, _ uuid.UUID) error             { return nil }

type pairKey struct {
	student uuid.UUID
	alumni  uuid.UUID
}

type fakeMatchRepo struct {
	matches   map[pairKey]*domain.Match
	createErr error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[pairKey]*domain.Match)}
}

func (r *fakeMatchRepo) CreateIfAbsent(_ context.Context, m *domain.Match) (bool, error) {
	if r.createErr != nil {
		return false, r.createErr
	}
	key := pairKey{m.StudentID, m.AlumniID}
	if _, ok := r.matches[key]; ok {
		return false, nil
	}
	copied := *m
	r.matches[key] = &copied
	return true, nil
}

func (r *fakeMatchRepo) GetByPair(_ context.Context, studentID, alumniID uuid.UUID) (*domain.Match, error) {
	m, ok := r.matches[pairKey{studentID, alumniID}]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return m, nil
}

func (r *fakeMatchRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*domain.MatchWithAlumni, error) {
	var out []*domain.MatchWithAlumni
	for key, m := range r.matches {
		if key.student == studentID {
			out = append(out, &domain.MatchWithAlumni{Match: *m})
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) ListByAlumni(_ context.Context, alumniID uuid.UUID) ([]*domain.MatchWithStudent, error) {
	var out []*domain.MatchWithStudent
	for key, m := range r.matches {
		if key.alumni == alumniID {
			out = append(out, &domain.MatchWithStudent{Match: *m})
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) UpdateStatus(_ context.Context, studentID, alumniID uuid.UUID, status domain.MatchStatus) error {
	m, ok := r.matches[pairKey{studentID, alumniID}]
	if !ok {
		return domain.ErrMatchNotFound
	}
	m.Status = status
	return nil
}

func (r *fakeMatchRepo) Delete(_ context.Context, studentID, alumniID uuid.UUID) error {
	key := pairKey{studentID, alumniID}
	if _, ok := r.matches[key]; !ok {
		return domain.ErrMatchNotFound
	}
	delete(r.matches, key)
	return nil
}

func testStudent() *domain.StudentProfile {
	return &domain.StudentProfile{
		ID:              uuid.New(),
		Name:            "Morgan Lee",
		Majors:          []string{"Computer Science"},
		CurrentStanding: domain.StandingJunior,
		ClubPositions:   []string{"ACM"},
	}
}

func testAlumni(major, position string) *domain.AlumniProfile {
	return &domain.AlumniProfile{
		ID:              uuid.New(),
		Name:            "Casey Dunn",
		GraduationYear:  2015,
		CurrentPosition: position,
		Company:         "Initech",
		Location:        "Richmond, VA",
		Majors:          []string{major},
	}
}

func newTestUseCase(student *domain.StudentProfile, pool []*domain.AlumniProfile) (*MatchUseCase, *fakeMatchRepo) {
	studentRepo := &fakeStudentRepo{students: map[uuid.UUID]*domain.StudentProfile{}}
	if student != nil {
		studentRepo.students[student.ID] = student
	}
	matchRepo := newFakeMatchRepo()
	strategy := matching.NewHeuristicStrategy(nil, matching.DefaultTopN)
	uc := NewMatchUseCase(studentRepo, &fakeAlumniRepo{pool: pool}, matchRepo, strategy, zap.NewNop())
	return uc, matchRepo
}

func TestRunMatching_RanksPool(t *testing.T) {
	student := testStudent()
	strong := testAlumni("Computer Science", "Software Engineer")
	weak := testAlumni("Finance", "Portfolio Analyst")
	uc, _ := newTestUseCase(student, []*domain.AlumniProfile{weak, strong})

	candidates, err := uc.RunMatching(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].AlumniID != strong.ID {
		t.Fatalf("expected shared-major alumni first, got %+v", candidates[0])
	}
}

func TestRunMatching_StudentNotFound(t *testing.T) {
	uc, _ := newTestUseCase(nil, []*domain.AlumniProfile{testAlumni("Biology", "Researcher")})

	_, err := uc.RunMatching(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestRunMatching_EmptyPool(t *testing.T) {
	student := testStudent()
	uc, _ := newTestUseCase(student, nil)

	candidates, err := uc.RunMatching(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if candidates == nil || len(candidates) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", candidates)
	}
}

func TestPersistMatches_Idempotent(t *testing.T) {
	student := testStudent()
	alumni := testAlumni("Computer Science", "Software Engineer")
	uc, matchRepo := newTestUseCase(student, []*domain.AlumniProfile{alumni})

	candidates := []domain.MatchCandidate{
		{AlumniID: alumni.ID, Score: 70, Reasons: []string{"Both Computer Science majors"}},
	}

	if err := uc.PersistMatches(context.Background(), student.ID, candidates); err != nil {
		t.Fatalf("first persist failed: %v", err)
	}
	if len(matchRepo.matches) != 1 {
		t.Fatalf("expected 1 stored match, got %d", len(matchRepo.matches))
	}

	// The alumni accepts; a re-run must not reset the decision.
	if err := uc.SetMatchStatus(context.Background(), student.ID, alumni.ID, "accepted"); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if err := uc.PersistMatches(context.Background(), student.ID, candidates); err != nil {
		t.Fatalf("second persist failed: %v", err)
	}

	stored, err := matchRepo.GetByPair(context.Background(), student.ID, alumni.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchRepo.matches) != 1 {
		t.Fatalf("re-run duplicated rows: %d", len(matchRepo.matches))
	}
	if stored.Status != domain.MatchStatusAccepted {
		t.Fatalf("re-run reset status to %s", stored.Status)
	}
}

func TestPersistMatches_RowFailureSurfaced(t *testing.T) {
	student := testStudent()
	alumni := testAlumni("Computer Science", "Software Engineer")
	uc, matchRepo := newTestUseCase(student, []*domain.AlumniProfile{alumni})
	matchRepo.createErr = errors.New("connection reset")

	err := uc.PersistMatches(context.Background(), student.ID, []domain.MatchCandidate{
		{AlumniID: alumni.ID, Score: 70, Reasons: []string{"Both Computer Science majors"}},
	})
	if err == nil {
		t.Fatal("expected persistence error to surface")
	}
}

func TestSetMatchStatus_Invalid(t *testing.T) {
	student := testStudent()
	alumni := testAlumni("Computer Science", "Software Engineer")
	uc, _ := newTestUseCase(student, []*domain.AlumniProfile{alumni})

	err := uc.SetMatchStatus(context.Background(), student.ID, alumni.ID, "maybe")
	if !errors.Is(err, domain.ErrInvalidMatchStatus) {
		t.Fatalf("expected ErrInvalidMatchStatus, got %v", err)
	}
}

func TestSetMatchStatus_SameStatusTwice(t *testing.T) {
	student := testStudent()
	alumni := testAlumni("Computer Science", "Software Engineer")
	uc, _ := newTestUseCase(student, []*domain.AlumniProfile{alumni})

	if err := uc.PersistMatches(context.Background(), student.ID, []domain.MatchCandidate{
		{AlumniID: alumni.ID, Score: 70, Reasons: []string{"Both Computer Science majors"}},
	}); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := uc.SetMatchStatus(context.Background(), student.ID, alumni.ID, "declined"); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
}

func TestDeleteMatch(t *testing.T) {
	student := testStudent()
	alumni := testAlumni("Computer Science", "Software Engineer")
	uc, matchRepo := newTestUseCase(student, []*domain.AlumniProfile{alumni})

	if err := uc.PersistMatches(context.Background(), student.ID, []domain.MatchCandidate{
		{AlumniID: alumni.ID, Score: 70, Reasons: []string{"Both Computer Science majors"}},
	}); err != nil {
		t.Fatalf("persist failed: %v", err)
	}

	if err := uc.DeleteMatch(context.Background(), student.ID, alumni.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := matchRepo.GetByPair(context.Background(), student.ID, alumni.ID); !errors.Is(err, domain.ErrMatchNotFound) {
		t.Fatalf("expected match to be gone, got %v", err)
	}
}

func TestGetMatches_UnknownStudent(t *testing.T) {
	uc, _ := newTestUseCase(nil, nil)

	_, err := uc.GetMatches(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
