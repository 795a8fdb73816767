package matching

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/hokies-connect/backend/internal/domain"
)

func newStudent(majors, clubs []string) *domain.StudentProfile {
	return &domain.StudentProfile{
		ID:              uuid.New(),
		Name:            "Taylor Reed",
		Majors:          majors,
		CurrentStanding: domain.StandingJunior,
		ClubPositions:   clubs,
	}
}

func newAlumni(majors []string, position string, clubs []string) *domain.AlumniProfile {
	profile := &domain.AlumniProfile{
		ID:              uuid.New(),
		Name:            "Jordan Vance",
		GraduationYear:  2018,
		CurrentPosition: position,
		Company:         "Acme Corp",
		Location:        "Blacksburg, VA",
		Majors:          majors,
	}
	if len(clubs) > 0 {
		profile.JourneyEntries = domain.JourneyEntries{
			{Year: domain.StandingSenior, Clubs: clubs},
		}
	}
	return profile
}

func TestScore_MajorAndFieldOverlap(t *testing.T) {
	strategy := NewHeuristicStrategy(nil, DefaultTopN)

	student := newStudent([]string{"Computer Science"}, nil)
	alumni := newAlumni([]string{"Computer Science"}, "Software Engineering", nil)

	candidate := strategy.Score(student, alumni)
	if candidate.Score < 70 {
		t.Fatalf("expected score >= 70 for major + field overlap, got %d", candidate.Score)
	}
	if !containsReason(candidate.Reasons, "Both Computer Science majors") {
		t.Fatalf("expected major overlap reason, got %v", candidate.Reasons)
	}
	if !containsReason(candidate.Reasons, "Career path in Software Engineering") {
		t.Fatalf("expected field alignment reason, got %v", candidate.Reasons)
	}
}

func TestScore_NoOverlap(t *testing.T) {
	strategy := NewHeuristicStrategy(nil, DefaultTopN)

	student := newStudent([]string{"Civil Engineering"}, []string{"Concrete Canoe"})
	alumni := newAlumni([]string{"Finance"}, "Portfolio Analyst", []string{"Chess Club"})

	candidate := strategy.Score(student, alumni)
	if candidate.Score != 0 {
		t.Fatalf("expected zero score without jitter, got %d", candidate.Score)
	}
	if len(candidate.Reasons) != 0 {
		t.Fatalf("expected no reasons for a zero score, got %v", candidate.Reasons)
	}
}

func TestScore_Deterministic(t *testing.T) {
	strategy := NewHeuristicStrategy(nil, DefaultTopN)

	student := newStudent([]string{"Computer Science"}, []string{"Robotics Club President"})
	alumni := newAlumni([]string{"Computer Science"}, "Software Engineer", []string{"Robotics Club"})

	first := strategy.Score(student, alumni)
	for i := 0; i < 10; i++ {
		next := strategy.Score(student, alumni)
		if next.Score != first.Score {
			t.Fatalf("score changed across runs without jitter: %d vs %d", first.Score, next.Score)
		}
	}
	// 40 major + 30 field + 20 club
	if first.Score != 90 {
		t.Fatalf("expected base score 90, got %d", first.Score)
	}
}

func TestScore_ClubOverlap(t *testing.T) {
	strategy := NewHeuristicStrategy(nil, DefaultTopN)

	student := newStudent([]string{"Biology"}, []string{"Debate Team"})
	alumni := newAlumni([]string{"History"}, "Museum Curator", []string{"Debate Team Captain"})

	candidate := strategy.Score(student, alumni)
	if candidate.Score != 20 {
		t.Fatalf("expected club-only score 20, got %d", candidate.Score)
	}
	if !containsReason(candidate.Reasons, "Both involved in Debate Team") {
		t.Fatalf("expected club overlap reason, got %v", candidate.Reasons)
	}
}

func TestScore_EmptyAlumniFields(t *testing.T) {
	strategy := NewHeuristicStrategy(nil, DefaultTopN)

	student := newStudent([]string{"Computer Science"}, []string{"ACM"})
	alumni := newAlumni(nil, "", nil)

	candidate := strategy.Score(student, alumni)
	if candidate.Score != 0 {
		t.Fatalf("expected zero score for empty alumni fields, got %d", candidate.Score)
	}
}

func TestScore_BoundsWithJitter(t *testing.T) {
	strategy := NewHeuristicStrategy(rand.New(rand.NewSource(42)), DefaultTopN)

	student := newStudent([]string{"Computer Science"}, []string{"Robotics Club"})
	pool := []*domain.AlumniProfile{
		newAlumni([]string{"Computer Science"}, "Software Engineer", []string{"Robotics Club"}),
		newAlumni([]string{"Finance"}, "Investment Banker", nil),
		newAlumni(nil, "", nil),
	}

	for i := 0; i < 100; i++ {
		for _, alumni := range pool {
			candidate := strategy.Score(student, alumni)
			if candidate.Score < 0 || candidate.Score > 100 {
				t.Fatalf("score out of bounds: %d", candidate.Score)
			}
			if candidate.Score > 0 && len(candidate.Reasons) == 0 {
				t.Fatalf("positive score %d with no reasons", candidate.Score)
			}
		}
	}
}

func TestMatch_SortedAndTruncated(t *testing.T) {
	strategy := NewHeuristicStrategy(rand.New(rand.NewSource(7)), DefaultTopN)

	student := newStudent([]string{"Computer Science"}, []string{"ACM"})

	var pool []*domain.AlumniProfile
	for i := 0; i < 25; i++ {
		major := "Finance"
		if i%2 == 0 {
			major = "Computer Science"
		}
		pool = append(pool, newAlumni([]string{major}, fmt.Sprintf("Analyst %d", i), nil))
	}

	candidates, err := strategy.Match(context.Background(), student, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(candidates) != DefaultTopN {
		t.Fatalf("expected exactly %d candidates, got %d", DefaultTopN, len(candidates))
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i-1].Score < candidates[i].Score {
			t.Fatalf("candidates not sorted descending at %d: %d < %d",
				i, candidates[i-1].Score, candidates[i].Score)
		}
	}
}

func TestMatch_EmptyPool(t *testing.T) {
	strategy := NewHeuristicStrategy(nil, DefaultTopN)

	candidates, err := strategy.Match(context.Background(), newStudent([]string{"Math"}, nil), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates for empty pool, got %d", len(candidates))
	}
}

func TestScore_StudentWithoutMajors(t *testing.T) {
	strategy := NewHeuristicStrategy(nil, DefaultTopN)

	// Should not happen given the profile invariant, but degrades to
	// club-only scoring rather than failing.
	student := newStudent(nil, []string{"Hiking Club"})
	alumni := newAlumni([]string{"Geology"}, "Field Researcher", []string{"Hiking Club"})

	candidate := strategy.Score(student, alumni)
	if candidate.Score != 20 {
		t.Fatalf("expected club-only score 20, got %d", candidate.Score)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
