package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hokies-connect/backend/internal/domain"
)

// stubGenerator returns a canned response or error and records whether it
// was called.
type stubGenerator struct {
	response string
	err      error
	called   bool
	prompt   string
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.called = true
	g.prompt = prompt
	return g.response, g.err
}

func aiTestFixtures() (*domain.StudentProfile, []*domain.AlumniProfile) {
	student := newStudent([]string{"Computer Science"}, []string{"ACM"})
	pool := []*domain.AlumniProfile{
		newAlumni([]string{"Computer Science"}, "Software Engineer", nil),
		newAlumni([]string{"Finance"}, "Investment Banker", nil),
	}
	return student, pool
}

func newAIStrategy(gen TextGenerator) *AIStrategy {
	fallback := NewHeuristicStrategy(nil, DefaultTopN)
	return NewAIStrategy(gen, fallback, time.Second, DefaultTopN, zap.NewNop())
}

func TestAIMatch_ValidResponse(t *testing.T) {
	student, pool := aiTestFixtures()
	gen := &stubGenerator{
		response: fmt.Sprintf(`[
			{"alumniId": %q, "matchScore": 88, "compatibility": ["major"], "matchReasons": ["Shared major and career field"]},
			{"alumniId": %q, "matchScore": 35, "compatibility": ["network"], "matchReasons": ["Broad industry exposure"]}
		]`, pool[0].ID, pool[1].ID),
	}

	candidates, err := newAIStrategy(gen).Match(context.Background(), student, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].AlumniID != pool[0].ID || candidates[0].Score != 88 {
		t.Fatalf("unexpected top candidate: %+v", candidates[0])
	}
	if candidates[0].Reasons[0] != "Shared major and career field" {
		t.Fatalf("unexpected reasons: %v", candidates[0].Reasons)
	}
}

func TestAIMatch_FencedResponse(t *testing.T) {
	student, pool := aiTestFixtures()
	gen := &stubGenerator{
		response: fmt.Sprintf("```json\n[{\"alumniId\": %q, \"matchScore\": 72, \"matchReasons\": [\"Career alignment\"]}]\n```", pool[0].ID),
	}

	candidates, err := newAIStrategy(gen).Match(context.Background(), student, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Score != 72 {
		t.Fatalf("unexpected candidates: %+v", candidates)
	}
}

func TestAIMatch_GeneratorErrorFallsBack(t *testing.T) {
	student, pool := aiTestFixtures()
	gen := &stubGenerator{err: errors.New("connection refused")}

	candidates, err := newAIStrategy(gen).Match(context.Background(), student, pool)
	if err != nil {
		t.Fatalf("fallback must absorb remote errors, got %v", err)
	}
	if !gen.called {
		t.Fatal("generator was never called")
	}
	if len(candidates) != 2 {
		t.Fatalf("expected heuristic fallback over full pool, got %d candidates", len(candidates))
	}
	// The heuristic ranks the shared-major alumni first.
	if candidates[0].AlumniID != pool[0].ID {
		t.Fatalf("unexpected fallback ranking: %+v", candidates)
	}
}

func TestAIMatch_MalformedResponseFallsBack(t *testing.T) {
	student, pool := aiTestFixtures()

	for name, response := range map[string]string{
		"prose":        "I would recommend the software engineer as the best mentor.",
		"truncated":    `[{"alumniId": "`,
		"empty array":  "[]",
		"unknown ids":  `[{"alumniId": "8b9e2f14-0000-0000-0000-000000000000", "matchScore": 90, "matchReasons": ["x"]}]`,
		"not an array": `{"alumniId": "abc"}`,
	} {
		gen := &stubGenerator{response: response}
		candidates, err := newAIStrategy(gen).Match(context.Background(), student, pool)
		if err != nil {
			t.Fatalf("%s: fallback must absorb parse errors, got %v", name, err)
		}
		if len(candidates) == 0 {
			t.Fatalf("%s: expected heuristic fallback candidates", name)
		}
	}
}

func TestAIMatch_DropsUnknownIDsKeepsKnown(t *testing.T) {
	student, pool := aiTestFixtures()
	gen := &stubGenerator{
		response: fmt.Sprintf(`[
			{"alumniId": %q, "matchScore": 80, "matchReasons": ["Strong fit"]},
			{"alumniId": %q, "matchScore": 95, "matchReasons": ["Hallucinated"]}
		]`, pool[0].ID, uuid.New()),
	}

	candidates, err := newAIStrategy(gen).Match(context.Background(), student, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected the unknown id to be dropped, got %+v", candidates)
	}
	if candidates[0].AlumniID != pool[0].ID {
		t.Fatalf("wrong survivor: %+v", candidates[0])
	}
}

func TestAIMatch_EmptyPoolSkipsRemote(t *testing.T) {
	student, _ := aiTestFixtures()
	gen := &stubGenerator{response: "[]"}

	candidates, err := newAIStrategy(gen).Match(context.Background(), student, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(candidates))
	}
	if gen.called {
		t.Fatal("remote must not be called for an empty pool")
	}
}

func TestAIMatch_NilGeneratorUsesFallback(t *testing.T) {
	student, pool := aiTestFixtures()

	candidates, err := newAIStrategy(nil).Match(context.Background(), student, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected heuristic candidates, got %d", len(candidates))
	}
}

func TestAIMatch_PromptListsPool(t *testing.T) {
	student, pool := aiTestFixtures()
	gen := &stubGenerator{
		response: fmt.Sprintf(`[{"alumniId": %q, "matchScore": 50, "matchReasons": ["ok"]}]`, pool[0].ID),
	}

	if _, err := newAIStrategy(gen).Match(context.Background(), student, pool); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, alumni := range pool {
		want := "id=" + alumni.ID.String()
		if !strings.Contains(gen.prompt, want) {
			t.Fatalf("prompt missing %s", want)
		}
	}
}
