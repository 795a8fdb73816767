package matching

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/hokies-connect/backend/internal/domain"
)

func singletonPool() (uuid.UUID, map[uuid.UUID]*domain.AlumniProfile) {
	alumni := newAlumni([]string{"Computer Science"}, "Software Engineer", nil)
	return alumni.ID, map[uuid.UUID]*domain.AlumniProfile{alumni.ID: alumni}
}

func TestExtractJSONArray(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want string
	}{
		"bare":           {`[{"a": 1}]`, `[{"a": 1}]`},
		"fenced":         {"```json\n[{\"a\": 1}]\n```", `[{"a": 1}]`},
		"fenced no lang": {"```\n[1, 2]\n```", `[1, 2]`},
		"prose wrapped":  {"Here are the matches: [1, 2] as requested.", `[1, 2]`},
		"nested arrays":  {`[{"tags": ["a", "b"]}]`, `[{"tags": ["a", "b"]}]`},
		"bracket in str": {`[{"note": "see [1]"}] trailing`, `[{"note": "see [1]"}]`},
		"escaped quote":  {`[{"note": "a \" [b"}]`, `[{"note": "a \" [b"}]`},
	}
	for name, tc := range cases {
		got, err := extractJSONArray(tc.raw)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", name, got, tc.want)
		}
	}
}

func TestExtractJSONArray_Malformed(t *testing.T) {
	for name, raw := range map[string]string{
		"no array":     "no brackets here",
		"unterminated": `[{"a": 1}`,
		"empty":        "",
		"object only":  `{"a": 1}`,
	} {
		if _, err := extractJSONArray(raw); !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("%s: expected ErrMalformedResponse, got %v", name, err)
		}
	}
}

func TestParseCandidates_ClampsScore(t *testing.T) {
	id, pool := singletonPool()

	for raw, want := range map[string]int{
		fmt.Sprintf(`[{"alumniId": %q, "matchScore": 150, "matchReasons": ["x"]}]`, id):  100,
		fmt.Sprintf(`[{"alumniId": %q, "matchScore": -20, "matchReasons": ["x"]}]`, id):  0,
		fmt.Sprintf(`[{"alumniId": %q, "matchScore": 66.6, "matchReasons": ["x"]}]`, id): 67,
	} {
		candidates, err := parseCandidates(raw, pool)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if candidates[0].Score != want {
			t.Fatalf("got score %d, want %d", candidates[0].Score, want)
		}
	}
}

func TestParseCandidates_CompatibilityAsReasonFallback(t *testing.T) {
	id, pool := singletonPool()
	raw := fmt.Sprintf(`[{"alumniId": %q, "matchScore": 75, "compatibility": ["shared major"]}]`, id)

	candidates, err := parseCandidates(raw, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates[0].Reasons) != 1 || candidates[0].Reasons[0] != "shared major" {
		t.Fatalf("expected compatibility to back reasons, got %v", candidates[0].Reasons)
	}
}

func TestParseCandidates_DropsPositiveScoreWithoutReasons(t *testing.T) {
	id, pool := singletonPool()
	raw := fmt.Sprintf(`[{"alumniId": %q, "matchScore": 75}]`, id)

	if _, err := parseCandidates(raw, pool); !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse when no entries survive, got %v", err)
	}
}

func TestParseCandidates_TruncatesReasons(t *testing.T) {
	id, pool := singletonPool()
	raw := fmt.Sprintf(`[{"alumniId": %q, "matchScore": 75, "matchReasons": ["a","b","c","d","e","f","g"]}]`, id)

	candidates, err := parseCandidates(raw, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates[0].Reasons) != maxReasons {
		t.Fatalf("expected %d reasons, got %d", maxReasons, len(candidates[0].Reasons))
	}
}

func TestParseCandidates_InvalidUUIDDropped(t *testing.T) {
	id, pool := singletonPool()
	raw := fmt.Sprintf(`[
		{"alumniId": "not-a-uuid", "matchScore": 90, "matchReasons": ["x"]},
		{"alumniId": %q, "matchScore": 60, "matchReasons": ["y"]}
	]`, id)

	candidates, err := parseCandidates(raw, pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 || candidates[0].AlumniID != id {
		t.Fatalf("expected only the valid entry, got %+v", candidates)
	}
}
