package matching

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/hokies-connect/backend/internal/domain"
)

const (
	majorOverlapPoints   = 40
	fieldAlignmentPoints = 30
	clubOverlapPoints    = 20
	jitterRange          = 10.0
)

// HeuristicStrategy is the deterministic, rule-based scorer. It needs no
// external service and is the fallback for the AI strategy.
//
// The rand source adds a small tie-breaking jitter in [0,10) so repeated
// runs over near-identical candidates vary their ordering. A nil source
// disables the jitter entirely, which tests rely on.
type HeuristicStrategy struct {
	rng  *rand.Rand
	topN int
}

func NewHeuristicStrategy(rng *rand.Rand, topN int) *HeuristicStrategy {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &HeuristicStrategy{rng: rng, topN: topN}
}

func (s *HeuristicStrategy) Match(_ context.Context, student *domain.StudentProfile, pool []*domain.AlumniProfile) ([]domain.MatchCandidate, error) {
	candidates := make([]domain.MatchCandidate, 0, len(pool))
	for _, alumni := range pool {
		candidates = append(candidates, s.Score(student, alumni))
	}
	return sortAndTruncate(candidates, s.topN), nil
}

// Score computes the 0-100 compatibility of one student/alumni pair.
func (s *HeuristicStrategy) Score(student *domain.StudentProfile, alumni *domain.AlumniProfile) domain.MatchCandidate {
	base := 0
	var reasons []string

	if major, ok := overlapTerm(student.Majors, alumni.Majors); ok {
		base += majorOverlapPoints
		reasons = append(reasons, fmt.Sprintf("Both %s majors", major))
	}

	if field, ok := fieldAlignment(student.Majors, alumni.CurrentPosition); ok {
		base += fieldAlignmentPoints
		reasons = append(reasons, fmt.Sprintf("Career path in %s", field))
	}

	if club, ok := overlapTerm(student.ClubPositions, alumni.ClubAffiliations()); ok {
		base += clubOverlapPoints
		reasons = append(reasons, fmt.Sprintf("Both involved in %s", club))
	}

	total := float64(base)
	if s.rng != nil {
		total += s.rng.Float64() * jitterRange
	}

	score := int(math.Round(math.Min(math.Max(total, 0), 100)))
	if score > 0 && len(reasons) == 0 {
		reasons = append(reasons, "Potential connection worth exploring")
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return domain.MatchCandidate{
		AlumniID: alumni.ID,
		Score:    score,
		Reasons:  reasons,
	}
}

// overlapTerm reports the first student-side term that case-insensitively
// substring-matches any candidate term in either direction. Empty strings
// on either side never match.
func overlapTerm(mine, theirs []string) (string, bool) {
	for _, m := range mine {
		lm := strings.ToLower(strings.TrimSpace(m))
		if lm == "" {
			continue
		}
		for _, t := range theirs {
			lt := strings.ToLower(strings.TrimSpace(t))
			if lt == "" {
				continue
			}
			if strings.Contains(lm, lt) || strings.Contains(lt, lm) {
				return strings.TrimSpace(m), true
			}
		}
	}
	return "", false
}

// careerKeywords maps majors to career fields that count as aligned even
// when the position title does not name the major itself. A Computer
// Science major is aligned with a Software Engineering career.
var careerKeywords = map[string][]string{
	"computer science":       {"software", "developer", "programmer", "data scien", "machine learning"},
	"computer engineering":   {"software", "hardware", "embedded", "firmware"},
	"electrical engineering": {"electronics", "power systems", "embedded"},
	"mechanical engineering": {"automotive", "aerospace", "manufacturing", "robotics"},
	"civil engineering":      {"construction", "structural", "infrastructure", "transportation"},
	"business":               {"consulting", "marketing", "management", "operations"},
	"finance":                {"banking", "investment", "accounting", "trading"},
	"biology":                {"biotech", "pharmaceutical", "healthcare"},
	"communication":          {"media", "public relations", "journalism"},
}

func fieldAlignment(majors []string, position string) (string, bool) {
	pos := strings.ToLower(strings.TrimSpace(position))
	if pos == "" {
		return "", false
	}
	for _, m := range majors {
		lm := strings.ToLower(strings.TrimSpace(m))
		if lm == "" {
			continue
		}
		if strings.Contains(pos, lm) {
			return strings.TrimSpace(position), true
		}
		for _, keyword := range careerKeywords[lm] {
			if strings.Contains(pos, keyword) {
				return strings.TrimSpace(position), true
			}
		}
	}
	return "", false
}
