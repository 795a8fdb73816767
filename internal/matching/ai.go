package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/logger"
)

const defaultRemoteTimeout = 15 * time.Second

const responseLogPreview = 200

// TextGenerator is the outbound contract to the generative-language
// service. The response is unstructured text that must be parsed
// defensively.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// AIStrategy delegates ranking judgment to a remote model and falls back to
// the wrapped strategy on any transport or parse failure. The fallback is
// the component's most important contract: matching is never blocked by an
// unavailable or malformed remote response.
type AIStrategy struct {
	generator TextGenerator
	fallback  Strategy
	timeout   time.Duration
	topN      int
	logger    *zap.Logger
}

func NewAIStrategy(generator TextGenerator, fallback Strategy, timeout time.Duration, topN int, log *zap.Logger) *AIStrategy {
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &AIStrategy{
		generator: generator,
		fallback:  fallback,
		timeout:   timeout,
		topN:      topN,
		logger:    log,
	}
}

func (s *AIStrategy) Match(ctx context.Context, student *domain.StudentProfile, pool []*domain.AlumniProfile) ([]domain.MatchCandidate, error) {
	if len(pool) == 0 {
		return nil, nil
	}
	if s.generator == nil {
		return s.fallback.Match(ctx, student, pool)
	}

	byID := make(map[uuid.UUID]*domain.AlumniProfile, len(pool))
	for _, alumni := range pool {
		byID[alumni.ID] = alumni
	}

	prompt := buildPrompt(student, pool, s.topN)

	remoteCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.GenerateText(remoteCtx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
		}
		s.logger.Warn("remote matching failed, using heuristic fallback",
			zap.String("student_id", student.ID.String()),
			zap.Error(err),
		)
		return s.fallback.Match(ctx, student, pool)
	}

	candidates, err := parseCandidates(raw, byID)
	if err != nil {
		s.logger.Warn("remote matching response unusable, using heuristic fallback",
			zap.String("student_id", student.ID.String()),
			zap.String("response_preview", logger.Truncate(raw, responseLogPreview)),
			zap.Error(err),
		)
		return s.fallback.Match(ctx, student, pool)
	}

	return sortAndTruncate(candidates, s.topN), nil
}

func buildPrompt(student *domain.StudentProfile, pool []*domain.AlumniProfile, topN int) string {
	var b strings.Builder

	b.WriteString("You are a mentorship matching assistant for a university alumni network.\n")
	b.WriteString("Compare the student below against every alumni candidate on: major alignment, ")
	b.WriteString("field and career compatibility, club overlap, academic journey signals, and location.\n\n")

	b.WriteString("Student:\n")
	fmt.Fprintf(&b, "- Name: %s\n", student.Name)
	fmt.Fprintf(&b, "- Majors: %s\n", strings.Join(student.Majors, ", "))
	if len(student.Minors) > 0 {
		fmt.Fprintf(&b, "- Minors: %s\n", strings.Join(student.Minors, ", "))
	}
	fmt.Fprintf(&b, "- Standing: %s\n", student.CurrentStanding)
	if len(student.ClubPositions) > 0 {
		fmt.Fprintf(&b, "- Club positions: %s\n", strings.Join(student.ClubPositions, ", "))
	}
	for _, entry := range student.RelevantJourneyEntries() {
		fmt.Fprintf(&b, "- %s year:", entry.Year)
		if len(entry.Courses) > 0 {
			fmt.Fprintf(&b, " courses %s;", strings.Join(entry.Courses, ", "))
		}
		if len(entry.Clubs) > 0 {
			fmt.Fprintf(&b, " clubs %s;", strings.Join(entry.Clubs, ", "))
		}
		if len(entry.Internships) > 0 {
			fmt.Fprintf(&b, " internships %s;", strings.Join(entry.Internships, ", "))
		}
		if entry.Research != nil {
			fmt.Fprintf(&b, " research %s;", *entry.Research)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nAlumni candidates:\n")
	for _, alumni := range pool {
		fmt.Fprintf(&b, "- id=%s name=%s majors=%s position=%s company=%s location=%s",
			alumni.ID, alumni.Name, strings.Join(alumni.Majors, ", "),
			alumni.CurrentPosition, alumni.Company, alumni.Location,
		)
		if clubs := alumni.ClubAffiliations(); len(clubs) > 0 {
			fmt.Fprintf(&b, " clubs=%s", strings.Join(clubs, ", "))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `
Return a JSON array of at most %d objects, best matches first, shaped exactly as:
[{"alumniId": "<id from the list above>", "matchScore": <0-100>, "compatibility": ["<short tag>"], "matchReasons": ["<short reason>"]}]
Only reference alumni ids from the list above. Return only valid JSON with no
explanations, markdown, or text before or after the array.
`, topN)

	return b.String()
}
