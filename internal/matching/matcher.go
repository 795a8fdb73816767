package matching

import (
	"context"
	"errors"
	"sort"

	"github.com/hokies-connect/backend/internal/domain"
)

// DefaultTopN bounds how many candidates a matching run returns.
const DefaultTopN = 10

const maxReasons = 5

var (
	// ErrRemoteUnavailable marks a transport or timeout failure of the
	// generative-language service. Absorbed by the fallback path.
	ErrRemoteUnavailable = errors.New("remote matching service unavailable")
	// ErrMalformedResponse marks a response the defensive parser could not
	// turn into candidates. Absorbed by the fallback path.
	ErrMalformedResponse = errors.New("malformed remote matching response")
)

// Strategy ranks a pool of alumni candidates against one student profile.
// Implementations return candidates sorted by descending score, truncated
// to the configured top-N.
type Strategy interface {
	Match(ctx context.Context, student *domain.StudentProfile, pool []*domain.AlumniProfile) ([]domain.MatchCandidate, error)
}

func sortAndTruncate(candidates []domain.MatchCandidate, topN int) []domain.MatchCandidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
