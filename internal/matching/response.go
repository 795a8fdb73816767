package matching

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/hokies-connect/backend/internal/domain"
)

// remoteCandidate mirrors the JSON shape the prompt demands from the model.
type remoteCandidate struct {
	AlumniID      string   `json:"alumniId"`
	MatchScore    float64  `json:"matchScore"`
	Compatibility []string `json:"compatibility"`
	MatchReasons  []string `json:"matchReasons"`
}

// parseCandidates turns raw model output into validated candidates. Entries
// referencing ids outside the supplied pool are dropped, not fatal; a
// response with no JSON array, or no surviving entries, is malformed.
func parseCandidates(raw string, pool map[uuid.UUID]*domain.AlumniProfile) ([]domain.MatchCandidate, error) {
	payload, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var remotes []remoteCandidate
	if err := json.Unmarshal([]byte(payload), &remotes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(remotes) == 0 {
		return nil, fmt.Errorf("%w: empty candidate array", ErrMalformedResponse)
	}

	candidates := make([]domain.MatchCandidate, 0, len(remotes))
	for _, rc := range remotes {
		id, err := uuid.Parse(strings.TrimSpace(rc.AlumniID))
		if err != nil {
			continue
		}
		if _, ok := pool[id]; !ok {
			continue
		}

		score := int(math.Round(math.Min(math.Max(rc.MatchScore, 0), 100)))
		reasons := rc.MatchReasons
		if len(reasons) == 0 {
			reasons = rc.Compatibility
		}
		if score > 0 && len(reasons) == 0 {
			continue
		}
		if len(reasons) > maxReasons {
			reasons = reasons[:maxReasons]
		}

		candidates = append(candidates, domain.MatchCandidate{
			AlumniID:      id,
			Score:         score,
			Reasons:       reasons,
			Compatibility: rc.Compatibility,
		})
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no entries referenced the candidate pool", ErrMalformedResponse)
	}
	return candidates, nil
}

// extractJSONArray pulls the first JSON-array-shaped substring out of free
// text. The model may fence the payload in markdown or wrap it in prose.
func extractJSONArray(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
			cleaned = cleaned[:idx]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	start := strings.Index(cleaned, "[")
	if start == -1 {
		return "", fmt.Errorf("%w: no JSON array in response", ErrMalformedResponse)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		c := cleaned[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return cleaned[start : i+1], nil
				}
			}
		}
	}
	return "", fmt.Errorf("%w: unterminated JSON array", ErrMalformedResponse)
}
