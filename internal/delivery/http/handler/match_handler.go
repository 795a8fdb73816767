package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

// RunMatchingResponse carries a fresh matching run's candidates plus a flag
// the UI uses to offer persisting them.
type RunMatchingResponse struct {
	Candidates []domain.MatchCandidate `json:"candidates"`
	Persisted  bool                    `json:"persisted"`
}

// SetMatchStatusRequest represents an accept/decline decision
type SetMatchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending accepted declined"`
}

// RunMatching handles POST /students/:student_id/matches/run
// @Summary Run alumni matching for a student
// @Description Scores the alumni pool with the AI matcher, falling back to the heuristic scorer. Pass persist=true to store the results.
// @Tags matches
// @Produce json
// @Success 200 {object} RunMatchingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/{student_id}/matches/run [post]
func (h *MatchHandler) RunMatching(c *gin.Context) {
	studentID, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}
	if !requireOwner(c, studentID) {
		return
	}

	candidates, err := h.matchUseCase.RunMatching(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "create your profile first",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "matching run failed",
		})
		return
	}

	response := RunMatchingResponse{Candidates: candidates}

	if c.Query("persist") == "true" && len(candidates) > 0 {
		if err := h.matchUseCase.PersistMatches(c.Request.Context(), studentID, candidates); err != nil {
			// Retryable: matching succeeded, only the write failed.
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "failed to save matches, try again",
			})
			return
		}
		response.Persisted = true
	}

	c.JSON(http.StatusOK, response)
}

// GetMatches handles GET /students/:student_id/matches
// @Summary List a student's persisted matches
// @Tags matches
// @Produce json
// @Success 200 {array} domain.MatchWithAlumni
// @Failure 404 {object} ErrorResponse
// @Router /students/{student_id}/matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	studentID, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}

	matches, err := h.matchUseCase.GetMatches(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "student profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatchesForAlumni handles GET /alumni/:alumni_id/matches
func (h *MatchHandler) GetMatchesForAlumni(c *gin.Context) {
	alumniID, ok := parseIDParam(c, "alumni_id")
	if !ok {
		return
	}

	matches, err := h.matchUseCase.GetMatchesForAlumni(c.Request.Context(), alumniID)
	if err != nil {
		if errors.Is(err, domain.ErrAlumniNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "alumni profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// DeleteMatch handles DELETE /students/:student_id/matches/:alumni_id
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	studentID, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}
	alumniID, ok := parseIDParam(c, "alumni_id")
	if !ok {
		return
	}
	if !requireOwner(c, studentID) {
		return
	}

	if err := h.matchUseCase.DeleteMatch(c.Request.Context(), studentID, alumniID); err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "match not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete match",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetMatchStatus handles PATCH /students/:student_id/matches/:alumni_id/status
// @Summary Accept or decline a match
// @Tags matches
// @Accept json
// @Produce json
// @Param request body SetMatchStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /students/{student_id}/matches/{alumni_id}/status [patch]
func (h *MatchHandler) SetMatchStatus(c *gin.Context) {
	studentID, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}
	alumniID, ok := parseIDParam(c, "alumni_id")
	if !ok {
		return
	}
	if !requireOwner(c, studentID) {
		return
	}

	var req SetMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	err := h.matchUseCase.SetMatchStatus(c.Request.Context(), studentID, alumniID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "match not found",
			})
		case errors.Is(err, domain.ErrInvalidMatchStatus):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid match status",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update match status",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
