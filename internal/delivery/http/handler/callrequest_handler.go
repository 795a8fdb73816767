package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/usecase/callrequest"
)

type CallRequestHandler struct {
	callRequestUseCase *callrequest.CallRequestUseCase
}

func NewCallRequestHandler(callRequestUseCase *callrequest.CallRequestUseCase) *CallRequestHandler {
	return &CallRequestHandler{
		callRequestUseCase: callRequestUseCase,
	}
}

// RespondCallRequest represents the alumni's decision
type RespondCallRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}

// Create handles POST /students/:student_id/call-requests
func (h *CallRequestHandler) Create(c *gin.Context) {
	studentID, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}
	if !requireOwner(c, studentID) {
		return
	}

	var req callrequest.CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.callRequestUseCase.Create(c.Request.Context(), studentID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			c.JSON(http.StatusConflict, ErrorResponse{
				Error: "no match with this alumni yet",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create call request",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListForStudent handles GET /students/:student_id/call-requests
func (h *CallRequestHandler) ListForStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}

	requests, err := h.callRequestUseCase.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list call requests",
		})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ListForAlumni handles GET /alumni/:alumni_id/call-requests
func (h *CallRequestHandler) ListForAlumni(c *gin.Context) {
	alumniID, ok := parseIDParam(c, "alumni_id")
	if !ok {
		return
	}

	requests, err := h.callRequestUseCase.ListForAlumni(c.Request.Context(), alumniID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list call requests",
		})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Respond handles PATCH /call-requests/:request_id/status
func (h *CallRequestHandler) Respond(c *gin.Context) {
	requestID, ok := parseIDParam(c, "request_id")
	if !ok {
		return
	}
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RespondCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	if err := h.callRequestUseCase.Respond(c.Request.Context(), requestID, callerID, req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrCallRequestNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "call request not found",
			})
		case errors.Is(err, domain.ErrNotCallRecipient):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "forbidden",
			})
		case errors.Is(err, domain.ErrInvalidCallStatus):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "invalid call request status",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "failed to update call request",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
