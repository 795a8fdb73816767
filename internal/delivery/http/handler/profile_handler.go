package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hokies-connect/backend/internal/domain"
	"github.com/hokies-connect/backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// CreateStudentProfile handles POST /students
// @Summary Create student profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body profile.CreateStudentProfileRequest true "Student profile data"
// @Success 201 {object} domain.StudentProfile
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students [post]
func (h *ProfileHandler) CreateStudentProfile(c *gin.Context) {
	var req profile.CreateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.profileUseCase.CreateStudentProfile(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create student profile",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetStudentProfile handles GET /students/:student_id
// @Summary Get student profile
// @Tags profiles
// @Produce json
// @Success 200 {object} domain.StudentProfile
// @Failure 404 {object} ErrorResponse
// @Router /students/{student_id} [get]
func (h *ProfileHandler) GetStudentProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}

	studentProfile, err := h.profileUseCase.GetStudentProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "student profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get student profile",
		})
		return
	}

	c.JSON(http.StatusOK, studentProfile)
}

// UpdateStudentProfile handles PUT /students/:student_id
func (h *ProfileHandler) UpdateStudentProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}

	var req profile.UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.profileUseCase.UpdateStudentProfile(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "student profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update student profile",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteStudentProfile handles DELETE /students/:student_id
func (h *ProfileHandler) DeleteStudentProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "student_id")
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteStudentProfile(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "student profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete student profile",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateAlumniProfile handles POST /alumni
// @Summary Create alumni profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body profile.CreateAlumniProfileRequest true "Alumni profile data"
// @Success 201 {object} domain.AlumniProfile
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /alumni [post]
func (h *ProfileHandler) CreateAlumniProfile(c *gin.Context) {
	var req profile.CreateAlumniProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	created, err := h.profileUseCase.CreateAlumniProfile(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to create alumni profile",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetAlumniProfile handles GET /alumni/:alumni_id
func (h *ProfileHandler) GetAlumniProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "alumni_id")
	if !ok {
		return
	}

	alumniProfile, err := h.profileUseCase.GetAlumniProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAlumniNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "alumni profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get alumni profile",
		})
		return
	}

	c.JSON(http.StatusOK, alumniProfile)
}

// ListAlumniProfiles handles GET /alumni
func (h *ProfileHandler) ListAlumniProfiles(c *gin.Context) {
	profiles, err := h.profileUseCase.ListAlumniProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list alumni profiles",
		})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// UpdateAlumniProfile handles PUT /alumni/:alumni_id
func (h *ProfileHandler) UpdateAlumniProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "alumni_id")
	if !ok {
		return
	}

	var req profile.UpdateAlumniProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.profileUseCase.UpdateAlumniProfile(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, domain.ErrAlumniNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "alumni profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update alumni profile",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAlumniProfile handles DELETE /alumni/:alumni_id
func (h *ProfileHandler) DeleteAlumniProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "alumni_id")
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteAlumniProfile(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAlumniNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "alumni profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to delete alumni profile",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
