package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hokies-connect/backend/internal/delivery/http/handler"
	"github.com/hokies-connect/backend/internal/delivery/http/middleware"
	"github.com/hokies-connect/backend/internal/domain"
)

type Router struct {
	profileHandler     *handler.ProfileHandler
	matchHandler       *handler.MatchHandler
	callRequestHandler *handler.CallRequestHandler
	authMiddleware     *middleware.AuthMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	matchHandler *handler.MatchHandler,
	callRequestHandler *handler.CallRequestHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		profileHandler:     profileHandler,
		matchHandler:       matchHandler,
		callRequestHandler: callRequestHandler,
		authMiddleware:     authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("standing", func(fl validator.FieldLevel) bool {
			return domain.ClassStanding(fl.Field().String()).Valid()
		})
	}

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(r.authMiddleware.RequireAuth())
	{
		students := v1.Group("/students")
		{
			students.POST("", r.profileHandler.CreateStudentProfile)
			students.GET("/:student_id", r.profileHandler.GetStudentProfile)
			students.PUT("/:student_id", r.profileHandler.UpdateStudentProfile)
			students.DELETE("/:student_id", r.profileHandler.DeleteStudentProfile)

			students.POST("/:student_id/matches/run", r.matchHandler.RunMatching)
			students.GET("/:student_id/matches", r.matchHandler.GetMatches)
			students.PATCH("/:student_id/matches/:alumni_id/status", r.matchHandler.SetMatchStatus)
			students.DELETE("/:student_id/matches/:alumni_id", r.matchHandler.DeleteMatch)

			students.POST("/:student_id/call-requests", r.callRequestHandler.Create)
			students.GET("/:student_id/call-requests", r.callRequestHandler.ListForStudent)
		}

		alumni := v1.Group("/alumni")
		{
			alumni.POST("", r.profileHandler.CreateAlumniProfile)
			alumni.GET("", r.profileHandler.ListAlumniProfiles)
			alumni.GET("/:alumni_id", r.profileHandler.GetAlumniProfile)
			alumni.PUT("/:alumni_id", r.profileHandler.UpdateAlumniProfile)
			alumni.DELETE("/:alumni_id", r.profileHandler.DeleteAlumniProfile)

			alumni.GET("/:alumni_id/matches", r.matchHandler.GetMatchesForAlumni)
			alumni.GET("/:alumni_id/call-requests", r.callRequestHandler.ListForAlumni)
		}

		v1.PATCH("/call-requests/:request_id/status", r.callRequestHandler.Respond)
	}

	return router
}
