package router

import (
	"net/http"

	"owl/internal/api/handler"
	"owl/internal/api/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter wires the Owl API surface: open token/registration/problem
// routes, plus a bearer-protected group for the identity-scoped ones.
func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	problemHandler *handler.ProblemHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RequestLogging(logger))

	// Liveness
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Owl is solving the problems!"))
	})

	r.Post("/jwt", authHandler.IssueToken)
	r.Post("/users", userHandler.Register)

	r.Get("/all-problems", problemHandler.ListAll)
	r.Get("/easy-problems", problemHandler.ListEasy)
	r.Get("/medium-problems", problemHandler.ListMedium)
	r.Get("/advance-problems", problemHandler.ListAdvance)
	r.Get("/problem/{id}", problemHandler.GetByID)

	// Identity-scoped routes behind the bearer gate
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/users/single-user", userHandler.GetSingleUser)
		r.Patch("/user/solved", userHandler.MarkSolved)
	})

	return r
}
