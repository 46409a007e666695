package handler

import (
	"errors"
	"net/http"
	"time"

	"owl/internal/cache"
	"owl/internal/core/model"
	"owl/internal/core/service"

	"github.com/go-chi/chi/v5"
)

type ProblemHandler struct {
	problems service.ProblemService
	cacheTTL time.Duration
}

func NewProblemHandler(problems service.ProblemService, cacheTTL time.Duration) *ProblemHandler {
	return &ProblemHandler{
		problems: problems,
		cacheTTL: cacheTTL,
	}
}

func (h *ProblemHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "")
}

func (h *ProblemHandler) ListEasy(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.LevelEasy)
}

func (h *ProblemHandler) ListMedium(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.LevelMedium)
}

func (h *ProblemHandler) ListAdvance(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, model.LevelAdvance)
}

// list serves the {id,title,level} projections, cache-first. Problems are
// read-only so cached listings only ever age out, never go stale by
// mutation.
func (h *ProblemHandler) list(w http.ResponseWriter, r *http.Request, level string) {
	key := "problems:all"
	if level != "" {
		key = "problems:" + level
	}

	var cached []model.ProblemSummary
	if err := cache.Get(r.Context(), key, &cached); err == nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	summaries, err := h.problems.List(r.Context(), level)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []model.ProblemSummary{}
	}

	_ = cache.Set(r.Context(), key, summaries, h.cacheTTL)
	writeJSON(w, http.StatusOK, summaries)
}

// GetByID returns a zero- or one-element array holding the full record.
// An unknown id is an empty array, not a 404.
func (h *ProblemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	problems, err := h.problems.Get(r.Context(), id)
	if errors.Is(err, service.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, "invalid problem id")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if problems == nil {
		problems = []model.Problem{}
	}

	writeJSON(w, http.StatusOK, problems)
}
