package service

import (
	"context"
	"errors"

	"owl/internal/core/model"
	"owl/internal/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUnknownLevel = errors.New("unknown difficulty level")
	ErrInvalidID    = errors.New("invalid problem id")
)

type ProblemService interface {
	// List returns summaries for all problems, or only those at the
	// given level when level is non-empty.
	List(ctx context.Context, level string) ([]model.ProblemSummary, error)
	// Get returns a zero- or one-element slice for the hex id.
	Get(ctx context.Context, hexID string) ([]model.Problem, error)
}

type problemService struct {
	problemRepo repository.ProblemRepository
}

func NewProblemService(problemRepo repository.ProblemRepository) ProblemService {
	return &problemService{
		problemRepo: problemRepo,
	}
}

func (s *problemService) List(ctx context.Context, level string) ([]model.ProblemSummary, error) {
	if level != "" && !model.ValidLevel(level) {
		return nil, ErrUnknownLevel
	}
	return s.problemRepo.FindSummaries(ctx, level)
}

func (s *problemService) Get(ctx context.Context, hexID string) ([]model.Problem, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.problemRepo.FindByID(ctx, id)
}
