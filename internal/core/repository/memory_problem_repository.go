package repository

import (
	"context"
	"sync"

	"owl/internal/core/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inMemoryProblemRepository struct {
	problems []model.Problem
	mutex    sync.RWMutex
}

// NewInMemoryProblemRepository serves the given problems in insertion
// order. The problem set is read-only, matching the Mongo collection.
func NewInMemoryProblemRepository(problems []model.Problem) ProblemRepository {
	return &inMemoryProblemRepository{
		problems: problems,
	}
}

func (r *inMemoryProblemRepository) FindSummaries(ctx context.Context, level string) ([]model.ProblemSummary, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var summaries []model.ProblemSummary
	for _, p := range r.problems {
		if level != "" && p.Level != level {
			continue
		}
		summaries = append(summaries, model.ProblemSummary{
			ID:    p.ID,
			Title: p.Title,
			Level: p.Level,
		})
	}
	return summaries, nil
}

func (r *inMemoryProblemRepository) FindByID(ctx context.Context, id primitive.ObjectID) ([]model.Problem, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, p := range r.problems {
		if p.ID == id {
			return []model.Problem{p}, nil
		}
	}
	return nil, nil
}
