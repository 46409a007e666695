package repository

import (
	"context"
	"sync"

	"owl/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inMemoryUserRepository struct {
	docs  map[string]bson.M
	mutex sync.RWMutex
}

func NewInMemoryUserRepository() UserRepository {
	return &inMemoryUserRepository{
		docs: make(map[string]bson.M),
	}
}

func (r *inMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if doc, exists := r.docs[email]; exists {
		return model.UserFromDocument(doc), nil
	}
	return nil, nil
}

func (r *inMemoryUserRepository) Insert(ctx context.Context, doc bson.M) (interface{}, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := make(bson.M, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	id := primitive.NewObjectID()
	stored["_id"] = id

	email, _ := stored["email"].(string)
	r.docs[email] = stored
	return id, nil
}

func (r *inMemoryUserRepository) AddSolved(ctx context.Context, email, problemID string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	doc, exists := r.docs[email]
	if !exists {
		return nil
	}
	solved, _ := doc["solved"].([]string)
	for _, id := range solved {
		if id == problemID {
			return nil
		}
	}
	doc["solved"] = append(solved, problemID)
	return nil
}
