package repository

import (
	"context"
	"time"

	"owl/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProblemRepository interface {
	// FindSummaries returns {id,title,level} projections, filtered by
	// level when level is non-empty.
	FindSummaries(ctx context.Context, level string) ([]model.ProblemSummary, error)
	// FindByID returns a zero- or one-element slice.
	FindByID(ctx context.Context, id primitive.ObjectID) ([]model.Problem, error)
}

type MongoProblemRepository struct {
	collection *mongo.Collection
}

func NewMongoProblemRepository(db *mongo.Database) *MongoProblemRepository {
	return &MongoProblemRepository{
		collection: db.Collection("problems"),
	}
}

func (r *MongoProblemRepository) FindSummaries(ctx context.Context, level string) ([]model.ProblemSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if level != "" {
		filter["level"] = level
	}

	projection := bson.M{"_id": 1, "title": 1, "level": 1}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []model.ProblemSummary
	if err = cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *MongoProblemRepository) FindByID(ctx context.Context, id primitive.ObjectID) ([]model.Problem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var problems []model.Problem
	if err = cursor.All(ctx, &problems); err != nil {
		return nil, err
	}
	return problems, nil
}
