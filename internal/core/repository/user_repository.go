package repository

import (
	"context"
	"time"

	"owl/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Insert stores the document verbatim and returns the inserted id.
	Insert(ctx context.Context, doc bson.M) (interface{}, error)
	// AddSolved appends problemID to the user's solved list if absent,
	// as a single atomic update.
	AddSolved(ctx context.Context, email, problemID string) error
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		collection: db.Collection("users"),
	}
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, doc bson.M) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return result.InsertedID, nil
}

func (r *MongoUserRepository) AddSolved(ctx context.Context, email, problemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"solved": problemID}},
	)
	return err
}
