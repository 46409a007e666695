package service

import (
	"context"
	"errors"

	"owl/internal/core/model"
	"owl/internal/core/repository"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrAlreadyRegistered signals a duplicate registration. It is a
	// distinct outcome, not a failure: the HTTP layer maps it to a
	// success-shaped "Already Exists" message.
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrUserNotFound      = errors.New("user not found")
	// ErrAlreadySolved signals a repeat submission; no write happens.
	ErrAlreadySolved = errors.New("problem already solved")
)

type UserService interface {
	Register(ctx context.Context, doc bson.M) (interface{}, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	MarkSolved(ctx context.Context, email, problemID string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// Register stores the submitted document as-is unless a user with the
// same email already exists. At most one record per email.
func (s *userService) Register(ctx context.Context, doc bson.M) (interface{}, error) {
	email, _ := doc["email"].(string)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}
	return s.userRepo.Insert(ctx, doc)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// MarkSolved records problemID against the user's solved list. A repeat
// submission returns ErrAlreadySolved without touching the store; the
// append itself is a single atomic update, so two concurrent solves for
// the same user cannot lose an entry.
func (s *userService) MarkSolved(ctx context.Context, email, problemID string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.HasSolved(problemID) {
		return ErrAlreadySolved
	}
	return s.userRepo.AddSolved(ctx, email, problemID)
}
