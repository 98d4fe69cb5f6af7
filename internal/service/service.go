package service

import (
	"context"

	"user_service/internal/models"
	"user_service/internal/repository"
)

// UserInput carries the writable fields of a user record. The handlers
// guarantee all three are non-empty before any service call.
type UserInput struct {
	Name     string
	Email    string
	Password string
}

// Users exposes the CRUD operations behind the protected routes.
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, in UserInput) (models.User, error)
	Update(ctx context.Context, id string, in UserInput) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

// Authorization covers the public register/login flows and token
// verification for the middleware.
type Authorization interface {
	Register(ctx context.Context, in UserInput) (models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Service aggregates all sub-services.
type Service struct {
	Users
	Authorization
}

// NewService wires the repository layer into concrete services.
// secret signs and verifies bearer tokens; it comes from configuration.
func NewService(repos *repository.Repository, secret string) *Service {
	return &Service{
		Users:         NewUserService(repos.Users),
		Authorization: NewAuthService(repos.Users, secret),
	}
}
