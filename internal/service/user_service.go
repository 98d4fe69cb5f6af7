package service

import (
	"context"

	"user_service/internal/models"
	"user_service/internal/repository"
)

// UserService implements the generic CRUD operations. Unlike the
// register flow, it stores passwords exactly as provided.
type UserService struct {
	repo repository.Users
}

func NewUserService(repo repository.Users) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *UserService) Create(ctx context.Context, in UserInput) (models.User, error) {
	return s.repo.Create(ctx, in.Name, in.Email, in.Password)
}

// Update replaces all writable fields and returns the pre-update
// snapshot, or nil when the id does not exist.
func (s *UserService) Update(ctx context.Context, id string, in UserInput) (*models.User, error) {
	return s.repo.Update(ctx, id, in.Name, in.Email, in.Password)
}

// Delete returns the removed record, or nil when the id does not exist.
func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	return s.repo.Delete(ctx, id)
}
