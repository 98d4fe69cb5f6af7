package repository

import (
	"context"
	"database/sql"

	"user_service/internal/models"
)

// Users defines the access patterns the service layer relies on.
// Lookups return (nil, nil) when no row matches; Update and Delete
// report a missing id the same way rather than as an error.
type Users interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, name, email, password string) (models.User, error)
	Update(ctx context.Context, id, name, email, password string) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}

type Repository struct {
	Users Users
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
	}
}
