package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"user_service/internal/models"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	selectAllUsersSQL    = `SELECT id, name, email, password FROM users`
	selectUserByIDSQL    = `SELECT id, name, email, password FROM users WHERE id = ?`
	selectUserByEmailSQL = `SELECT id, name, email, password FROM users WHERE email = ? LIMIT 1`
	insertUserSQL        = `INSERT INTO users (id, name, email, password) VALUES (?, ?, ?, ?)`
	updateUserSQL        = `UPDATE users SET name = ?, email = ?, password = ? WHERE id = ?`
	deleteUserSQL        = `DELETE FROM users WHERE id = ?`
)

// GetAll returns every stored user. An empty table yields an empty slice.
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

// GetByEmail fetches the first user with the given email.
// Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

func (r *UserRepository) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", arg, err)
	}
	return &u, nil
}

// Create inserts a new user under a generated id and returns the stored record.
func (r *UserRepository) Create(ctx context.Context, name, email, password string) (models.User, error) {
	u := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
	}
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Name, u.Email, u.Password); err != nil {
		return models.User{}, fmt.Errorf("insert user %q: %w", email, err)
	}
	return u, nil
}

// Update replaces name, email and password for the given id and returns
// the pre-update snapshot. A missing id yields (nil, nil), not an error.
func (r *UserRepository) Update(ctx context.Context, id, name, email, password string) (*models.User, error) {
	old, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, nil
	}
	if _, err := r.db.ExecContext(ctx, updateUserSQL, name, email, password, id); err != nil {
		return nil, fmt.Errorf("update user %q: %w", id, err)
	}
	return old, nil
}

// Delete removes the user with the given id and returns the deleted
// record. A missing id yields (nil, nil), not an error.
func (r *UserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	old, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, nil
	}
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return nil, fmt.Errorf("delete user %q: %w", id, err)
	}
	return old, nil
}
