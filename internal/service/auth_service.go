package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"user_service/internal/models"
	"user_service/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL          = time.Hour
	minPasswordLength = 6
)

// Domain errors for auth flows. Handlers map these to client-facing
// messages; anything else is treated as an infrastructure failure.
var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user does not exist")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrShortPassword   = errors.New("password too short")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService handles registration, login and token verification.
type AuthService struct {
	repo   repository.Users
	secret []byte
}

func NewAuthService(repo repository.Users, secret string) *AuthService {
	return &AuthService{repo: repo, secret: []byte(secret)}
}

// Claims defines the bearer-token payload: the authenticated email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Register creates a user with a bcrypt-hashed password. The email is
// pre-checked for duplicates; note this is a check-then-insert, so two
// concurrent registrations of the same email can both succeed.
func (s *AuthService) Register(ctx context.Context, in UserInput) (models.User, error) {
	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, ErrUserExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, in.Name, in.Email, hash)
}

// Login validates credentials and returns a signed token. Checks run
// cheapest-first: email shape, password length, then the store lookup
// and hash comparison. The order is part of the error contract.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return "", ErrShortPassword
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	return s.issueToken(u.Email)
}

// ParseToken verifies signature and expiry and returns the email claim.
// Every failure mode comes back as an error; nothing panics.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}

func (s *AuthService) issueToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	})
	return token.SignedString(s.secret)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
