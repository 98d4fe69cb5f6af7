package handlers

import (
	"context"

	"user_service/internal/models"
	"user_service/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser models.User
	registerErr  error
	loginToken   string
	loginErr     error
	parseEmail   string
	parseErr     error

	lastRegisterInput service.UserInput
	lastLoginEmail    string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) Register(ctx context.Context, in service.UserInput) (models.User, error) {
	m.lastRegisterInput = in
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseEmail, m.parseErr
}

type mockUsers struct {
	listResp   []models.User
	listErr    error
	createResp models.User
	createErr  error
	updateResp *models.User
	updateErr  error
	deleteResp *models.User
	deleteErr  error

	lastCreateInput service.UserInput
	lastUpdateID    string
	lastUpdateInput service.UserInput
	lastDeleteID    string
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}

func (m *mockUsers) Create(ctx context.Context, in service.UserInput) (models.User, error) {
	m.lastCreateInput = in
	return m.createResp, m.createErr
}

func (m *mockUsers) Update(ctx context.Context, id string, in service.UserInput) (*models.User, error) {
	m.lastUpdateID = id
	m.lastUpdateInput = in
	return m.updateResp, m.updateErr
}

func (m *mockUsers) Delete(ctx context.Context, id string) (*models.User, error) {
	m.lastDeleteID = id
	return m.deleteResp, m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
