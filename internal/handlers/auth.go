package handlers

import (
	"errors"
	"net/http"

	"user_service/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgUserRegistered = "User registered successfully"
	msgUserExists     = "User already exists"
	msgLoginOK        = "Login successful"
	msgLoginRequired  = "email and password are required"
	msgInvalidEmail   = "Invalid email format"
	msgShortPassword  = "Password must be at least 6 characters long"
	msgUserNotFound   = "User does not exist"
	msgWrongPassword  = "Invalid password"

	errRegisterUser = "failed to register user"
	errLoginUser    = "failed to log in"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary      Register a user
// @Description  Rejects duplicate emails; stores a bcrypt hash of the password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   userRequest  true  "User payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgFieldsRequired})
		return
	}

	u, err := h.services.Authorization.Register(c.Request.Context(), service.UserInput(req))
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgUserExists})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRegisterUser, "auth_register_failed", err, "email", req.Email)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": msgUserRegistered,
		"data":    u,
	})
}

// loginErrMsg maps an auth domain error to its client message, or ""
// when the failure is infrastructural. The distinct messages (and the
// order the service checks them in) are part of the contract.
func loginErrMsg(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(err, service.ErrShortPassword):
		return msgShortPassword
	case errors.Is(err, service.ErrUserNotFound):
		return msgUserNotFound
	case errors.Is(err, service.ErrInvalidPassword):
		return msgWrongPassword
	}
	return ""
}

// @Summary      Log in
// @Description  Returns a bearer token valid for one hour.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "message, jwToken"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgLoginRequired})
		return
	}

	token, err := h.services.Authorization.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if msg := loginErrMsg(err); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoginUser, "auth_login_failed", err, "email", req.Email)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msgLoginOK,
		"jwToken": token,
	})
}
