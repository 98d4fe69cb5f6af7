package handlers

import (
	"net/http"

	"user_service/internal/service"

	"github.com/gin-gonic/gin"
)

// Response messages are part of the API contract; keep them verbatim.
const (
	msgUsersFetched   = "User fetched successfully"
	msgNoUsers        = "No users found"
	msgUserCreated    = "User created successfully"
	msgUserUpdated    = "User updated successfully"
	msgUserDeleted    = "User deleted successfully"
	msgFieldsRequired = "Name and email are required"

	errFetchUsers = "failed to fetch users"
	errCreateUser = "failed to create user"
	errUpdateUser = "failed to update user"
	errDeleteUser = "failed to delete user"
)

// userRequest is the body of create and update. Presence is checked by
// hand instead of binding tags so the required-fields message stays
// exactly as the contract fixes it.
type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r userRequest) complete() bool {
	return r.Name != "" && r.Email != "" && r.Password != ""
}

// logAndJSONError logs a store failure and replies with a generic
// message, never the underlying error.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      202  {object}  map[string]interface{}  "message, data"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       / [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchUsers, "users_list_failed", err)
		return
	}
	// Zero users is a distinct not-found outcome, not an empty success.
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNoUsers})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message": msgUsersFetched,
		"data":    users,
	})
}

// @Summary      Create a user
// @Description  Stores the password exactly as given; only /register hashes.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body   userRequest  true  "User payload"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /post [post]
// @Security     BearerAuth
func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgFieldsRequired})
		return
	}

	u, err := h.services.Users.Create(c.Request.Context(), service.UserInput(req))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateUser, "user_create_failed", err, "email", req.Email)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": msgUserCreated,
		"data":    u,
	})
}

// @Summary      Update a user
// @Description  Full replacement; all three fields are required even to change one. Returns the pre-update record, or null when the id does not exist.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path   string       true  "User id"
// @Param        body  body   userRequest  true  "User payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.complete() {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgFieldsRequired})
		return
	}

	old, err := h.services.Users.Update(c.Request.Context(), c.Param("id"), service.UserInput(req))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateUser, "user_update_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msgUserUpdated,
		"data":    old,
	})
}

// @Summary      Delete a user
// @Description  Returns the deleted record, or null when the id does not exist.
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	deleted, err := h.services.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteUser, "user_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msgUserDeleted,
		"data":    deleted,
	})
}
