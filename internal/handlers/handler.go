package handlers

import (
	"net/http"

	"user_service/internal/logger"
	"user_service/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Protected user collection; route shapes mirror the API contract:
	// the collection root is "/", create is "/post", update/delete key
	// on the path id.
	router.GET("/", h.authorize, h.listUsers)
	router.POST("/post", h.authorize, h.createUser)
	router.PUT("/:id", h.authorize, h.updateUser)
	router.DELETE("/:id", h.authorize, h.deleteUser)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
