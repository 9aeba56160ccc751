package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbarbosa/recado-server/internal/api/http/handler"
	"github.com/mbarbosa/recado-server/internal/api/http/middleware"
	"github.com/mbarbosa/recado-server/internal/logger"
	"github.com/mbarbosa/recado-server/internal/model"
)

// Router wires handlers and middleware into the HTTP route table.
// Protected routes run the authentication middleware and their declared
// policy; read routes stay public.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	messageService handler.MessageService
	guardService   middleware.AuthService
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	messageService handler.MessageService,
	guardService middleware.AuthService,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		messageService: messageService,
		guardService:   guardService,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.guardService, r.logger)
	protected := authenticate.Handle()

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	messageHandler := handler.NewMessage(r.messageService, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := engine.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	users := engine.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.POST("", protected,
			middleware.RequirePolicy(model.PolicyUsersCreate), userHandler.Create)
		users.PATCH("/:id", protected,
			middleware.RequirePolicy(model.PolicyUsersUpdate), userHandler.Update)
		users.DELETE("/:id", protected,
			middleware.RequirePolicy(model.PolicyUsersDelete), userHandler.Remove)
		users.POST("/upload-picture", protected,
			middleware.RequirePolicy(model.PolicyUsersUploadPicture), userHandler.UploadPicture)
	}

	messages := engine.Group("/messages")
	{
		messages.GET("", messageHandler.List)
		messages.GET("/:id", messageHandler.Get)
		messages.POST("", protected,
			middleware.RequirePolicy(model.PolicyMessagesCreate), messageHandler.Create)
		messages.PATCH("/:id", protected,
			middleware.RequirePolicy(model.PolicyMessagesUpdate), messageHandler.Update)
		messages.DELETE("/:id", protected,
			middleware.RequirePolicy(model.PolicyMessagesDelete), messageHandler.Remove)
	}

	return engine
}
