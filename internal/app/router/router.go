// Package router assembles the HTTP routes for the application.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "tasktrack_backend/internal/feature/auth/transport/handler"
	"tasktrack_backend/internal/feature/auth/transport/middleware"
	taskhandler "tasktrack_backend/internal/feature/tasks/transport/handler"
	"tasktrack_backend/internal/platform/http/handler"
)

// NewRouter wires all handlers into a gin engine. Registration and login are
// open; every task route requires a valid bearer token.
func NewRouter(auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler, authenticator middleware.Authenticator) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// New account registration
	r.POST("/register", auth.Register)
	// Login (token issuance)
	r.POST("/login", auth.Login)

	// Routes requiring authentication
	protected := r.Group("/")
	protected.Use(middleware.AuthRequired(authenticator))
	{
		protected.POST("/tasks", tasks.Create)
		protected.GET("/tasks", tasks.List)
		protected.GET("/tasks/:id", tasks.Get)
		protected.PUT("/tasks/:id", tasks.Update)
		protected.DELETE("/tasks/:id", tasks.Delete)
	}

	return r
}
