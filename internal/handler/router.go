package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with every route wired to the injected
// handlers. Read-only resources register GET only; with method-not-allowed
// handling enabled, gin answers the other verbs with the 405 body below
// before any group middleware runs.
func NewRouter(
	snippets *SnippetHandler,
	tags *TagHandler,
	overview *OverviewHandler,
	users *UserHandler,
	authRequired gin.HandlerFunc,
) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed,
			detailBody(fmt.Sprintf("Method %q not allowed.", c.Request.Method)))
	})

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		// Registration and token issuance (no auth)
		apiV1.POST("/register-user", users.Register)
		apiV1.POST("/auth/token", users.ObtainToken)

		// Tag routes (read-only, protected)
		tagRoutes := apiV1.Group("/tag")
		tagRoutes.Use(authRequired)
		{
			tagRoutes.GET("", tags.List)
			tagRoutes.GET("/:id", tags.Detail)
		}

		// Snippet routes (protected)
		snippetRoutes := apiV1.Group("/snippet")
		snippetRoutes.Use(authRequired)
		{
			snippetRoutes.GET("", snippets.List)
			snippetRoutes.POST("", snippets.Create)
			snippetRoutes.GET("/:id", snippets.Retrieve)
			snippetRoutes.PUT("/:id", snippets.Update)
			snippetRoutes.PATCH("/:id", snippets.PartialUpdate)
			snippetRoutes.DELETE("/:id", snippets.Delete)
		}

		// Overview route (read-only, protected)
		overviewRoutes := apiV1.Group("/overview")
		overviewRoutes.Use(authRequired)
		{
			overviewRoutes.GET("", overview.List)
		}
	}

	return router
}
