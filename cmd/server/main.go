package main

import (
	"fmt"
	"log"

	"snipboard/backend/internal/auth"
	"snipboard/backend/internal/config"
	"snipboard/backend/internal/database"
	"snipboard/backend/internal/handler"
	"snipboard/backend/internal/service"
	"snipboard/backend/internal/store"

	// Swagger docs, generated by swag — imported for its registration side effect.
	_ "snipboard/backend/docs"
)

// @title           Snipboard API
// @version         1.0
// @description     Multi-tenant snippet and tag API.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Stores → services → handlers, injected explicitly at startup.
	tagStore := store.NewTagStore(db)
	snippetStore := store.NewSnippetStore(db)
	userStore := store.NewUserStore(db)

	snippetService := service.NewSnippetService(snippetStore, tagStore)
	tagService := service.NewTagService(tagStore, snippetStore)
	overviewService := service.NewOverviewService(snippetStore)
	userService := service.NewUserService(userStore)

	router := handler.NewRouter(
		handler.NewSnippetHandler(snippetService),
		handler.NewTagHandler(tagService),
		handler.NewOverviewHandler(overviewService),
		handler.NewUserHandler(userService, cfg.JWTSecret),
		auth.Middleware(cfg.JWTSecret),
	)

	fmt.Printf("Server is running on :%s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
