package main

import (
	"log"

	"blogapi/config"
	"blogapi/controllers"
	"blogapi/database"
	"blogapi/middleware"
	"blogapi/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blogapi/docs"
)

// @title Blog API
// @version 1.0
// @description Content management API for a small blog: public post listing, contact form, and an admin area for posts and categories.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db, cfg)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(middleware.Logger())

	postController := controllers.NewPostController(db)
	categoryController := controllers.NewCategoryController(db)
	contactController := controllers.NewContactController(db)
	authController := controllers.NewAuthController(db)

	routes.SetupRoutes(r, postController, categoryController, contactController, authController)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
