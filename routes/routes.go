package routes

import (
	"net/http"

	"blogapi/controllers"
	"blogapi/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, postController *controllers.PostController, categoryController *controllers.CategoryController, contactController *controllers.ContactController, authController *controllers.AuthController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/posts", postController.GetPosts)
		api.GET("/posts/:id", postController.GetPost)

		api.POST("/contact", contactController.CreateContact)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.GET("/posts/:id", postController.GetAdminPost)
			admin.POST("/posts", postController.CreatePost)
			admin.PUT("/posts/:id", postController.UpdatePost)
			admin.DELETE("/posts/:id", postController.DeletePost)

			admin.GET("/categories", categoryController.GetCategories)
			admin.GET("/categories/:id", categoryController.GetCategory)
			admin.POST("/categories", categoryController.CreateCategory)
			admin.PUT("/categories/:id", categoryController.UpdateCategory)
			admin.DELETE("/categories/:id", categoryController.DeleteCategory)
		}
	}
}
