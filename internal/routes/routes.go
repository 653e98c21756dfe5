package routes

import (
	"github.com/rlozl15/pypost/internal/config"
	"github.com/rlozl15/pypost/internal/controllers"
	"github.com/rlozl15/pypost/internal/middlewares"
	"github.com/rlozl15/pypost/internal/repository"
	"github.com/rlozl15/pypost/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and controllers onto a gin engine.
// The ImageService is injected so the HTTP layer can be built without
// cloudinary credentials.
func SetupRouter(cfg *config.Config, db *gorm.DB, imageService services.ImageService) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// services
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, userRepo, imageService, cfg)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo)

	// controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	healthController := controllers.NewHealthController()

	authMiddleware := middlewares.AuthMiddleware(authService)

	r.GET("/health", healthController.Check)

	user := r.Group("/user")
	{
		user.POST("/register/", authController.Register)
		user.POST("/login/", authController.Login)
		user.GET("/profile/:id/", userController.GetProfile)
		user.PUT("/profile/:id/", authMiddleware, userController.UpdateProfile)
	}

	posts := r.Group("/posts")
	{
		// public reads
		posts.GET("/", postController.List)
		posts.GET("/:id/", postController.GetByID)

		// authenticated writes
		posts.POST("/", authMiddleware, postController.Create)
		posts.PUT("/:id/", authMiddleware, postController.Update)
		posts.DELETE("/:id/", authMiddleware, postController.Delete)
	}

	r.POST("/like/:id/", authMiddleware, postController.ToggleLike)

	comments := r.Group("/comments")
	{
		comments.GET("/", commentController.List)
		comments.GET("/:id/", commentController.GetByID)
		comments.POST("/", authMiddleware, commentController.Create)
		comments.PUT("/:id/", authMiddleware, commentController.Update)
		comments.DELETE("/:id/", authMiddleware, commentController.Delete)
	}

	return r
}
