package main

import (
	"errors"
	"net/http"
	"os"

	"webblog/config"
	"webblog/handlers"
	"webblog/middleware"
	"webblog/models"
	"webblog/repositories"
	"webblog/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	// Running without a .env file is fine; the environment decides.
	_ = godotenv.Load()

	logger := config.NewLogger()

	db, err := config.InitDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("database initialization failed")
	}

	roleRepo := repositories.NewRoleRepository(db)
	if err := seedRoles(roleRepo); err != nil {
		logger.Fatal().Err(err).Msg("role seeding failed")
	}

	router := setupRouter(db, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func setupRouter(db *gorm.DB, logger zerolog.Logger) *gin.Engine {
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	authService := services.NewAuthService(userRepo, roleRepo, logger)
	articleService := services.NewArticleService(articleRepo, tagRepo, userRepo, logger)
	tagService := services.NewTagService(tagRepo, logger)

	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, logger)
	tagHandler := handlers.NewTagHandler(tagService)
	commentHandler := handlers.NewCommentHandler(commentRepo, articleRepo, logger)
	userHandler := handlers.NewUserHandler(userRepo, roleRepo, logger)
	roleHandler := handlers.NewRoleHandler(roleRepo, logger)

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := router.Group("/Auth")
	{
		auth.POST("/Register", authHandler.Register)
		auth.POST("/Login", authHandler.Login)
	}

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/Profile", authHandler.GetProfile)

		articles := protected.Group("/Articles")
		{
			articles.GET("", articleHandler.Index)
			articles.GET("/Details/:id", articleHandler.Details)
			articles.GET("/GetArticleByAuthor/:id", articleHandler.GetArticleByAuthor)
			articles.POST("/Create", articleHandler.Create)
			articles.PUT("/Edit/:id", articleHandler.Edit)
			articles.DELETE("/Delete", articleHandler.Delete)
		}

		tags := protected.Group("/Tags")
		{
			tags.GET("", tagHandler.Index)
			tags.GET("/Details/:id", tagHandler.Details)
			tags.POST("/Create", tagHandler.Create)
			tags.PUT("/Edit/:id", tagHandler.Edit)
			tags.DELETE("/Delete/:id", middleware.RequireSecurityLevel(5), tagHandler.Delete)
		}

		comments := protected.Group("/Comments")
		{
			comments.GET("/GetComments", commentHandler.GetComments)
			comments.GET("/GetCommentsForTheArticle/:id", commentHandler.GetCommentsForArticle)
			comments.GET("/Details/:id", commentHandler.Details)
			comments.POST("/Create", commentHandler.Create)
			comments.PUT("/Edit/:id", commentHandler.Edit)
			comments.DELETE("/Delete/:id",
				middleware.RequireRole(models.RoleAdministrator),
				commentHandler.Delete)
		}

		admin := protected.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdministrator))
		{
			users := admin.Group("/Users")
			{
				users.GET("", userHandler.Index)
				users.GET("/Details/:id", userHandler.Details)
				users.PUT("/Edit/:id", userHandler.Edit)
				users.DELETE("/Delete/:id", userHandler.Delete)
			}

			roles := admin.Group("/Roles")
			{
				roles.GET("", roleHandler.Index)
				roles.GET("/Details/:id", roleHandler.Details)
				roles.POST("/Create", roleHandler.Create)
				roles.PUT("/Edit/:id", roleHandler.Edit)
				roles.DELETE("/Delete/:id", roleHandler.Delete)
			}
		}
	}

	return router
}

// seedRoles makes sure the three built-in roles exist; security level orders
// them for the elevated-role checks.
func seedRoles(roleRepo repositories.RoleRepository) error {
	builtin := []models.Role{
		{Name: models.RoleUser, SecurityLevel: 0},
		{Name: models.RoleModerator, SecurityLevel: 5},
		{Name: models.RoleAdministrator, SecurityLevel: 10},
	}

	for _, role := range builtin {
		_, err := roleRepo.GetByName(role.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := roleRepo.Create(&role); err != nil {
			return err
		}
	}
	return nil
}
