package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()

	dbConfig := config.LoadDatabaseConfig()
	utils.InitMongoClient(dbConfig.URI, dbConfig.MaxPoolSize, dbConfig.MinPoolSize, dbConfig.MaxConnIdleTime)

	// Token blacklist is optional; without Redis, logout revocation is off
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		services.TokenBlacklist = blacklist
	} else {
		log.Println("REDIS_URL not set, token blacklist disabled")
	}
}

func setupRouter(client *mongo.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	userRepo := repository.GetUserRepo(client)
	notesRepo := repository.GetNotesRepo(client)

	userService := &usecase.UserService{UsersRepo: userRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo}

	authHandler := handler.NewAuthHandler(userService)
	notesHandler := handler.NewNotesHandler(notesService)
	healthHandler := handler.NewHealthHandler(client)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodySize))

	// Public routes
	router.GET("/", func(c *gin.Context) {
		utils.Success(c, "Hello World", nil)
	})
	router.POST("/create-account", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/get-user", authHandler.GetProfile)
		protected.POST("/logout", authHandler.Logout)
		protected.POST("/enable-2fa", authHandler.EnableTwoFactor)
		protected.POST("/verify-2fa", authHandler.VerifyTwoFactor)

		protected.POST("/add-note", notesHandler.AddNote)
		protected.PUT("/edit-note/:noteId", notesHandler.EditNote)
		protected.GET("/get-all-notes", notesHandler.GetAllNotes)
		protected.DELETE("/delete-note/:noteId", notesHandler.DeleteNote)
		protected.PUT("/update-note-pinned/:noteId", notesHandler.UpdatePinned)
		protected.GET("/search-note", notesHandler.SearchNotes)
	}

	return router
}

func main() {
	router := setupRouter(utils.MongoClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
