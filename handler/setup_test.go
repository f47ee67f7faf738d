package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"main/middleware"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const testDBName = "notes_app_test"

func newTestMongoClient(t *testing.T) *mongo.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Database(testDBName).Drop(ctx); err != nil {
			t.Logf("Warning: failed to drop test database: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: failed to disconnect: %v", err)
		}
	})

	return client
}

// setupTestRouter wires the real middleware chain and handlers against
// a scratch database, mirroring the production route table.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationTime = utils.DefaultJWTExpirationSeconds
	utils.InitValidator()

	client := newTestMongoClient(t)
	db := client.Database(testDBName)

	userRepo := &repository.UserRepo{MongoCollection: db.Collection("users")}
	notesRepo := &repository.NotesRepo{MongoCollection: db.Collection("notes")}

	authHandler := NewAuthHandler(&usecase.UserService{UsersRepo: userRepo})
	notesHandler := NewNotesHandler(&usecase.NotesService{NotesRepo: notesRepo})

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/create-account", authHandler.Register)
	router.POST("/login", authHandler.Login)

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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
	return body
}
