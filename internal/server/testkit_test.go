package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"skip2love/internal/config"
	"skip2love/internal/models"
	"skip2love/internal/repository"
	"skip2love/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server backed by in-memory sqlite with the full
// route table mounted. Prometheus middleware stays off so repeated test
// servers do not fight over collector registration.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Message{},
		&models.Rating{},
		&models.Favorite{},
		&models.Report{},
		&models.Block{},
	))

	cfg := &config.Config{
		Port:      "8480",
		JWTSecret: "test-secret-key-for-handler-tests",
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reportRepo := repository.NewReportRepository(db)
	blockRepo := repository.NewBlockRepository(db)

	s := &Server{
		config:       cfg,
		db:           db,
		userRepo:     userRepo,
		postRepo:     postRepo,
		messageRepo:  messageRepo,
		ratingRepo:   ratingRepo,
		favoriteRepo: favoriteRepo,
		reportRepo:   reportRepo,
		blockRepo:    blockRepo,
	}
	s.userService = service.NewUserService(userRepo, blockRepo)
	s.postService = service.NewPostService(postRepo, userRepo)
	s.messageService = service.NewMessageService(messageRepo, userRepo, blockRepo)
	s.ratingService = service.NewRatingService(ratingRepo, userRepo)
	s.favoriteService = service.NewFavoriteService(favoriteRepo, postRepo)
	s.moderationService = service.NewModerationService(blockRepo, reportRepo, userRepo, postRepo)

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}

// createUserWithToken persists a user and returns a valid bearer token.
func createUserWithToken(t *testing.T, s *Server, db *gorm.DB, username string) (*models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		City:     "Eureka",
	}
	require.NoError(t, db.Create(user).Error)

	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)

	return user, token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
