package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/rlozl15/pypost/internal/config"
	"github.com/rlozl15/pypost/internal/models"
	"github.com/rlozl15/pypost/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeImageService keeps handler tests off the network and records the
// public IDs it was asked to delete
type fakeImageService struct {
	deleted []string
}

func (*fakeImageService) UploadImage(file multipart.File, fileName string) (string, string, error) {
	return "test/" + fileName, "https://images.test/" + fileName + ".png", nil
}

func (f *fakeImageService) DeleteImage(publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

// setupTestDB creates an in-memory SQLite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Profile{},
		&models.Post{},
		&models.PostLike{},
		&models.Comment{},
	))

	return db
}

// testConfig returns the configuration the handler tests run under
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.MaxUploadSize = 10 * 1024 * 1024
	return cfg
}

// setupTestRouterWithConfig builds the real route table over a test database
// and exposes the image service double
func setupTestRouterWithConfig(t *testing.T, cfg *config.Config) (*gin.Engine, *gorm.DB, *fakeImageService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	images := &fakeImageService{}
	router := routes.SetupRouter(cfg, db, images)
	return router, db, images
}

// setupTestRouter builds the real route table over a test database
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	router, db, _ := setupTestRouterWithConfig(t, testConfig())
	return router, db
}

// doJSON performs a JSON request, optionally authenticated
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doMultipart performs a multipart/form-data request with an optional
// image part, optionally authenticated
func doMultipart(t *testing.T, router *gin.Engine, method, path, token string, fields map[string]string, imageName string, imageData []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if imageName != "" {
		fw, err := mw.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeJSON unmarshals a response body
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser creates an account through the API and returns its token and id
func registerUser(t *testing.T, router *gin.Engine, username string) (token string, id uint) {
	t.Helper()

	w := doJSON(t, router, "POST", "/user/register/", "", map[string]string{
		"username":  username,
		"email":     username + "@test.com",
		"password":  "testpw!!",
		"password2": "testpw!!",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var reg struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, w, &reg)

	w = doJSON(t, router, "POST", "/user/login/", "", map[string]string{
		"username": username,
		"password": "testpw!!",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &login)
	require.NotEmpty(t, login.Token)

	return login.Token, reg.ID
}

// createPost creates a post through the API and returns its id
func createPost(t *testing.T, router *gin.Engine, token, title string) uint {
	t.Helper()

	w := doJSON(t, router, "POST", "/posts/", token, map[string]string{
		"title":    title,
		"body":     "this is body",
		"category": "backend",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var post struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, w, &post)
	return post.ID
}

// postPath builds a post detail path
func postPath(id uint) string {
	return fmt.Sprintf("/posts/%d/", id)
}

// profilePath builds a profile detail path
func profilePath(userID uint) string {
	return fmt.Sprintf("/user/profile/%d/", userID)
}
