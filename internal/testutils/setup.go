package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/ryanpavini/sistema-na-backend/internal/auth"
	"github.com/ryanpavini/sistema-na-backend/internal/config"
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"github.com/ryanpavini/sistema-na-backend/internal/server"
)

const (
	TestAPIKey    = "test-api-key"
	TestJWTSecret = "test_secret_key_minimum_32_characters_long_for_testing_only"
)

func TestConfig() *config.Config {
	return &config.Config{
		APIKey:          TestAPIKey,
		JWTSecret:       TestJWTSecret,
		SuperAdminEmail: "admin@admin.com",
		FrontendURL:     "http://localhost:3000",
	}
}

func TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	assert.NoError(t, err, "Failed to create test database")

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Event{},
		&models.Meeting{},
		&models.SecretariatRecord{},
	)
	assert.NoError(t, err, "Failed to migrate test database")

	return db
}

func SetupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := TestDB(t)
	app := server.New(db, TestConfig())
	return app, db
}

// CreateTestAdmin inserts an active admin with a bcrypt-hashed password.
func CreateTestAdmin(t *testing.T, db *gorm.DB, name, email, password string) *models.Admin {
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err, "Failed to hash test password")

	admin := &models.Admin{
		Name:     name,
		Email:    email,
		Password: &hash,
	}

	err = db.Create(admin).Error
	assert.NoError(t, err, "Failed to create test admin")

	return admin
}

// CreatePendingAdmin inserts an admin awaiting activation: no password, the
// given reset token and expiry.
func CreatePendingAdmin(t *testing.T, db *gorm.DB, name, email, token string, expires time.Time) *models.Admin {
	admin := &models.Admin{
		Name:                 name,
		Email:                email,
		PasswordResetToken:   &token,
		PasswordResetExpires: &expires,
	}

	err := db.Create(admin).Error
	assert.NoError(t, err, "Failed to create pending test admin")

	return admin
}

func GetAuthToken(t *testing.T, adminID string) string {
	token, err := auth.NewTokenIssuer(TestJWTSecret).IssueAccess(adminID)
	assert.NoError(t, err, "Failed to generate test token")
	return token
}

func MakeRequest(app *fiber.App, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", TestAPIKey)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()

	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode

	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	if resp.Body.Len() == 0 {
		t.Log("Warning: Response body is empty")
		return
	}

	err := json.NewDecoder(resp.Body).Decode(v)
	if err != nil && err != io.EOF {
		t.Logf("Response body: %s", resp.Body.String())
		assert.NoError(t, err, "Failed to parse response")
	}
}

type StandardResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data"`
	Error   *ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.True(t, result.Success, "Expected success response")
	assert.Empty(t, result.Error, "Expected no error")
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, expectedCode string) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.False(t, result.Success, "Expected error response")
	assert.NotNil(t, result.Error, "Expected error object")
	if result.Error != nil {
		assert.Equal(t, expectedCode, result.Error.Code, "Error code mismatch")
	}
}
