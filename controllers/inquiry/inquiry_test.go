package inquiryController_test

import (
	"bytes"
	"encoding/json"
	"iiacademy/config"
	"iiacademy/database"
	"iiacademy/models"
	inquiryRoutes "iiacademy/routers/inquiryRoutes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:   "test-secret",
		SMTPHost: "localhost",
		SMTPPort: "2525",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Inquiry{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	inquiryRoutes.SetupInquiryRoutes(app)
	return app
}

func postInquiry(t *testing.T, app *fiber.App, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respRaw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(respRaw, &envelope))
	return resp, envelope
}

func TestCreateInquiry(t *testing.T) {
	app := setupApp(t)

	resp, envelope := postInquiry(t, app, fiber.Map{
		"name":    "Lead",
		"email":   "Lead@Example.com",
		"phone":   "1234567890",
		"message": "Tell me more",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.NotZero(t, data["id"])

	var inquiry models.Inquiry
	require.NoError(t, database.Database.Db.First(&inquiry).Error)
	assert.Equal(t, "lead@example.com", inquiry.Email)
	assert.Equal(t, "Backend Development", inquiry.Course)
	assert.NotEmpty(t, inquiry.Source) // defaults to client IP
}

func TestCreateInquiryRequiresName(t *testing.T) {
	app := setupApp(t)

	resp, _ := postInquiry(t, app, fiber.Map{
		"email": "lead@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateInquiryRejectsBadEmail(t *testing.T) {
	app := setupApp(t)

	resp, _ := postInquiry(t, app, fiber.Map{
		"name":  "Lead",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
