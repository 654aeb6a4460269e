package authController_test

import (
	"bytes"
	"encoding/json"
	"iiacademy/config"
	"iiacademy/database"
	"iiacademy/models"
	authRoutes "iiacademy/routers/authRoutes"
	userRoutes "iiacademy/routers/userRoutes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:       "test-secret",
		SaltRound:    bcrypt.MinCost,
		TokenExpMins: 60,
		SMTPHost:     "localhost",
		SMTPPort:     "2525",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Payment{},
		&models.PasswordResetCode{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return resp, envelope
}

func register(t *testing.T, app *fiber.App, name, email, phone, password string) string {
	t.Helper()

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":        name,
		"email":       email,
		"phoneNumber": phone,
		"password":    password,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterReturnsTokenAndProfileOmitsPassword(t *testing.T) {
	app := setupApp(t)

	token := register(t, app, "A", "a@x.com", "1234567890", "secret123")

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/users/profile", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "A", data["name"])
	assert.Equal(t, "a@x.com", data["email"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "Password")
}

func TestRegisterStoresHashedSecret(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "a@x.com").First(&user).Error)

	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("something-else")))
}

func TestRegisterIgnoresClientSuppliedRole(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":        "Mallory",
		"email":       "mallory@x.com",
		"phoneNumber": "1234567890",
		"password":    "secret123",
		"role":        "admin",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.Where("email = ?", "mallory@x.com").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestRegisterMissingFields(t *testing.T) {
	app := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email": "a@x.com",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":        "B",
		"email":       "A@X.COM",
		"phoneNumber": "0987654321",
		"password":    "secret456",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginSuccess(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "A@x.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	wrongPassResp, wrongPassBody := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "a@x.com",
		"password": "wrong",
	}, "")
	unknownResp, unknownBody := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "nobody@x.com",
		"password": "whatever",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownResp.StatusCode)
	assert.Equal(t, wrongPassBody, unknownBody)
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	knownResp, knownBody := doJSON(t, app, http.MethodPost, "/api/auth/forgot-password", fiber.Map{
		"email": "a@x.com",
	}, "")
	unknownResp, unknownBody := doJSON(t, app, http.MethodPost, "/api/auth/forgot-password", fiber.Map{
		"email": "nobody@x.com",
	}, "")

	assert.Equal(t, http.StatusOK, knownResp.StatusCode)
	assert.Equal(t, http.StatusOK, unknownResp.StatusCode)
	assert.Equal(t, knownBody["message"], unknownBody["message"])
}

func TestResetPasswordFlow(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/forgot-password", fiber.Map{
		"email": "a@x.com",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var resetRecord models.PasswordResetCode
	require.NoError(t, database.Database.Db.Where("email = ?", "a@x.com").First(&resetRecord).Error)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/reset-password", fiber.Map{
		"email":       "a@x.com",
		"code":        resetRecord.Code,
		"newPassword": "brand-new-pass",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Old password no longer works, new one does
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "a@x.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "a@x.com",
		"password": "brand-new-pass",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResetCodeIsSingleUse(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/forgot-password", fiber.Map{
		"email": "a@x.com",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var resetRecord models.PasswordResetCode
	require.NoError(t, database.Database.Db.Where("email = ?", "a@x.com").First(&resetRecord).Error)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/reset-password", fiber.Map{
		"email":       "a@x.com",
		"code":        resetRecord.Code,
		"newPassword": "brand-new-pass",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/reset-password", fiber.Map{
		"email":       "a@x.com",
		"code":        resetRecord.Code,
		"newPassword": "another-pass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestResetPasswordRejectsBadCode(t *testing.T) {
	app := setupApp(t)

	register(t, app, "A", "a@x.com", "1234567890", "secret123")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/reset-password", fiber.Map{
		"email":       "a@x.com",
		"code":        "000000",
		"newPassword": "brand-new-pass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
