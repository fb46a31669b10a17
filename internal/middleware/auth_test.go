package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

func setupMiddlewareTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_HOURS", "")
	require.NoError(t, auth.InitJWT())

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection only, every pooled connection to :memory: would get
	// its own empty database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}))
	db.DB = gdb

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/users", func(ctx *gin.Context) {
		user, _ := ctx.Get(types.ContextUserKey)
		ctx.JSON(http.StatusOK, user)
	})
	r.GET("/status", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	return r
}

func request(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)

	if cookie != nil {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestAllowlistSkipsVerification(t *testing.T) {
	r := setupMiddlewareTest(t)

	recorder := request(r, "/status", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMissingTokenRejected(t *testing.T) {
	r := setupMiddlewareTest(t)

	recorder := request(r, "/users", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	r := setupMiddlewareTest(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@example.com",
		"role":  "USER",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	recorder := request(r, "/users", &http.Cookie{Name: types.TokenCookieName, Value: tokenString})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid or expired token")
}

func TestValidTokenForMissingUserRejected(t *testing.T) {
	r := setupMiddlewareTest(t)

	tokenString, err := auth.GenerateJWT("ghost@example.com", types.RoleUser)
	require.NoError(t, err)

	recorder := request(r, "/users", &http.Cookie{Name: types.TokenCookieName, Value: tokenString})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "User not found")
}

func TestValidTokenAttachesIdentity(t *testing.T) {
	r := setupMiddlewareTest(t)

	user := models.User{
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         types.RoleMaster,
	}
	require.NoError(t, db.DB.Create(&user).Error)

	tokenString, err := auth.GenerateJWT(user.Email, user.Role)
	require.NoError(t, err)

	recorder := request(r, "/users", &http.Cookie{Name: types.TokenCookieName, Value: tokenString})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "alice@example.com")
	assert.Contains(t, recorder.Body.String(), "MASTER")
}
