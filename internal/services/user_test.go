package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/membership"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_HOURS", "")
	require.NoError(t, auth.InitJWT())
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	setupTestDB(t)
	initTestJWT(t)

	user, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, types.RoleUser, user.Role)

	response, token, err := Authenticate("alice@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", response.Email)
	assert.Equal(t, "Alice Smith", response.Fullname)
	assert.Equal(t, types.RoleUser, response.Role)
	assert.NotEmpty(t, token)

	claims, err := auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	setupTestDB(t)

	input := validSignup("  Alice@Example.COM ")

	user, err := CreateUser(input)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	_, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)

	_, err = CreateUser(validSignup("alice@example.com"))
	assert.ErrorIs(t, err, types.ErrDuplicateEmail)

	var count int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateUserUnknownRole(t *testing.T) {
	setupTestDB(t)

	input := validSignup("alice@example.com")
	input.Role = "SUPERUSER"

	_, err := CreateUser(input)
	assert.True(t, types.IsValidationError(err))
}

func TestCreateUserNeverReturnsPasswordHash(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)

	// The response type carries no password field and the stored hash is
	// not the plaintext.
	var stored models.User
	require.NoError(t, db.DB.Where("email = ?", user.Email).First(&stored).Error)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	setupTestDB(t)
	initTestJWT(t)

	_, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)

	_, _, unknownErr := Authenticate("nobody@example.com", "password123")
	_, _, wrongPassErr := Authenticate("alice@example.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, types.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, types.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestGetUserByEmail(t *testing.T) {
	setupTestDB(t)

	_, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)

	user, err := GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.FirstName)

	_, err = GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetUserProjects(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)

	alphaID := mustCreateProject(t, "Alpha")
	mustCreateProject(t, "Beta")

	require.NoError(t, membership.AddUserToProject(alphaID, user.ID))

	projects, err := GetUserProjects(user.ID)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, "Alpha", projects[0].Name)

	_, err = GetUserProjects(999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetUserProjectsIncludesTaskAssignees(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)

	projectID := mustCreateProject(t, "Alpha")
	require.NoError(t, membership.AddUserToProject(projectID, user.ID))

	input := validTask()
	input.UserIDs = []uint{user.ID}

	_, err = CreateTaskForProject(projectID, input)
	require.NoError(t, err)

	projects, err := GetUserProjects(user.ID)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	require.Len(t, projects[0].Tasks, 1)
	require.Len(t, projects[0].Tasks[0].Users, 1)
	assert.Equal(t, user.Email, projects[0].Tasks[0].Users[0].Email)
}

func TestGetAllUsers(t *testing.T) {
	setupTestDB(t)

	_, err := CreateUser(validSignup("alice@example.com"))
	require.NoError(t, err)
	_, err = CreateUser(validSignup("bob@example.com"))
	require.NoError(t, err)

	users, err := GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
