package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// CreateUser validates the signup input, hashes the password and persists
// the user. The plaintext password is never stored or logged.
func CreateUser(input CreateUserInput) (*types.UserResponse, error) {
	role, err := types.ParseRole(input.Role)

	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User

	err = db.DB.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, types.ErrDuplicateEmail
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(input.Password)

	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	response := toUserResponse(user)
	return &response, nil
}

func GetAllUsers() ([]types.UserResponse, error) {
	var users []models.User

	if err := db.DB.Find(&users).Error; err != nil {
		return nil, err
	}

	response := make([]types.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, toUserResponse(user))
	}

	return response, nil
}

func GetUserByEmail(email string) (*types.UserResponse, error) {
	var user models.User

	email = strings.ToLower(strings.TrimSpace(email))

	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	response := toUserResponse(user)
	return &response, nil
}

// GetUserProjects returns the projects the user is a member of.
func GetUserProjects(userID uint) ([]types.ProjectResponse, error) {
	var user models.User

	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	var memberships []models.ProjectMembership

	err := db.DB.Where("user_id = ?", userID).
		Preload("Project.ProjectMemberships.User").
		Preload("Project.Tasks.TaskAssignments.User").
		Find(&memberships).Error

	if err != nil {
		return nil, err
	}

	response := make([]types.ProjectResponse, 0, len(memberships))

	for _, membership := range memberships {
		response = append(response, toProjectResponse(membership.Project))
	}

	return response, nil
}

// Authenticate checks the credentials and issues a session token. Unknown
// email and wrong password fail identically so callers cannot enumerate
// registered accounts.
func Authenticate(email string, password string) (*types.AuthResponse, string, error) {
	var user models.User

	email = strings.ToLower(strings.TrimSpace(email))

	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", types.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", types.ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(user.Email, user.Role)

	if err != nil {
		return nil, "", err
	}

	return &types.AuthResponse{
		Email:    user.Email,
		Fullname: user.FullName(),
		Role:     user.Role,
	}, token, nil
}
