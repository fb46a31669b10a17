package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection only, every pooled connection to :memory: would get
	// its own empty database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.ProjectMembership{},
		&models.TaskAssignment{},
	))

	db.DB = gdb
}

func validSignup(email string) CreateUserInput {
	return CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
		Password:  "password123",
		Role:      "USER",
	}
}

func mustCreateProject(t *testing.T, name string) uint {
	t.Helper()

	project, err := CreateProject(name)
	require.NoError(t, err)
	return project.ID
}

func validTask() CreateTaskInput {
	return CreateTaskInput{
		Name:    "Write report",
		DueDate: time.Now().AddDate(0, 0, 7),
	}
}
