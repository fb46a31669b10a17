package db

import (
	"time"

	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

// SeedDatabase wipes all rows and loads a small development fixture.
func SeedDatabase() error {
	tables := []interface{}{
		&models.TaskAssignment{},
		&models.ProjectMembership{},
		&models.Task{},
		&models.Project{},
		&models.User{},
	}

	for _, table := range tables {
		if err := DB.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}

	johnHash, err := auth.HashPassword("password123")

	if err != nil {
		return err
	}

	janeHash, err := auth.HashPassword("password456")

	if err != nil {
		return err
	}

	john := models.User{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@example.com",
		PasswordHash: johnHash,
		Role:         types.RoleAdmin,
	}

	jane := models.User{
		FirstName:    "Jane",
		LastName:     "Smith",
		Email:        "jane.smith@example.com",
		PasswordHash: janeHash,
		Role:         types.RoleUser,
	}

	for _, user := range []*models.User{&john, &jane} {
		if err := DB.Create(user).Error; err != nil {
			return err
		}
	}

	projectOne := models.Project{Name: "Project 1"}
	projectTwo := models.Project{Name: "Project 2"}

	for _, project := range []*models.Project{&projectOne, &projectTwo} {
		if err := DB.Create(project).Error; err != nil {
			return err
		}
	}

	descriptionOne := "Description for task 1"
	descriptionTwo := "Description for task 2"

	taskOne := models.Task{
		Name:        "Task 1",
		Description: &descriptionOne,
		DueDate:     time.Now().AddDate(0, 0, 7),
		ProjectID:   projectOne.ID,
	}

	taskTwo := models.Task{
		Name:        "Task 2",
		Description: &descriptionTwo,
		DueDate:     time.Now().AddDate(0, 0, 14),
		ProjectID:   projectTwo.ID,
	}

	for _, task := range []*models.Task{&taskOne, &taskTwo} {
		if err := DB.Create(task).Error; err != nil {
			return err
		}
	}

	memberships := []models.ProjectMembership{
		{UserID: john.ID, ProjectID: projectOne.ID},
		{UserID: jane.ID, ProjectID: projectTwo.ID},
	}

	for _, membership := range memberships {
		if err := DB.Create(&membership).Error; err != nil {
			return err
		}
	}

	assignments := []models.TaskAssignment{
		{UserID: john.ID, TaskID: taskOne.ID},
		{UserID: jane.ID, TaskID: taskTwo.ID},
	}

	for _, assignment := range assignments {
		if err := DB.Create(&assignment).Error; err != nil {
			return err
		}
	}

	return nil
}
