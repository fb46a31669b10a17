package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/membership"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

type CreateTaskInput struct {
	Name        string
	Description *string
	DueDate     time.Time
	Completed   bool
	UserIDs     []uint
}

// CreateTaskForProject inserts a task under an existing project, optionally
// assigning users to it. The project check, task insert and assignment all
// run in one transaction, a bad assignee id leaves no task row behind.
func CreateTaskForProject(projectID uint, input CreateTaskInput) (*types.TaskResponse, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, types.NewValidationError("Task name is required")
	}

	if input.DueDate.IsZero() {
		return nil, types.NewValidationError("Task due date is required")
	}

	var taskID uint

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project

		if err := tx.First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound
			}
			return err
		}

		task := models.Task{
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
			DueDate:     input.DueDate,
			Completed:   input.Completed,
			ProjectID:   projectID,
		}

		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		if len(input.UserIDs) > 0 {
			if err := membership.SetTaskAssigneesTx(tx, task.ID, input.UserIDs); err != nil {
				return err
			}
		}

		taskID = task.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	return GetTask(taskID)
}

func GetTask(taskID uint) (*types.TaskResponse, error) {
	var task models.Task

	err := db.DB.Preload("TaskAssignments.User").First(&task, taskID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	response := toTaskResponse(task)
	return &response, nil
}

func GetTasksForProject(projectID uint) ([]types.TaskResponse, error) {
	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	var tasks []models.Task

	err := db.DB.Where("project_id = ?", projectID).
		Preload("TaskAssignments.User").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	response := make([]types.TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, toTaskResponse(task))
	}

	return response, nil
}

// UpdateTaskStatus sets the completed flag. Setting the same value twice
// yields the same state.
func UpdateTaskStatus(taskID uint, completed bool) (*types.TaskResponse, error) {
	var task models.Task

	if err := db.DB.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	if err := db.DB.Model(&task).Update("completed", completed).Error; err != nil {
		return nil, err
	}

	return GetTask(task.ID)
}

func DeleteTask(taskID uint) error {
	return membership.DeleteTask(taskID)
}

// UpdateTaskUsers replaces the full assignee set of a task.
func UpdateTaskUsers(taskID uint, userIDs []uint) (*types.TaskResponse, error) {
	if err := membership.SetTaskAssignees(taskID, userIDs); err != nil {
		return nil, err
	}

	return GetTask(taskID)
}
