package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/taskhive/taskhive/db"
	"github.com/taskhive/taskhive/internal/membership"
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

// CreateProject creates a project with empty membership and task sets.
// Project names are unique.
func CreateProject(name string) (*types.ProjectResponse, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, types.NewValidationError("Project name is required")
	}

	var existing models.Project

	err := db.DB.Where("name = ?", name).First(&existing).Error

	if err == nil {
		return nil, types.ErrDuplicateName
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	project := models.Project{Name: name}

	if err := db.DB.Create(&project).Error; err != nil {
		return nil, err
	}

	response := toProjectResponse(project)
	return &response, nil
}

func GetAllProjects() ([]types.ProjectResponse, error) {
	var projects []models.Project

	err := db.DB.Preload("ProjectMemberships.User").
		Preload("Tasks.TaskAssignments.User").
		Find(&projects).Error

	if err != nil {
		return nil, err
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, toProjectResponse(project))
	}

	return response, nil
}

func GetProject(projectID uint) (*types.ProjectResponse, error) {
	var project models.Project

	err := db.DB.Preload("ProjectMemberships.User").
		Preload("Tasks.TaskAssignments.User").
		First(&project, projectID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	response := toProjectResponse(project)
	return &response, nil
}

func DeleteProject(projectID uint) error {
	return membership.DeleteProject(projectID)
}

// UpdateProjectUsers replaces the full member set and returns the updated
// project.
func UpdateProjectUsers(projectID uint, userIDs []uint) (*types.ProjectResponse, error) {
	if err := membership.SetProjectMembers(projectID, userIDs); err != nil {
		return nil, err
	}

	return GetProject(projectID)
}
