package services

import (
	"github.com/taskhive/taskhive/internal/models"
	"github.com/taskhive/taskhive/internal/types"
)

// Converters from persistence rows to response values. Handlers and callers
// never see raw storage shapes, and the password hash never leaves this
// package.

func toUserResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}
}

func toTaskResponse(task models.Task) types.TaskResponse {
	response := types.TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		DueDate:     task.DueDate,
		Completed:   task.Completed,
		ProjectID:   task.ProjectID,
	}

	for _, assignment := range task.TaskAssignments {
		response.Users = append(response.Users, toUserResponse(assignment.User))
	}

	return response
}

func toProjectResponse(project models.Project) types.ProjectResponse {
	response := types.ProjectResponse{
		ID:    project.ID,
		Name:  project.Name,
		Users: []types.UserResponse{},
		Tasks: []types.TaskResponse{},
	}

	for _, membership := range project.ProjectMemberships {
		response.Users = append(response.Users, toUserResponse(membership.User))
	}

	for _, task := range project.Tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}

	return response
}
