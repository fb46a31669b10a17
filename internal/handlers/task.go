package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/services"
	"github.com/taskhive/taskhive/internal/utils"
)

type CreateTaskRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description *string   `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	Completed   bool      `json:"completed"`
	UserIDs     []uint    `json:"userIds"`
}

type UpdateTaskStatusRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type UpdateTaskUsersRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
}

func CreateTask(ctx *gin.Context) {
	projectID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	var body CreateTaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": "Invalid request"})
		return
	}

	task, err := services.CreateTaskForProject(uint(projectID), services.CreateTaskInput{
		Name:        body.Name,
		Description: body.Description,
		DueDate:     body.DueDate,
		Completed:   body.Completed,
		UserIDs:     body.UserIDs,
	})

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

func ListProjectTasks(ctx *gin.Context) {
	projectID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	tasks, err := services.GetTasksForProject(uint(projectID))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func UpdateTaskStatus(ctx *gin.Context) {
	taskID, err := utils.GetIDParam(ctx, "taskId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	var body UpdateTaskStatusRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": "Invalid request"})
		return
	}

	task, err := services.UpdateTaskStatus(uint(taskID), *body.Completed)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func UpdateTaskUsers(ctx *gin.Context) {
	taskID, err := utils.GetIDParam(ctx, "taskId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	var body UpdateTaskUsersRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": "Invalid request"})
		return
	}

	task, err := services.UpdateTaskUsers(uint(taskID), body.UserIDs)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

func DeleteTask(ctx *gin.Context) {
	taskID, err := utils.GetIDParam(ctx, "taskId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	if err := services.DeleteTask(uint(taskID)); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
