package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/services"
	"github.com/taskhive/taskhive/internal/utils"
)

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProjectUsersRequest struct {
	UserIDs []uint `json:"userIds" binding:"required"`
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": "Invalid request"})
		return
	}

	project, err := services.CreateProject(body.Name)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func ListProjects(ctx *gin.Context) {
	projects, err := services.GetAllProjects()

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func GetProject(ctx *gin.Context) {
	projectID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	project, err := services.GetProject(uint(projectID))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func DeleteProject(ctx *gin.Context) {
	projectID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	if err := services.DeleteProject(uint(projectID)); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateProjectUsers replaces the full member set of a project.
func UpdateProjectUsers(ctx *gin.Context) {
	projectID, err := utils.GetIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	var body UpdateProjectUsersRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": "Invalid request"})
		return
	}

	project, err := services.UpdateProjectUsers(uint(projectID), body.UserIDs)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}
