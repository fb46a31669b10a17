package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/services"
	"github.com/taskhive/taskhive/internal/utils"
)

func ListUsers(ctx *gin.Context) {
	users, err := services.GetAllUsers()

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func GetUserByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	user, err := services.GetUserByEmail(email)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func GetUserProjects(ctx *gin.Context) {
	userID, err := utils.GetIDParam(ctx, "userId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
		return
	}

	projects, err := services.GetUserProjects(uint(userID))

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}
