package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Project API is running...",
	})
}

// APIDocs serves a machine-readable listing of the HTTP surface. It stands
// in for a generated OpenAPI document and is on the public allowlist.
func APIDocs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   "Projects API",
		"version": "1.0.0",
		"routes": []gin.H{
			{"method": "POST", "path": "/users/signup"},
			{"method": "POST", "path": "/users/login"},
			{"method": "POST", "path": "/users/logout"},
			{"method": "GET", "path": "/users"},
			{"method": "GET", "path": "/users/me"},
			{"method": "GET", "path": "/users/email/:email"},
			{"method": "GET", "path": "/users/:userId/projects"},
			{"method": "GET", "path": "/projects"},
			{"method": "POST", "path": "/projects"},
			{"method": "GET", "path": "/projects/:id"},
			{"method": "DELETE", "path": "/projects/:id"},
			{"method": "PUT", "path": "/projects/:projectId/users"},
			{"method": "POST", "path": "/projects/:id/tasks"},
			{"method": "GET", "path": "/projects/:id/tasks"},
			{"method": "PATCH", "path": "/projects/tasks/:taskId/status"},
			{"method": "PUT", "path": "/projects/tasks/:taskId/status"},
			{"method": "PUT", "path": "/projects/tasks/:taskId/users"},
			{"method": "DELETE", "path": "/projects/tasks/:taskId"},
			{"method": "GET", "path": "/status"},
		},
	})
}
