package v1

import (
	"net/http"

	"github.com/devtrack-simple/dto"
	"github.com/devtrack-simple/middleware"
	"github.com/devtrack-simple/models"
	"github.com/devtrack-simple/services"
	"github.com/gin-gonic/gin"
)

// TaskController handles the three task route families. One handler
// set serves features, bugs and improvements; the kind is bound at
// route registration.
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a new task controller
func NewTaskController() *TaskController {
	return &TaskController{
		taskService: services.NewTaskService(),
	}
}

var taskRoutes = []struct {
	path string
	kind models.TaskKind
}{
	{"features", models.TaskKindFeature},
	{"bugs", models.TaskKindBug},
	{"improvements", models.TaskKindImprovement},
}

// RegisterRoutes registers task routes for every kind
func (tc *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	for _, route := range taskRoutes {
		kind := route.kind

		router.POST("/projects/:id/"+route.path, middleware.AuthMiddleware(), tc.createTask(kind))

		group := router.Group("/" + route.path)
		group.Use(middleware.AuthMiddleware())
		{
			group.PUT("/:id", tc.updateTask(kind))
			group.PUT("/:id/status", tc.updateTaskStatus(kind))
			group.DELETE("/:id", tc.deleteTask(kind))
		}
	}
}

func (tc *TaskController) createTask(kind models.TaskKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		projectID, ok := pathID(c)
		if !ok {
			return
		}

		var req dto.CreateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data: " + err.Error()})
			return
		}

		task, err := tc.taskService.CreateTask(userID, kind, projectID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, task)
	}
}

func (tc *TaskController) updateTask(kind models.TaskKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}

		var req dto.UpdateTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data: " + err.Error()})
			return
		}

		task, err := tc.taskService.UpdateTask(userID, kind, id, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, task)
	}
}

func (tc *TaskController) updateTaskStatus(kind models.TaskKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}

		var req dto.UpdateTaskStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data: " + err.Error()})
			return
		}

		task, err := tc.taskService.UpdateTaskStatus(userID, kind, id, req.Status)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, task)
	}
}

func (tc *TaskController) deleteTask(kind models.TaskKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}

		if err := tc.taskService.DeleteTask(userID, kind, id); err != nil {
			respondServiceError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
