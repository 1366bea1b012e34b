package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdo/internal/app"
	"taskdo/internal/transport/http/response"
)

type TaskHandler struct {
	taskService *app.TaskService
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1024"`
	DayToDo     string `json:"day_to_do" binding:"required"`
	PriorityID  uint   `json:"priority_id" binding:"required"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DayToDo     *string `json:"day_to_do"`
	PriorityID  *uint   `json:"priority_id"`
}

func NewTaskHandler(taskService *app.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	task, err := h.taskService.Create(userID, app.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DayToDo:     req.DayToDo,
		PriorityID:  req.PriorityID,
	})
	if err != nil {
		h.writeError(c, err, "create task failed")
		return
	}
	response.OK(c, task)
}

func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}

	tasks, err := h.taskService.List(userID)
	if err != nil {
		h.writeError(c, err, "list tasks failed")
		return
	}
	response.OK(c, tasks)
}

func (h *TaskHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}
	taskID, ok := paramID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(userID, taskID)
	if err != nil {
		h.writeError(c, err, "get task failed")
		return
	}
	response.OK(c, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}
	taskID, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	task, err := h.taskService.Update(userID, taskID, app.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DayToDo:     req.DayToDo,
		PriorityID:  req.PriorityID,
	})
	if err != nil {
		h.writeError(c, err, "update task failed")
		return
	}
	response.OK(c, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "user not found in token")
		return
	}
	taskID, ok := paramID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Remove(userID, taskID)
	if err != nil {
		h.writeError(c, err, "delete task failed")
		return
	}
	response.OK(c, task)
}

func (h *TaskHandler) ListPriorities(c *gin.Context) {
	priorities, err := h.taskService.ListPriorities()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list priorities failed")
		return
	}
	response.OK(c, priorities)
}

func (h *TaskHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrInvalidPriority):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidPriority, err.Error())
	case errors.Is(err, app.ErrTaskNotFound):
		response.Error(c, http.StatusNotFound, response.CodeTaskNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}
