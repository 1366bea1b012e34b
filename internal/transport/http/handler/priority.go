package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskdo/internal/app"
	"taskdo/internal/transport/http/response"
)

type PriorityHandler struct {
	priorityService *app.PriorityService
}

type CreatePriorityRequest struct {
	Description string `json:"description" binding:"required,max=255"`
}

type UpdatePriorityRequest struct {
	Description *string `json:"description"`
}

func NewPriorityHandler(priorityService *app.PriorityService) *PriorityHandler {
	return &PriorityHandler{priorityService: priorityService}
}

func (h *PriorityHandler) Create(c *gin.Context) {
	var req CreatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	priority, err := h.priorityService.Create(req.Description)
	if err != nil {
		h.writeError(c, err, "create priority failed")
		return
	}
	response.OK(c, priority)
}

func (h *PriorityHandler) List(c *gin.Context) {
	priorities, err := h.priorityService.List()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list priorities failed")
		return
	}
	response.OK(c, priorities)
}

func (h *PriorityHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	priority, err := h.priorityService.Get(id)
	if err != nil {
		h.writeError(c, err, "get priority failed")
		return
	}
	response.OK(c, priority)
}

func (h *PriorityHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	priority, err := h.priorityService.Update(id, app.UpdatePriorityInput{
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err, "update priority failed")
		return
	}
	response.OK(c, priority)
}

func (h *PriorityHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.priorityService.Delete(id); err != nil {
		h.writeError(c, err, "delete priority failed")
		return
	}
	response.OK(c, gin.H{"deleted": id})
}

func (h *PriorityHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrPriorityNotFound):
		response.Error(c, http.StatusNotFound, response.CodePriorityNotFound, err.Error())
	case errors.Is(err, app.ErrPriorityInUse):
		response.Error(c, http.StatusBadRequest, response.CodePriorityInUse, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}

func paramID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid id")
		return 0, false
	}
	return uint(parsed), true
}
