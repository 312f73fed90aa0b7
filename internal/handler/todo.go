package handler

import (
	"errors"
	"net/http"

	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TodoHandler interface {
	GetAllTodos(c *gin.Context)
	CreateTodo(c *gin.Context)
	UpdateTodo(c *gin.Context)
	DeleteTodo(c *gin.Context)
}

type todoHandler struct {
	todoService service.TodoService
	log         *logrus.Logger
}

func NewTodoHandler(todoService service.TodoService, log *logrus.Logger) TodoHandler {
	return &todoHandler{todoService: todoService, log: log}
}

type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Completed   *bool  `json:"completed" binding:"required"`
}

// GetAllTodos handles GET /todos.
func (h *todoHandler) GetAllTodos(c *gin.Context) {
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to get todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// CreateTodo handles POST /todos. Any completed value in the body is
// ignored; new todos always start incomplete.
func (h *todoHandler) CreateTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for todo create: %v", err)
		respondValidation(c, err)
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		h.log.Errorf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// UpdateTodo handles PUT /todos/:id with full-replace semantics.
func (h *todoHandler) UpdateTodo(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for todo update: %v", err)
		respondValidation(c, err)
		return
	}

	id := c.Param("id")
	todo, err := h.todoService.Update(c.Request.Context(), id, req.Title, req.Description, *req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		h.log.Errorf("Failed to update todo %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/:id.
func (h *todoHandler) DeleteTodo(c *gin.Context) {
	id := c.Param("id")
	if err := h.todoService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		h.log.Errorf("Failed to delete todo %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.Status(http.StatusNoContent)
}
