package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/dto"
	"github.com/karales/todo_backend/internal/middleware"
)

// todoHandler handles HTTP requests for the caller's todos. Every operation
// is scoped to the user id the auth middleware verified.
type todoHandler struct {
	todoService portssvc.TodoSvcFacade
}

func newTodoHandler(ts portssvc.TodoSvcFacade) *todoHandler {
	return &todoHandler{todoService: ts}
}

// registerTodoRoutes registers all todo routes on the authenticated group.
func registerTodoRoutes(rg *gin.RouterGroup, todoService portssvc.TodoSvcFacade) {
	h := newTodoHandler(todoService)

	todos := rg.Group("/todos")
	{
		todos.POST("", h.createTodo)
		todos.GET("", h.listTodos)
		todos.GET("/:id", h.getTodo)
		todos.PATCH("/:id", h.updateTodo)
		todos.DELETE("/:id", h.deleteTodo)
	}
}

// createTodo godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body dto.CreateTodoRequest true "Todo details"
// @Success 201 {object} dto.TodoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos [post]
func (h *todoHandler) createTodo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create todo")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoResponse(todo))
}

// listTodos godoc
// @Summary List the caller's todos
// @Tags todos
// @Produce json
// @Param keyword query string false "Case-insensitive title filter"
// @Param completed query bool false "Completion status filter"
// @Success 200 {array} dto.TodoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos [get]
func (h *todoHandler) listTodos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTodosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list todos")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListResponse(todos))
}

// getTodo godoc
// @Summary Get a todo by ID
// @Description A todo owned by another user reports not found.
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos/{id} [get]
func (h *todoHandler) getTodo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	todo, err := h.todoService.GetTodoByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponse(todo))
}

// updateTodo godoc
// @Summary Partially update a todo
// @Description Absent fields keep their stored values.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todo body dto.UpdateTodoRequest true "Fields to update"
// @Success 200 {object} dto.TodoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos/{id} [patch]
func (h *todoHandler) updateTodo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponse(todo))
}

// deleteTodo godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /todos/{id} [delete]
func (h *todoHandler) deleteTodo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete todo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
