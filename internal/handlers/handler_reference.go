package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/karales/todo_backend/internal/middleware"
)

// referenceTodosURL is the public sample dataset the reference endpoint
// proxies.
const referenceTodosURL = "https://jsonplaceholder.typicode.com/todos"

// referenceTodo mirrors the upstream todo shape.
type referenceTodo struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// referenceHandler proxies a public sample todo dataset, useful for frontend
// demos without an account.
type referenceHandler struct {
	client *http.Client
}

func newReferenceHandler() *referenceHandler {
	return &referenceHandler{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// registerReferenceRoutes registers the public reference dataset route.
func registerReferenceRoutes(r *gin.Engine) {
	h := newReferenceHandler()
	r.GET("/api/todos/reference", h.listReferenceTodos)
}

// listReferenceTodos godoc
// @Summary List sample todos from the public reference dataset
// @Description Fetches the upstream dataset and applies an optional
// case-insensitive title keyword filter in-process.
// @Tags reference
// @Produce json
// @Param keyword query string false "Case-insensitive title filter"
// @Success 200 {array} referenceTodo
// @Failure 500 {object} ErrorResponse
// @Router /todos/reference [get]
func (h *referenceHandler) listReferenceTodos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, referenceTodosURL, nil)
	if err != nil {
		logger.Error("Failed to build reference request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch reference todos"})
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logger.Error("Reference dataset request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch reference todos"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Reference dataset returned non-OK status", slog.Int("status", resp.StatusCode))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch reference todos"})
		return
	}

	var todos []referenceTodo
	if err := json.NewDecoder(resp.Body).Decode(&todos); err != nil {
		logger.Error("Failed to decode reference dataset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch reference todos"})
		return
	}

	if keyword := c.Query("keyword"); keyword != "" {
		lowered := strings.ToLower(keyword)
		filtered := make([]referenceTodo, 0, len(todos))
		for _, t := range todos {
			if strings.Contains(strings.ToLower(t.Title), lowered) {
				filtered = append(filtered, t)
			}
		}
		todos = filtered
	}

	c.JSON(http.StatusOK, todos)
}
