package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karales/todo_backend/internal/apperrors"
	"github.com/karales/todo_backend/internal/core/domain"
	portsrepo "github.com/karales/todo_backend/internal/core/ports/repositories"
	portssvc "github.com/karales/todo_backend/internal/core/ports/services"
	"github.com/karales/todo_backend/internal/dto"
)

type todoService struct {
	todoRepo portsrepo.TodoRepositoryFacade
}

// NewTodoService creates the ownership-scoped todo service.
func NewTodoService(todoRepo portsrepo.TodoRepositoryFacade) portssvc.TodoSvcFacade {
	return &todoService{todoRepo: todoRepo}
}

var _ portssvc.TodoSvcFacade = (*todoService)(nil)

func (s *todoService) CreateTodo(ctx context.Context, userID string, req dto.CreateTodoRequest) (*domain.Todo, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewBadRequestError("Title is required")
	}

	todo := domain.Todo{
		TodoID:      uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	}

	if err := s.todoRepo.SaveTodo(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return &todo, nil
}

func (s *todoService) ListTodos(ctx context.Context, userID string, params dto.ListTodosParams) ([]domain.Todo, error) {
	filter := domain.TodoFilter{
		Keyword:   params.Keyword,
		Completed: params.Completed,
	}
	todos, err := s.todoRepo.FindTodos(ctx, userID, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *todoService) GetTodoByID(ctx context.Context, userID, todoID string) (*domain.Todo, error) {
	todo, err := s.todoRepo.FindTodoByID(ctx, todoID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, userID, todoID string, req dto.UpdateTodoRequest) (*domain.Todo, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperrors.NewBadRequestError("Title cannot be empty")
	}

	patch := domain.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	todo, err := s.todoRepo.UpdateTodo(ctx, todoID, userID, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	err := s.todoRepo.DeleteTodo(ctx, todoID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrServiceUnavailable) {
			return err
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
