package service

import (
	"context"
	"errors"
	"fmt"

	"todoapi/internal/models"
	"todoapi/internal/repository"

	"go.uber.org/zap"
)

var ErrTodoNotFound = errors.New("todo not found")

type TodoService interface {
	List(ctx context.Context) ([]*models.Todo, error)
	Create(ctx context.Context, title, description string) (*models.Todo, error)
	Update(ctx context.Context, id, title, description string, completed bool) (*models.Todo, error)
	Delete(ctx context.Context, id string) error
}

type todoService struct {
	repo   repository.TodoRepository
	logger *zap.Logger
}

func NewTodoService(repo repository.TodoRepository, logger *zap.Logger) TodoService {
	return &todoService{repo: repo, logger: logger}
}

func (s *todoService) List(ctx context.Context) ([]*models.Todo, error) {
	todos, err := s.repo.GetAllTodos(ctx)
	if err != nil {
		s.logger.Error("Failed to list todos", zap.Error(err))
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Create stores a new todo. Completed always starts false, whatever the
// caller supplied.
func (s *todoService) Create(ctx context.Context, title, description string) (*models.Todo, error) {
	todo := &models.Todo{
		Title:       title,
		Description: description,
		Completed:   false,
	}

	if err := s.repo.CreateTodo(ctx, todo); err != nil {
		s.logger.Error("Failed to create todo", zap.Error(err))
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// Update fully replaces title, description and completed on the todo with
// the given id.
func (s *todoService) Update(ctx context.Context, id, title, description string, completed bool) (*models.Todo, error) {
	updated, err := s.repo.UpdateTodo(ctx, &models.Todo{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	if err != nil {
		s.logger.Error("Failed to update todo", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}
	if updated == nil {
		return nil, ErrTodoNotFound
	}
	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteTodo(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete todo", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if !deleted {
		return ErrTodoNotFound
	}
	return nil
}
