package service

import (
	"context"
	"strconv"

	"todoapi/internal/models"
	"todoapi/internal/repository"
)

// In-memory repository fakes for service tests.

type memUserRepo struct {
	seq   int
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (m *memUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.Username]; ok {
		return repository.ErrDuplicateUser
	}
	m.seq++
	if user.ID == "" {
		user.ID = "u" + strconv.Itoa(m.seq)
	}
	cp := *user
	m.users[user.Username] = &cp
	return nil
}

func (m *memUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

type memTodoRepo struct {
	seq   int
	todos []*models.Todo
}

func (m *memTodoRepo) GetAllTodos(_ context.Context) ([]*models.Todo, error) {
	out := make([]*models.Todo, 0, len(m.todos))
	for _, todo := range m.todos {
		cp := *todo
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memTodoRepo) CreateTodo(_ context.Context, todo *models.Todo) error {
	m.seq++
	if todo.ID == "" {
		todo.ID = "t" + strconv.Itoa(m.seq)
	}
	cp := *todo
	m.todos = append(m.todos, &cp)
	return nil
}

func (m *memTodoRepo) UpdateTodo(_ context.Context, todo *models.Todo) (*models.Todo, error) {
	for _, existing := range m.todos {
		if existing.ID == todo.ID {
			existing.Title = todo.Title
			existing.Description = todo.Description
			existing.Completed = todo.Completed
			cp := *existing
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memTodoRepo) DeleteTodo(_ context.Context, id string) (bool, error) {
	for i, existing := range m.todos {
		if existing.ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
