package repository

import (
	"context"
	"errors"
	"time"

	"todoapi/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type TodoRepository interface {
	GetAllTodos(ctx context.Context) ([]*models.Todo, error)
	CreateTodo(ctx context.Context, todo *models.Todo) error
	UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id string) (bool, error)
}

type todoRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

func NewTodoRepository(db *mongo.Database, logger *zap.Logger) TodoRepository {
	return &todoRepository{col: db.Collection(todosCollection), logger: logger}
}

// GetAllTodos returns every todo in the store's natural order.
func (r *todoRepository) GetAllTodos(ctx context.Context) ([]*models.Todo, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	todos := []*models.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) CreateTodo(ctx context.Context, todo *models.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, todo)
	return err
}

// UpdateTodo replaces title, description and completed on the document with
// the given id and returns the updated document, or nil when the id is
// unknown.
func (r *todoRepository) UpdateTodo(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	update := bson.M{"$set": bson.M{
		"title":       todo.Title,
		"description": todo.Description,
		"completed":   todo.Completed,
		"updated_at":  time.Now().UTC(),
	}}

	var updated models.Todo
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": todo.ID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *todoRepository) DeleteTodo(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
