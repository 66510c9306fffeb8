package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luthfiarifin/elda-backend/internal/model"
	repo "github.com/luthfiarifin/elda-backend/internal/speech/repository"
)

// CreateTask inserts a new Task document and returns the created entity.
// IsCompleted always starts false; no operation in this service sets it true.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	task := model.Task{
		Description: opt.Description,
		Time:        opt.Time,
		IsCompleted: false,
		Prompt:      opt.Prompt,
		CreatedAt:   time.Now().UTC(),
	}

	res, err := r.db.Collection(collTasks).InsertOne(ctx, task)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		task.ID = id
	}
	return task, nil
}

// ListTasks retrieves pending tasks matching the filters, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	cursor, err := r.db.Collection(collTasks).Find(
		ctx,
		buildTaskFilter(opt.Time, opt.Keywords),
		options.Find().SetSort(newestFirst()),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var tasks []model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}
