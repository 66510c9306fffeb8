package repository

import (
	"context"

	"github.com/luthfiarifin/elda-backend/internal/model"
)

// Repository is the composed interface for the speech domain data store.
type Repository interface {
	ContactRepository
	TaskRepository
}

// ContactRepository defines all data access methods for the Contact entity.
type ContactRepository interface {
	CreateContact(ctx context.Context, opt CreateContactOptions) (model.Contact, error)
	ListContacts(ctx context.Context, opt ListContactsOptions) ([]model.Contact, error)
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
