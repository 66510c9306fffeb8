package usecase

import (
	"context"

	"github.com/luthfiarifin/elda-backend/internal/classifier"
	"github.com/luthfiarifin/elda-backend/internal/model"
	"github.com/luthfiarifin/elda-backend/internal/speech/repository"
)

// Mock logger for testing
type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    { m.warnings++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnings++
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Deterministic classifier stub
type stubClassifier struct {
	result classifier.Result
}

func (s *stubClassifier) Classify(ctx context.Context, text string) classifier.Result {
	return s.result
}

// Mock repository with per-method hooks and write counters
type mockRepository struct {
	createContactFunc func(opt repository.CreateContactOptions) (model.Contact, error)
	listContactsFunc  func(opt repository.ListContactsOptions) ([]model.Contact, error)
	createTaskFunc    func(opt repository.CreateTaskOptions) (model.Task, error)
	listTasksFunc     func(opt repository.ListTasksOptions) ([]model.Task, error)

	contactInserts int
	taskInserts    int
}

func (m *mockRepository) CreateContact(ctx context.Context, opt repository.CreateContactOptions) (model.Contact, error) {
	m.contactInserts++
	if m.createContactFunc != nil {
		return m.createContactFunc(opt)
	}
	return model.Contact{
		Name:         opt.Name,
		PhoneNumber:  opt.PhoneNumber,
		Relationship: opt.Relationship,
		Prompt:       opt.Prompt,
	}, nil
}

func (m *mockRepository) ListContacts(ctx context.Context, opt repository.ListContactsOptions) ([]model.Contact, error) {
	if m.listContactsFunc != nil {
		return m.listContactsFunc(opt)
	}
	return nil, nil
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.taskInserts++
	if m.createTaskFunc != nil {
		return m.createTaskFunc(opt)
	}
	return model.Task{
		Description: opt.Description,
		Time:        opt.Time,
		Prompt:      opt.Prompt,
	}, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(opt)
	}
	return nil, nil
}
