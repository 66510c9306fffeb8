package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/luthfiarifin/elda-backend/internal/classifier"
	"github.com/luthfiarifin/elda-backend/internal/speech"
	"github.com/luthfiarifin/elda-backend/internal/speech/repository"
)

// Process runs the intent pipeline: classify, validate entities, dispatch to
// the matching persistence or query operation, synthesize a reply.
func (uc *implUseCase) Process(ctx context.Context, input speech.ProcessInput) (speech.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return speech.ProcessOutput{}, speech.ErrEmptyText
	}

	res := uc.classifier.Classify(ctx, text)
	if res.Failed() {
		return speech.ProcessOutput{}, fmt.Errorf("%w: %s", speech.ErrClassification, res.Err)
	}
	if res.Intent == classifier.IntentUnknown {
		return speech.ProcessOutput{}, speech.ErrUnknownIntent
	}

	// The intent value alone drives dispatch; a disagreeing targetCollection
	// is recorded but does not block the request.
	if expected := res.Intent.ExpectedTarget(); res.Target != expected {
		uc.l.Warnf(ctx, "%s: intent %s implies collection %q but classifier said %q, proceeding on intent",
			LogPrefixProcess, res.Intent, expected, res.Target)
	}

	switch res.Intent {
	case classifier.IntentAddContact:
		return uc.addContact(ctx, text, res)
	case classifier.IntentAddTask:
		return uc.addTask(ctx, text, res)
	case classifier.IntentGetContacts:
		return uc.getContacts(ctx, res)
	case classifier.IntentGetTasks:
		return uc.getTasks(ctx, res)
	default:
		return speech.ProcessOutput{}, speech.ErrUnknownIntent
	}
}

func (uc *implUseCase) addContact(ctx context.Context, text string, res classifier.Result) (speech.ProcessOutput, error) {
	e := res.Contact
	if e == nil || e.Name == "" || e.PhoneNumber == "" {
		return speech.ProcessOutput{}, speech.ErrMissingContactFields
	}

	contact, err := uc.repo.CreateContact(ctx, repository.CreateContactOptions{
		Name:         e.Name,
		PhoneNumber:  e.PhoneNumber,
		Relationship: e.Relationship,
		Prompt:       text,
	})
	if err != nil {
		return speech.ProcessOutput{}, err
	}

	return speech.ProcessOutput{
		Message: fmt.Sprintf(MsgContactAdded, contact.Name),
		Intent:  res.Intent,
		Contact: e,
	}, nil
}

func (uc *implUseCase) addTask(ctx context.Context, text string, res classifier.Result) (speech.ProcessOutput, error) {
	e := res.Task
	if e == nil || e.Description == "" {
		return speech.ProcessOutput{}, speech.ErrMissingTaskFields
	}

	task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Description: e.Description,
		Time:        e.Time,
		Prompt:      text,
	})
	if err != nil {
		return speech.ProcessOutput{}, err
	}

	message := fmt.Sprintf(MsgTaskAdded, task.Description)
	if task.Time != "" {
		message = fmt.Sprintf(MsgTaskAddedAtTime, task.Description, task.Time)
	}

	return speech.ProcessOutput{
		Message: message,
		Intent:  res.Intent,
		Task:    e,
	}, nil
}

func (uc *implUseCase) getContacts(ctx context.Context, res classifier.Result) (speech.ProcessOutput, error) {
	e := res.Contact
	if e == nil {
		e = &classifier.ContactEntities{}
	}

	contacts, err := uc.repo.ListContacts(ctx, repository.ListContactsOptions{Name: e.Name})
	if err != nil {
		return speech.ProcessOutput{}, err
	}

	message := formatContactList(contacts)
	if len(contacts) == 0 {
		message = MsgNoContacts
		if e.Name != "" {
			message = fmt.Sprintf(MsgContactNotFound, e.Name)
		}
	}

	return speech.ProcessOutput{
		Message: message,
		Intent:  res.Intent,
		Contact: e,
	}, nil
}

func (uc *implUseCase) getTasks(ctx context.Context, res classifier.Result) (speech.ProcessOutput, error) {
	e := res.Task
	if e == nil {
		e = &classifier.TaskEntities{}
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Time:     e.Time,
		Keywords: splitKeywords(e.Description),
	})
	if err != nil {
		return speech.ProcessOutput{}, err
	}

	message := formatTaskList(tasks)
	if len(tasks) == 0 {
		message = MsgNoPendingTasks
	}

	return speech.ProcessOutput{
		Message: message,
		Intent:  res.Intent,
		Task:    e,
	}, nil
}
