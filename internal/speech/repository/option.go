package repository

// CreateContactOptions holds parameters for inserting a new Contact.
// Name and PhoneNumber must be validated non-empty by the caller.
type CreateContactOptions struct {
	Name         string
	PhoneNumber  string
	Relationship string
	Prompt       string // original utterance
}

// ListContactsOptions holds filter parameters for listing Contacts.
// Name, when non-empty, is matched as a case-insensitive substring.
type ListContactsOptions struct {
	Name string
}

// CreateTaskOptions holds parameters for inserting a new Task.
// Description must be validated non-empty by the caller.
type CreateTaskOptions struct {
	Description string
	Time        string
	Prompt      string // original utterance
}

// ListTasksOptions holds filter parameters for listing pending Tasks.
// Time is matched as a case-insensitive substring; Keywords are OR-ed
// against the description. Results are always newest first and exclude
// completed tasks.
type ListTasksOptions struct {
	Time     string
	Keywords []string
}
