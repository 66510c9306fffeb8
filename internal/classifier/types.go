package classifier

// Intent represents the classified user goal.
type Intent string

const (
	IntentAddContact  Intent = "add_contact"
	IntentAddTask     Intent = "add_task"
	IntentGetContacts Intent = "get_contacts"
	IntentGetTasks    Intent = "get_tasks"
	IntentUnknown     Intent = "unknown"
)

// Target is the record collection the classified intent concerns.
type Target string

const (
	TargetContacts Target = "contacts"
	TargetTasks    Target = "tasks"
	TargetNone     Target = ""
)

// ExpectedTarget returns the collection the intent implies. Used to detect
// intent/target mismatches in the model output.
func (i Intent) ExpectedTarget() Target {
	switch i {
	case IntentAddContact, IntentGetContacts:
		return TargetContacts
	case IntentAddTask, IntentGetTasks:
		return TargetTasks
	default:
		return TargetNone
	}
}

// ContactEntities holds the fields extracted for contact intents.
type ContactEntities struct {
	Name         string `json:"name,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// TaskEntities holds the fields extracted for task intents.
type TaskEntities struct {
	Description string `json:"description,omitempty"`
	Time        string `json:"time,omitempty"`
}

// Result is the outcome of one classification. Exactly one of Contact/Task
// is set for a non-unknown intent, keyed by the intent kind. Classification
// failures travel in Err rather than as a Go error: the adapter never lets a
// model or transport failure escape to its caller.
type Result struct {
	Intent  Intent
	Contact *ContactEntities
	Task    *TaskEntities
	Target  Target
	Err     string
}

// Failed reports whether classification failed (blocked, unparseable output
// or transport error).
func (r Result) Failed() bool { return r.Err != "" }
