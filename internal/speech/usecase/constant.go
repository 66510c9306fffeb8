package usecase

// Log prefixes
const (
	LogPrefixProcess = "speech/usecase.Process"
)

// User-facing reply templates. These are read aloud by the frontend, so they
// stay short and conversational.
const (
	MsgContactAdded    = "Okay, I've added %s to your contacts."
	MsgTaskAdded       = "Okay, I'll remind you to %s."
	MsgTaskAddedAtTime = "Okay, I'll remind you to %s at %s."
	MsgNoPendingTasks  = "You have no pending tasks."
	MsgNoContacts      = "You don't have any contacts saved yet."
	MsgContactNotFound = "I couldn't find a contact matching %s."
)
