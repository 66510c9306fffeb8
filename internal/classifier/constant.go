package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// PromptClassifySystem is the instruction prompt sent to the model. The
// reply contract (JSON-only, fixed keys) is what extract.go enforces.
const PromptClassifySystem = `You are an intent classifier for a voice assistant that helps elderly users manage contacts and reminders.

Analyze the transcribed speech below and determine the user's intent.

Text: "%s"

Possible intents:
1. add_contact: save a new contact. Entities: name (required), phoneNumber (required), relationship (optional, e.g. "daughter").
2. add_task: save a task or reminder. Entities: description (required), time (optional free text, e.g. "tomorrow morning").
3. get_contacts: look up saved contacts. Entities: name (optional filter).
4. get_tasks: list pending tasks or reminders. Entities: description (optional), time (optional).
5. unknown: anything that does not match the intents above.

Reply with ONLY a JSON object, no markdown and no explanation, with exactly these keys:
{
  "intent": "add_contact" | "add_task" | "get_contacts" | "get_tasks" | "unknown",
  "entities": { extracted fields for the intent, or {} },
  "targetCollection": "contacts" | "tasks" | null
}`

// Classification settings
const (
	ClassifyTemperature = 0.1
)

// Failure messages surfaced in Result.Err
const (
	ErrMsgExtractFailed = "Failed to extract or parse valid JSON from model response."
	ErrMsgBlockedPrefix = "Content blocked due to "
)
