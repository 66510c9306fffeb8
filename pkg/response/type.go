package response

// Resp is the standard JSON response body.
// Successful intent responses carry Intent and Entities; failures carry an
// optional machine-oriented Details string. Message is always present and
// safe to read aloud to an end user.
type Resp struct {
	Message  string `json:"message"`
	Intent   string `json:"intent,omitempty"`
	Entities any    `json:"entities,omitempty"`
	Details  string `json:"details,omitempty"`
}
