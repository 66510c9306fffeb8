package classifier

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// The model is asked for a bare JSON object but regularly wraps it in a
// markdown fence or pads it with prose. A non-greedy fence match is tried
// first, then the first brace-delimited span in the raw text.
var (
	fenceRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")
	braceRe = regexp.MustCompile(`\{[\s\S]*\}`)
)

// rawEntities is the loosely-typed entities object from the model reply.
type rawEntities struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phoneNumber"`
	Relationship string `json:"relationship"`
	Description  string `json:"description"`
	Time         string `json:"time"`
}

// rawResult is the wire shape of a valid model reply.
type rawResult struct {
	Intent   string      `json:"intent"`
	Entities rawEntities `json:"entities"`
	Target   string      `json:"targetCollection"`
}

// extractIntentJSON searches text for a JSON object and validates its shape:
// non-null intent, non-null entities and a present (possibly null)
// targetCollection. Returns nil if no span parses or a required key is
// missing — no partial repair is attempted.
func extractIntentJSON(text string) *rawResult {
	span := ""
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		span = m[1]
	} else if m := braceRe.FindString(text); m != "" {
		span = m
	}
	if strings.TrimSpace(span) == "" {
		return nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &keys); err != nil {
		return nil
	}

	intentRaw, ok := keys["intent"]
	if !ok || isJSONNull(intentRaw) {
		return nil
	}
	entitiesRaw, ok := keys["entities"]
	if !ok || isJSONNull(entitiesRaw) {
		return nil
	}
	targetRaw, ok := keys["targetCollection"]
	if !ok {
		return nil
	}

	raw := &rawResult{}
	if err := json.Unmarshal(intentRaw, &raw.Intent); err != nil {
		return nil
	}
	if err := json.Unmarshal(entitiesRaw, &raw.Entities); err != nil {
		return nil
	}
	if !isJSONNull(targetRaw) {
		if err := json.Unmarshal(targetRaw, &raw.Target); err != nil {
			return nil
		}
	}

	return raw
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// toResult converts the wire shape into a tagged Result. Unknown intent
// strings fold into IntentUnknown; entity values are trimmed.
func (r *rawResult) toResult() Result {
	out := Result{
		Intent: IntentUnknown,
		Target: Target(r.Target),
	}

	switch Intent(r.Intent) {
	case IntentAddContact, IntentGetContacts:
		out.Intent = Intent(r.Intent)
		out.Contact = &ContactEntities{
			Name:         strings.TrimSpace(r.Entities.Name),
			PhoneNumber:  strings.TrimSpace(r.Entities.PhoneNumber),
			Relationship: strings.TrimSpace(r.Entities.Relationship),
		}
	case IntentAddTask, IntentGetTasks:
		out.Intent = Intent(r.Intent)
		out.Task = &TaskEntities{
			Description: strings.TrimSpace(r.Entities.Description),
			Time:        strings.TrimSpace(r.Entities.Time),
		}
	}

	return out
}
