package usecase

import (
	"fmt"
	"strings"

	"github.com/luthfiarifin/elda-backend/internal/model"
)

// splitKeywords splits a free-text description filter into whitespace-
// separated tokens. Each token is OR-ed against stored descriptions.
func splitKeywords(s string) []string {
	return strings.Fields(s)
}

// formatTaskList renders tasks as "description (at time)" entries joined by
// ". " so the frontend can read the reply aloud in one go.
func formatTaskList(tasks []model.Task) string {
	parts := make([]string, len(tasks))
	for i, t := range tasks {
		if t.Time != "" {
			parts[i] = fmt.Sprintf("%s (at %s)", t.Description, t.Time)
		} else {
			parts[i] = t.Description
		}
	}
	return strings.Join(parts, ". ")
}

// formatContactList renders contacts as "name, phone number (relationship)"
// entries joined by ". ".
func formatContactList(contacts []model.Contact) string {
	parts := make([]string, len(contacts))
	for i, c := range contacts {
		if c.Relationship != "" {
			parts[i] = fmt.Sprintf("%s, %s (%s)", c.Name, c.PhoneNumber, c.Relationship)
		} else {
			parts[i] = fmt.Sprintf("%s, %s", c.Name, c.PhoneNumber)
		}
	}
	return strings.Join(parts, ". ")
}
