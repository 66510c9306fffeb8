package gemini

// GenerateRequest is the top-level request body for the Gemini API.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	SafetySettings   []SafetySetting   `json:"safetySettings,omitempty"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// SafetySetting configures content filtering for a single harm category.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// Harm categories and thresholds accepted by the API.
const (
	CategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	CategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	CategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	CategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	ThresholdBlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)

// GenerationConfig holds optional generation settings.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is the top-level response body from the Gemini API.
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// PromptFeedback reports why the API refused to generate, if it did.
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// Text returns the first candidate's concatenated text parts, or "" when the
// response carries no candidates.
func (r *GenerateResponse) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var out string
	for _, part := range r.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out
}
