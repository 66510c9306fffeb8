package classifier_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luthfiarifin/elda-backend/internal/classifier"
	"github.com/luthfiarifin/elda-backend/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newClassifierWithCannedReply spins up a fake Gemini endpoint that always
// answers with body, and returns a classifier wired to it.
func newClassifierWithCannedReply(t *testing.T, body string) (*classifier.GeminiClassifier, func()) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	client := gemini.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	return classifier.New(client, &mockLogger{}), ts.Close
}

func candidateBody(text string) string {
	// JSON-escape the inner text by hand: the canned replies only need
	// newline and quote escaping.
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"`, `\"`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	return `{"candidates":[{"content":{"role":"model","parts":[{"text":"` + text + `"}]}}]}`
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Classification", func(t *testing.T) {
		reply := "```json\n{\"intent\": \"add_task\", \"entities\": {\"description\": \"call the doctor\", \"time\": \"tomorrow\"}, \"targetCollection\": \"tasks\"}\n```"
		c, done := newClassifierWithCannedReply(t, candidateBody(reply))
		defer done()

		res := c.Classify(ctx, "Remind me to call the doctor tomorrow")
		if res.Failed() {
			t.Fatalf("unexpected failure: %s", res.Err)
		}
		if res.Intent != classifier.IntentAddTask {
			t.Errorf("unexpected intent: %s", res.Intent)
		}
		if res.Task == nil || res.Task.Description != "call the doctor" || res.Task.Time != "tomorrow" {
			t.Errorf("unexpected task entities: %+v", res.Task)
		}
		if res.Target != classifier.TargetTasks {
			t.Errorf("unexpected target: %s", res.Target)
		}
	})

	t.Run("Safety Block", func(t *testing.T) {
		c, done := newClassifierWithCannedReply(t, `{"promptFeedback":{"blockReason":"HATE_SPEECH"}}`)
		defer done()

		res := c.Classify(ctx, "some blocked text")
		if res.Intent != classifier.IntentUnknown {
			t.Errorf("expected unknown intent, got %s", res.Intent)
		}
		if !res.Failed() || !strings.Contains(res.Err, "HATE_SPEECH") {
			t.Errorf("expected block reason in Err, got %q", res.Err)
		}
		if !strings.HasPrefix(res.Err, "Content blocked due to ") {
			t.Errorf("unexpected Err prefix: %q", res.Err)
		}
	})

	t.Run("Prose Only Output", func(t *testing.T) {
		c, done := newClassifierWithCannedReply(t, candidateBody("Sorry, I cannot help with that."))
		defer done()

		res := c.Classify(ctx, "gibberish")
		if res.Intent != classifier.IntentUnknown {
			t.Errorf("expected unknown intent, got %s", res.Intent)
		}
		if res.Err != "Failed to extract or parse valid JSON from model response." {
			t.Errorf("unexpected Err: %q", res.Err)
		}
	})

	t.Run("Transport Failure", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		client := gemini.NewClient("test-key")
		client.SetAPIURL(ts.URL)
		ts.Close() // force a connection error

		c := classifier.New(client, &mockLogger{})
		res := c.Classify(ctx, "hello")
		if res.Intent != classifier.IntentUnknown {
			t.Errorf("expected unknown intent, got %s", res.Intent)
		}
		if !res.Failed() {
			t.Errorf("expected Err to be set on transport failure")
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		c, done := newClassifierWithCannedReply(t, `{"candidates":[]}`)
		defer done()

		res := c.Classify(ctx, "hello")
		if res.Intent != classifier.IntentUnknown || !res.Failed() {
			t.Errorf("expected unknown+failed for empty candidates, got %+v", res)
		}
	})
}
