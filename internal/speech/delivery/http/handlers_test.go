package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/luthfiarifin/elda-backend/internal/classifier"
	"github.com/luthfiarifin/elda-backend/internal/model"
	"github.com/luthfiarifin/elda-backend/internal/speech"
	"github.com/luthfiarifin/elda-backend/internal/speech/repository"
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

// Mock use case
type mockUseCase struct {
	output speech.ProcessOutput
	err    error
}

func (m *mockUseCase) Process(ctx context.Context, input speech.ProcessInput) (speech.ProcessOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return speech.ProcessOutput{}, speech.ErrEmptyText
	}
	return m.output, m.err
}

func newTestRouter(uc speech.UseCase, env model.Environment) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc, env)
	r.POST("/api/process-speech", h.ProcessSpeech)
	return r
}

func postSpeech(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/process-speech", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestProcessSpeech(t *testing.T) {
	t.Run("Blank Text Returns 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, model.EnvironmentDevelopment)

		for _, body := range []string{`{}`, `{"text": ""}`, `{"text": "   "}`} {
			w := postSpeech(r, body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %s: expected 400, got %d", body, w.Code)
			}
			resp := decodeBody(t, w)
			if resp["message"] == "" {
				t.Errorf("body %s: expected a user-facing message", body)
			}
		}
	})

	t.Run("Malformed JSON Returns 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{}, model.EnvironmentDevelopment)
		w := postSpeech(r, `{"text": `)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Success Returns Message Intent And Entities", func(t *testing.T) {
		uc := &mockUseCase{output: speech.ProcessOutput{
			Message: "Okay, I'll remind you to call the doctor at tomorrow.",
			Intent:  classifier.IntentAddTask,
			Task:    &classifier.TaskEntities{Description: "call the doctor", Time: "tomorrow"},
		}}
		r := newTestRouter(uc, model.EnvironmentDevelopment)

		w := postSpeech(r, `{"text": "Remind me to call the doctor tomorrow"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		resp := decodeBody(t, w)
		if !strings.Contains(resp["message"].(string), "call the doctor") {
			t.Errorf("unexpected message: %v", resp["message"])
		}
		if resp["intent"] != "add_task" {
			t.Errorf("unexpected intent: %v", resp["intent"])
		}
		entities, ok := resp["entities"].(map[string]any)
		if !ok {
			t.Fatalf("expected entities object, got %T", resp["entities"])
		}
		if entities["description"] != "call the doctor" || entities["time"] != "tomorrow" {
			t.Errorf("unexpected entities: %v", entities)
		}
	})

	t.Run("Unknown Intent Returns 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: speech.ErrUnknownIntent}, model.EnvironmentDevelopment)
		w := postSpeech(r, `{"text": "sing me a song"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		resp := decodeBody(t, w)
		if resp["message"] != MsgUnknownIntent {
			t.Errorf("unexpected message: %v", resp["message"])
		}
	})

	t.Run("Missing Entity Fields Return 400", func(t *testing.T) {
		cases := map[error]string{
			speech.ErrMissingContactFields: MsgMissingContactFields,
			speech.ErrMissingTaskFields:    MsgMissingTaskFields,
		}
		for domainErr, wantMsg := range cases {
			r := newTestRouter(&mockUseCase{err: domainErr}, model.EnvironmentDevelopment)
			w := postSpeech(r, `{"text": "save something"}`)
			if w.Code != http.StatusBadRequest {
				t.Errorf("%v: expected 400, got %d", domainErr, w.Code)
			}
			resp := decodeBody(t, w)
			if resp["message"] != wantMsg {
				t.Errorf("%v: unexpected message %v", domainErr, resp["message"])
			}
		}
	})

	t.Run("Classification Failure Returns 500 With Details", func(t *testing.T) {
		err := fmt.Errorf("%w: Content blocked due to HATE_SPEECH", speech.ErrClassification)
		r := newTestRouter(&mockUseCase{err: err}, model.EnvironmentProduction)

		w := postSpeech(r, `{"text": "something"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		resp := decodeBody(t, w)
		if resp["message"] != MsgClassificationFailed {
			t.Errorf("unexpected message: %v", resp["message"])
		}
		if !strings.Contains(resp["details"].(string), "HATE_SPEECH") {
			t.Errorf("expected block reason in details, got %v", resp["details"])
		}
	})

	t.Run("Persistence Failure Hides Details In Production", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: repository.ErrFailedToInsert}, model.EnvironmentProduction)
		w := postSpeech(r, `{"text": "remind me to buy milk"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		resp := decodeBody(t, w)
		if _, ok := resp["details"]; ok {
			t.Errorf("details must be hidden in production, got %v", resp["details"])
		}
	})

	t.Run("Persistence Failure Shows Details In Development", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: repository.ErrFailedToInsert}, model.EnvironmentDevelopment)
		w := postSpeech(r, `{"text": "remind me to buy milk"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		resp := decodeBody(t, w)
		if resp["details"] != repository.ErrFailedToInsert.Error() {
			t.Errorf("expected raw error in details, got %v", resp["details"])
		}
	})
}
