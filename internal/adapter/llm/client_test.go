package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestGenerator(endpoint string) *HTTPClient {
	return NewHTTPClient(endpoint, "test-key", "openrouter/auto", time.Second, testLogger())
}

func completionServer(t *testing.T, reply string, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		fmt.Fprintf(w, `{"choices":[{"message":{"content":%q}}]}`, reply)
	}))
}

func TestGenerateSendsPersonaAndHistory(t *testing.T) {
	var captured chatRequest
	srv := completionServer(t, "Hello!", &captured)
	defer srv.Close()

	gen := newTestGenerator(srv.URL)
	history := []model.ChatTurn{
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	}
	if got := gen.Generate(context.Background(), history); got != "Hello!" {
		t.Fatalf("unexpected reply %q", got)
	}

	if captured.Model != "openrouter/auto" {
		t.Errorf("unexpected model %q", captured.Model)
	}
	if captured.Temperature != 0.3 {
		t.Errorf("unexpected temperature %v", captured.Temperature)
	}
	if captured.MaxTokens != 200 {
		t.Errorf("unexpected max tokens %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 3 {
		t.Fatalf("expected system prompt plus 2 turns, got %d messages", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" {
		t.Errorf("expected leading system message, got %q", captured.Messages[0].Role)
	}
	if captured.Messages[1].Content != "hi" || captured.Messages[2].Content != "hello" {
		t.Errorf("history not forwarded verbatim: %+v", captured.Messages[1:])
	}
}

func TestGenerateWindowsHistory(t *testing.T) {
	var captured chatRequest
	srv := completionServer(t, "ok", &captured)
	defer srv.Close()

	gen := newTestGenerator(srv.URL)
	var history []model.ChatTurn
	for i := 0; i < 12; i++ {
		history = append(history, model.ChatTurn{Role: model.RoleUser, Content: fmt.Sprintf("turn %d", i)})
	}
	gen.Generate(context.Background(), history)

	if len(captured.Messages) != historyWindow+1 {
		t.Fatalf("expected %d messages, got %d", historyWindow+1, len(captured.Messages))
	}
	if captured.Messages[1].Content != "turn 5" {
		t.Errorf("expected oldest retained turn to be 'turn 5', got %q", captured.Messages[1].Content)
	}
	if captured.Messages[len(captured.Messages)-1].Content != "turn 11" {
		t.Errorf("expected newest turn last, got %q", captured.Messages[len(captured.Messages)-1].Content)
	}
}

func TestGenerateEmptyHistorySeedsGreeting(t *testing.T) {
	var captured chatRequest
	srv := completionServer(t, "welcome", &captured)
	defer srv.Close()

	gen := newTestGenerator(srv.URL)
	gen.Generate(context.Background(), nil)

	if len(captured.Messages) != 2 {
		t.Fatalf("expected system prompt plus seed, got %d messages", len(captured.Messages))
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "Hi" {
		t.Errorf("unexpected seed turn %+v", captured.Messages[1])
	}
}

func TestGenerateSendsBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"hi"}}]}`)
	}))
	defer srv.Close()

	newTestGenerator(srv.URL).Generate(context.Background(), nil)
	if auth != "Bearer test-key" {
		t.Fatalf("unexpected authorization header %q", auth)
	}
}

func TestGenerateUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	if got := newTestGenerator(srv.URL).Generate(context.Background(), nil); got != MsgInvalidKey {
		t.Fatalf("expected %q, got %q", MsgInvalidKey, got)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	want := "AI error 500. Try again."
	if got := newTestGenerator(srv.URL).Generate(context.Background(), nil); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if got := newTestGenerator(srv.URL).Generate(context.Background(), nil); got != MsgUnavailable {
		t.Fatalf("expected %q, got %q", MsgUnavailable, got)
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{not json")
	}))
	defer srv.Close()

	if got := newTestGenerator(srv.URL).Generate(context.Background(), nil); got != MsgUnavailable {
		t.Fatalf("expected %q, got %q", MsgUnavailable, got)
	}
}

func TestGenerateEmptyCompletion(t *testing.T) {
	for _, body := range []string{`{"choices":[]}`, `{"choices":[{"message":{"content":"   "}}]}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		}))
		got := newTestGenerator(srv.URL).Generate(context.Background(), nil)
		srv.Close()
		if got != MsgEmptyReply {
			t.Fatalf("expected %q for body %s, got %q", MsgEmptyReply, body, got)
		}
	}
}
