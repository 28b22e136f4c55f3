package apiv1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalexhq/chatgate/ai"
	"github.com/scalexhq/chatgate/ai/metrics"
	"github.com/scalexhq/chatgate/ai/summary"
	"github.com/scalexhq/chatgate/internal/profile"
	"github.com/scalexhq/chatgate/store"
)

// newTestAPI wires a full service with no provider credentials, so every
// chat resolves deterministically to the mock responder.
func newTestAPI(t *testing.T) (*echo.Echo, *store.Store) {
	t.Helper()

	testProfile := &profile.Profile{Mode: "dev", Port: 3000, DefaultProvider: "gemini"}
	testStore := store.New(testProfile)
	exporter := metrics.NewPrometheusExporter(metrics.DefaultConfig())
	dispatcher := ai.NewDispatcher(ai.NewConfigFromProfile(testProfile), exporter)
	summarizer := summary.NewSummarizer(dispatcher, testStore)

	e := echo.New()
	NewAPIV1Service(testProfile, testStore, dispatcher, summarizer, exporter).RegisterRoutes(e)
	return e, testStore
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, e *echo.Echo, email string) {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/signup", `{"email":"`+email+`","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestHealthReportsUnconfiguredProviders(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "OK", body["status"])

	services := body["services"].(map[string]any)
	assert.Equal(t, "Not configured", services["gemini"])
	assert.Equal(t, "Not configured", services["groq"])
	assert.Equal(t, "Not configured", services["claude"])
}

func TestModelsListsProvidersWithDefault(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/models", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "gemini", body["default"])

	models := body["models"].([]any)
	require.Len(t, models, 3)
	first := models[0].(map[string]any)
	assert.Equal(t, "gemini", first["id"])
	assert.Equal(t, false, first["available"])
	assert.Equal(t, "Free tier - 60 requests per minute", first["description"])
}

func TestSignupValidation(t *testing.T) {
	e, _ := newTestAPI(t)

	for _, tc := range []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"email":"a@example.com"}`, "Email and password are required"},
		{"bad email", `{"email":"nope","password":"secret123"}`, "Invalid email format"},
		{"short password", `{"email":"a@example.com","password":"abc"}`, "Password must be at least 6 characters"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodPost, "/api/auth/signup", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, decode(t, rec)["error"])
		})
	}
}

func TestSignupAndDuplicate(t *testing.T) {
	e, _ := newTestAPI(t)
	signup(t, e, "a@example.com")

	rec := doJSON(e, http.MethodPost, "/api/auth/signup", `{"email":"a@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decode(t, rec)["error"])
}

func TestLogin(t *testing.T) {
	e, _ := newTestAPI(t)
	signup(t, e, "a@example.com")

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", decode(t, rec)["message"])

	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])

	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"ghost@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatRequiresMessage(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Message is required", decode(t, rec)["error"])
}

func TestChatDegradesToMockWithoutCredentials(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"hello","model":"gemini"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "mock", body["model"])
	assert.Contains(t, body["message"], "Gemini not configured")
	assert.Contains(t, body["message"], `"hello`)
	assert.Equal(t, "en", body["language"])
	assert.Contains(t, body["responseTime"], "ms")
}

func TestChatAppendsHistoryForKnownUser(t *testing.T) {
	e, testStore := newTestAPI(t)
	signup(t, e, "a@example.com")

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"hello","email":"a@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	history, err := testStore.ListHistory("a@example.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].UserMessage)
	assert.Equal(t, "mock", history[0].Provider)
}

func TestChatSkipsHistoryForUnknownEmail(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"hello","email":"ghost@example.com"}`)

	// An unknown email never fails the chat itself.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatArabicMockReply(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"مرحبا","language":"ar"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Contains(t, body["message"], "رد تجريبي")
	assert.Equal(t, "ar", body["language"])
}

func TestHistoryEndpoints(t *testing.T) {
	e, _ := newTestAPI(t)
	signup(t, e, "a@example.com")

	rec := doJSON(e, http.MethodPost, "/api/history", `{"email":"a@example.com","userMessage":"q","aiResponse":"a","model":"gemini"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/history/a@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "a@example.com", body["user"])

	entries := body["history"].([]any)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "q", entry["userMessage"])
	assert.Equal(t, "a", entry["aiResponse"])
	assert.Equal(t, "gemini", entry["model"])

	rec = doJSON(e, http.MethodDelete, "/api/history/a@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/history/a@example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decode(t, rec)["count"])
}

func TestHistoryUnknownUser(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/history/ghost@example.com", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode(t, rec)["error"])
}

func TestSaveHistoryValidation(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/history", `{"email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryRequiresSource(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/summary", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Either email or messages array is required", decode(t, rec)["error"])
}

func TestSummaryUnknownUser(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/summary", `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummaryEmptyHistory(t *testing.T) {
	e, _ := newTestAPI(t)
	signup(t, e, "a@example.com")

	rec := doJSON(e, http.MethodPost, "/api/summary", `{"email":"a@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "No chat history available yet.", body["summary"])
	assert.Equal(t, float64(0), body["messageCount"])
}

func TestSummaryHeuristicFromMessages(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/summary", `{"messages":["I need help with code","how does this work"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "heuristic", body["model"])
	assert.Equal(t, float64(2), body["messageCount"])
	assert.Contains(t, body["summary"], "Based on 2 messages")

	generatedAt, err := time.Parse(time.RFC3339, body["generatedAt"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), generatedAt, time.Minute)
}

func TestTranslateEchoesWithoutProviders(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/translate", `{"text":"hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "hello", body["original"])
	assert.Equal(t, "auto", body["from"])
	assert.Equal(t, "ar", body["to"])
	assert.Equal(t, "[Translation: auto → ar] hello", body["translated_text"])
}

func TestTranslateRequiresText(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/translate", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIndexListsEndpoints(t *testing.T) {
	e, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ScaleX Chatbot API", body["message"])
	endpoints := body["endpoints"].(map[string]any)
	assert.Contains(t, endpoints, "POST /api/chat")
	assert.Contains(t, endpoints, "POST /api/summary")
}

func TestMetricsEndpoint(t *testing.T) {
	e, _ := newTestAPI(t)

	// Drive one degraded chat so counters are non-empty.
	doJSON(e, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	rec := doJSON(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chatgate_ai_mock_degradations_total")
}
