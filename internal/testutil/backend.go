// Package testutil provides an in-process fake of the flourish backend for
// tests that need real HTTP round trips: REST endpoints, a cookie session and
// the insight event stream.
package testutil

import (
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/flourish-client/internal/utils"
	"github.com/MKhiriev/flourish-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// SessionCookie is the name of the session cookie the backend issues.
const SessionCookie = "flourish_session"

// GeneratedHolisticJSON is stored under the holistic key by a successful
// holistic generation.
const GeneratedHolisticJSON = `{"inspirational_paragraph":"Small steps add up.",` +
	`"habit":{"name":"Look at the whole week","description":"Review every dimension on Sunday","rationale":"Patterns show across days"},` +
	`"contents":[{"name":"Weekly review","type":"practice"}]}`

type event struct {
	name string
	data string
}

// Backend is a fake flourish backend served by httptest.
type Backend struct {
	mu          sync.Mutex
	questions   models.QuestionSet
	insights    models.InsightSet
	userID      string
	generateOK  bool
	submissions []models.SubmitResponsesRequest
	resets      int
	requestIDs  []string
	failures    map[string]int
	streams     int

	events    chan event
	connected chan struct{}
	done      chan struct{}

	server *httptest.Server
}

// NewBackend starts a backend that is shut down when t finishes.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		questions: models.QuestionSet{},
		insights:  models.InsightSet{},
		userID:    uuid.NewString(),
		failures:  map[string]int{},
		events:    make(chan event, 16),
		connected: make(chan struct{}, 16),
		done:      make(chan struct{}),
	}
	b.server = httptest.NewServer(b.routes())

	t.Cleanup(func() {
		close(b.done)
		b.server.Close()
	})

	return b
}

func (b *Backend) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(b.withSession)
	router.Use(b.withFailures)

	router.Route("/v1", func(r chi.Router) {
		r.Get("/questions", b.getQuestions)
		r.Post("/responses", b.postResponses)
		r.Get("/insights/llm", b.getInsights)
		r.Get("/insights/llm/generate/holistic", b.generateHolistic)
		r.Get("/insights/stream", b.stream)
		r.Get("/user/id", b.getUserID)
		r.Get("/user/reset", b.resetUser)
	})

	return router
}

// URL is the API base address.
func (b *Backend) URL() string {
	return b.server.URL
}

func (b *Backend) SetQuestions(q models.QuestionSet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.questions = q
}

func (b *Backend) SetInsights(set models.InsightSet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.insights = maps.Clone(set)
}

func (b *Backend) SetGenerateResult(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generateOK = success
}

func (b *Backend) UserID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.userID
}

// FailNext makes the next n requests to path answer with status 500.
func (b *Backend) FailNext(path string, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[path] = n
}

func (b *Backend) Submissions() []models.SubmitResponsesRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.SubmitResponsesRequest(nil), b.submissions...)
}

func (b *Backend) Resets() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.resets
}

// RequestIDs returns the X-Request-ID headers seen so far.
func (b *Backend) RequestIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requestIDs...)
}

// ActiveStreams returns the number of stream requests still being served.
func (b *Backend) ActiveStreams() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.streams
}

// Emit queues a named event for the open stream.
func (b *Backend) Emit(name, data string) {
	b.events <- event{name: name, data: data}
}

// WaitForStream blocks until a stream request arrives or timeout passes.
func (b *Backend) WaitForStream(t testing.TB, timeout time.Duration) {
	t.Helper()
	select {
	case <-b.connected:
	case <-time.After(timeout):
		t.Fatalf("no insight stream connected within %s", timeout)
	}
}

func (b *Backend) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(SessionCookie); err != nil {
			http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: uuid.NewString(), Path: "/"})
		}

		b.mu.Lock()
		if id := r.Header.Get("X-Request-ID"); id != "" {
			b.requestIDs = append(b.requestIDs, id)
		}
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *Backend) withFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		n := b.failures[r.URL.Path]
		if n > 0 {
			b.failures[r.URL.Path] = n - 1
		}
		b.mu.Unlock()

		if n > 0 {
			http.Error(w, "injected failure", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) getQuestions(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = utils.WriteJSON(w, b.questions, http.StatusOK)
}

func (b *Backend) postResponses(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || len(req.Answers) == 0 {
		http.Error(w, "invalid responses", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	b.submissions = append(b.submissions, req)
	b.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

func (b *Backend) getInsights(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = utils.WriteJSON(w, b.insights, http.StatusOK)
}

func (b *Backend) generateHolistic(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.generateOK {
		if b.insights == nil {
			b.insights = models.InsightSet{}
		}
		b.insights[models.HolisticInsightKey] = GeneratedHolisticJSON
	}
	_, _ = utils.WriteJSON(w, models.GenerateResult{Success: b.generateOK}, http.StatusOK)
}

func (b *Backend) getUserID(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = utils.WriteJSON(w, models.UserIDResponse{UID: b.userID}, http.StatusOK)
}

func (b *Backend) resetUser(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.resets++
	b.submissions = nil
	b.insights = models.InsightSet{}
	b.userID = uuid.NewString()
	b.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (b *Backend) stream(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.streams++
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		b.streams--
		b.mu.Unlock()
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(": connected\n\n")); err != nil {
		return
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	select {
	case b.connected <- struct{}{}:
	default:
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-b.done:
			return
		case e := <-b.events:
			if err := utils.WriteEvent(w, e.name, e.data); err != nil {
				return
			}
		}
	}
}
