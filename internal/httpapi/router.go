package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/shardulfunde/vidya/internal/feedback"
	"github.com/shardulfunde/vidya/internal/genpipe"
	"github.com/shardulfunde/vidya/internal/learnpath"
	"github.com/shardulfunde/vidya/internal/llm"
	"github.com/shardulfunde/vidya/internal/quizgen"
	"github.com/shardulfunde/vidya/internal/tts"
)

// Deps holds the services the router dispatches to. Clients are injected
// explicitly so every handler is testable against mocks.
type Deps struct {
	Chat     llm.Client
	Paths    *learnpath.Service
	Quizzes  *quizgen.Service
	Feedback *feedback.Service
	TTS      tts.Client
}

type Router struct {
	logger   *log.Logger
	chat     llm.Client
	paths    *learnpath.Service
	quizzes  *quizgen.Service
	feedback *feedback.Service
	tts      tts.Client
	mux      *http.ServeMux
}

func NewRouter(logger *log.Logger, deps Deps) http.Handler {
	r := &Router{
		logger:   logger,
		chat:     deps.Chat,
		paths:    deps.Paths,
		quizzes:  deps.Quizzes,
		feedback: deps.Feedback,
		tts:      deps.TTS,
		mux:      http.NewServeMux(),
	}

	r.routes()
	return withSentryRecovery(withCORS(r.mux))
}

func (r *Router) routes() {
	// Health check
	r.mux.HandleFunc("GET /healthz", r.handleHealthz)

	// Chat streaming
	r.mux.HandleFunc("GET /chat/stream", r.handleChatStream)
	r.mux.HandleFunc("GET /chat/ws", r.handleChatWS)

	// Test generation and analysis
	r.mux.HandleFunc("POST /test/generate", r.handleGenerateTest)
	r.mux.HandleFunc("POST /test/analyze", r.handleAnalyzeTest)

	// Learning paths
	r.mux.HandleFunc("POST /learning_path/generate", r.handleGenerateLearningPath)
	r.mux.HandleFunc("POST /learning_path/generate/topic_list", r.handleGenerateTopicList)
	r.mux.HandleFunc("POST /learning_path/generate/topic_detail", r.handleGenerateTopicDetail)
	r.mux.HandleFunc("POST /learning_path/generate/topic_detail/stream", r.handleStreamTopicDetail)

	// Quiz feedback
	r.mux.HandleFunc("POST /quiz/feedback", r.handleQuizFeedback)

	// Speech synthesis
	r.mux.HandleFunc("POST /tts", r.handleSynthesize)
}

func (r *Router) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON parses the request body into v, answering 400 itself when the
// body is malformed.
func decodeJSON(w http.ResponseWriter, req *http.Request, v any) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return false
	}
	return true
}

// statusFor maps pipeline errors onto HTTP status codes: request-side
// failures are the caller's fault, everything else is an upstream failure.
func statusFor(err error) int {
	var ve *genpipe.ValidationError
	var me *genpipe.MissingFieldError
	if errors.As(err, &ve) || errors.As(err, &me) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

// respondError logs, reports and answers a handler failure.
func (r *Router) respondError(w http.ResponseWriter, req *http.Request, err error, msg string) {
	status := statusFor(err)
	r.logger.Printf("%s %s: %v", req.Method, req.URL.Path, err)
	if status >= http.StatusInternalServerError {
		captureError(req, err, msg)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func withSentryRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(req)
				hub.RecoverWithContext(req.Context(), err)
				hub.Flush(2 * time.Second)
				http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// captureError sends an error to Sentry with request context
func captureError(req *http.Request, err error, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(req)
		scope.SetExtra("message", msg)
		sentry.CaptureException(err)
	})
}
