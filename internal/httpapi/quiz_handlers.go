package httpapi

import (
	"net/http"

	"github.com/shardulfunde/vidya/internal/feedback"
	"github.com/shardulfunde/vidya/internal/quizgen"
)

func (r *Router) handleGenerateTest(w http.ResponseWriter, req *http.Request) {
	var payload quizgen.Request
	if !decodeJSON(w, req, &payload) {
		return
	}

	test, err := r.quizzes.Generate(req.Context(), payload)
	if err != nil {
		r.respondError(w, req, err, "failed to generate test")
		return
	}
	writeJSON(w, http.StatusOK, test)
}

func (r *Router) handleAnalyzeTest(w http.ResponseWriter, req *http.Request) {
	var payload quizgen.AnalysisRequest
	if !decodeJSON(w, req, &payload) {
		return
	}

	analysis, err := r.quizzes.Analyze(req.Context(), payload)
	if err != nil {
		r.respondError(w, req, err, "failed to analyze test")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// handleQuizFeedback answers a generation failure with the documented
// placeholder payload instead of an error status: the "Error"
// understanding level is the failure signal clients key on.
func (r *Router) handleQuizFeedback(w http.ResponseWriter, req *http.Request) {
	var payload feedback.Request
	if !decodeJSON(w, req, &payload) {
		return
	}

	fb, err := r.feedback.Generate(req.Context(), payload)
	if err != nil {
		r.logger.Printf("quiz feedback: %v", err)
		captureError(req, err, "quiz feedback generation failed")
		writeJSON(w, http.StatusOK, feedback.Fallback(payload.Topic))
		return
	}
	writeJSON(w, http.StatusOK, fb)
}
