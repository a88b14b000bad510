package httpapi

import (
	"net/http"

	"github.com/shardulfunde/vidya/internal/quizgen"
)

type synthesizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (r *Router) handleSynthesize(w http.ResponseWriter, req *http.Request) {
	var payload synthesizeRequest
	if !decodeJSON(w, req, &payload) {
		return
	}

	if payload.Text == "" {
		http.Error(w, `{"error": "missing text"}`, http.StatusBadRequest)
		return
	}
	if !quizgen.ValidLanguage(payload.Language) {
		http.Error(w, `{"error": "language must be one of en, hi, mr"}`, http.StatusBadRequest)
		return
	}

	audio, err := r.tts.Synthesize(req.Context(), payload.Text, payload.Language)
	if err != nil {
		r.logger.Printf("tts: %v", err)
		captureError(req, err, "speech synthesis failed")
		http.Error(w, `{"error": "speech synthesis failed"}`, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}
