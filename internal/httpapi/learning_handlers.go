package httpapi

import (
	"net/http"

	"github.com/shardulfunde/vidya/internal/learnpath"
)

func (r *Router) handleGenerateLearningPath(w http.ResponseWriter, req *http.Request) {
	var payload learnpath.Request
	if !decodeJSON(w, req, &payload) {
		return
	}

	path, err := r.paths.BuildLearningPath(req.Context(), payload)
	if err != nil {
		r.respondError(w, req, err, "failed to generate learning path")
		return
	}
	writeJSON(w, http.StatusOK, path)
}

func (r *Router) handleGenerateTopicList(w http.ResponseWriter, req *http.Request) {
	var payload learnpath.Request
	if !decodeJSON(w, req, &payload) {
		return
	}

	topics, err := r.paths.PlanTopics(req.Context(), payload)
	if err != nil {
		r.respondError(w, req, err, "failed to generate topic list")
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

func (r *Router) handleGenerateTopicDetail(w http.ResponseWriter, req *http.Request) {
	var payload learnpath.TopicDetailRequest
	if !decodeJSON(w, req, &payload) {
		return
	}

	topic, err := r.paths.ExpandTopic(req.Context(), payload)
	if err != nil {
		r.respondError(w, req, err, "failed to generate topic detail")
		return
	}
	writeJSON(w, http.StatusOK, topic)
}

func (r *Router) handleStreamTopicDetail(w http.ResponseWriter, req *http.Request) {
	var payload learnpath.TopicDetailRequest
	if !decodeJSON(w, req, &payload) {
		return
	}

	events, err := r.paths.StreamTopicDetail(req.Context(), payload)
	if err != nil {
		r.respondError(w, req, err, "failed to start topic detail stream")
		return
	}

	sse, ok := newSSEWriter(w)
	if !ok {
		http.Error(w, `{"error": "streaming unsupported"}`, http.StatusInternalServerError)
		return
	}

	for ev := range events {
		sse.sendEvent(ev)
	}
}
