package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const wsWriteWait = 5 * time.Second

func nowPlusWriteWait() time.Time { return time.Now().Add(wsWriteWait) }

// handleChatStream streams raw model tokens for a free-form question as
// server-sent events.
func (r *Router) handleChatStream(w http.ResponseWriter, req *http.Request) {
	question := req.URL.Query().Get("question")
	if question == "" {
		http.Error(w, `{"error": "missing question"}`, http.StatusBadRequest)
		return
	}

	tokens, err := r.chat.Stream(req.Context(), question)
	if err != nil {
		r.respondError(w, req, err, "generation failed")
		return
	}

	sse, ok := newSSEWriter(w)
	if !ok {
		http.Error(w, `{"error": "streaming unsupported"}`, http.StatusInternalServerError)
		return
	}

	for tok := range tokens {
		sse.send(tok)
	}
}

// handleChatWS streams the same chat tokens over a websocket: the client
// sends one question as a text message and receives one message per token.
func (r *Router) handleChatWS(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Printf("chat ws: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	_, question, err := conn.ReadMessage()
	if err != nil {
		return
	}
	if len(question) == 0 {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "empty question"), nowPlusWriteWait())
		return
	}

	tokens, err := r.chat.Stream(req.Context(), string(question))
	if err != nil {
		r.logger.Printf("chat ws: %v", err)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "generation failed"), nowPlusWriteWait())
		return
	}

	for tok := range tokens {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(tok)); err != nil {
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), nowPlusWriteWait())
}
