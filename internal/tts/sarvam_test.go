package tts

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func testLogger() *log.Logger {
	return log.New(os.Stderr, "test ", log.LstdFlags)
}

func audioResponse(t *testing.T, samples []byte) string {
	t.Helper()
	wav := writeWAV(monoFormat, samples)
	return base64.StdEncoding.EncodeToString(wav)
}

func TestSynthesize(t *testing.T) {
	var gotReq ttsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if k := r.Header.Get("api-subscription-key"); k != "test-key" {
			t.Errorf("api-subscription-key = %q", k)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"audios": []string{audioResponse(t, []byte{1, 2, 3, 4})},
		})
	}))
	defer srv.Close()

	client := NewSarvamClient(SarvamConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Logger:  testLogger(),
	})

	audio, err := client.Synthesize(context.Background(), "**Hello** world", "hi")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if _, _, err := parseWAV(audio); err != nil {
		t.Errorf("output is not a WAV container: %v", err)
	}

	if gotReq.Text != "Hello world" {
		t.Errorf("request text = %q, want markdown stripped", gotReq.Text)
	}
	if gotReq.TargetLanguageCode != "hi-IN" {
		t.Errorf("target_language_code = %q, want hi-IN", gotReq.TargetLanguageCode)
	}
	if gotReq.Model != "bulbul:v2" || gotReq.Speaker != "anushka" {
		t.Errorf("model/speaker = %q/%q, want defaults", gotReq.Model, gotReq.Speaker)
	}
}

func TestSynthesizeSingularAudioKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"audio": audioResponse(t, []byte{7, 7}),
		})
	}))
	defer srv.Close()

	client := NewSarvamClient(SarvamConfig{APIKey: "k", BaseURL: srv.URL, Logger: testLogger()})

	audio, err := client.Synthesize(context.Background(), "hello", "en")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(audio) == 0 {
		t.Error("no audio returned for singular-key response")
	}
}

func TestSynthesizeDropsFailedChunk(t *testing.T) {
	// The second request fails; the synthesis must still succeed on the
	// remaining chunks.
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"audios": []string{audioResponse(t, []byte{1, 1})},
		})
	}))
	defer srv.Close()

	client := NewSarvamClient(SarvamConfig{APIKey: "k", BaseURL: srv.URL, Logger: testLogger()})

	long := strings.TrimSpace(strings.Repeat("word ", 300))
	audio, err := client.Synthesize(context.Background(), long, "en")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if calls < 3 {
		t.Fatalf("requests = %d, want one per chunk", calls)
	}
	if _, _, err := parseWAV(audio); err != nil {
		t.Errorf("output is not a WAV container: %v", err)
	}
}

func TestSynthesizeAllChunksFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewSarvamClient(SarvamConfig{APIKey: "k", BaseURL: srv.URL, Logger: testLogger()})

	_, err := client.Synthesize(context.Background(), "hello", "en")
	if err == nil {
		t.Fatal("Synthesize() should fail when every chunk fails")
	}
	if !strings.Contains(err.Error(), "no audio segments") {
		t.Errorf("error = %v", err)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	client := NewSarvamClient(SarvamConfig{APIKey: "k", Logger: testLogger()})
	if _, err := client.Synthesize(context.Background(), "  ** ** ", "en"); err == nil {
		t.Fatal("Synthesize() should fail for unspeakable text")
	}
}

func TestSynthesizeUnknownLanguageFallsBack(t *testing.T) {
	var gotCode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ttsRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotCode = req.TargetLanguageCode
		json.NewEncoder(w).Encode(map[string]any{
			"audios": []string{audioResponse(t, []byte{1, 1})},
		})
	}))
	defer srv.Close()

	client := NewSarvamClient(SarvamConfig{APIKey: "k", BaseURL: srv.URL, Logger: testLogger()})
	if _, err := client.Synthesize(context.Background(), "hello", "xx"); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if gotCode != "en-IN" {
		t.Errorf("target_language_code = %q, want the en-IN fallback", gotCode)
	}
}
