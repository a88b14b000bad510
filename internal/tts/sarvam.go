package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

const sarvamAPIURL = "https://api.sarvam.ai/text-to-speech"

// languageCodes maps supported language codes to Sarvam locale codes.
var languageCodes = map[string]string{
	"en": "en-IN",
	"hi": "hi-IN",
	"mr": "mr-IN",
}

// SarvamClient implements the Client interface using Sarvam's TTS API.
type SarvamClient struct {
	apiKey     string
	model      string
	speaker    string
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// SarvamConfig holds configuration for the Sarvam client.
type SarvamConfig struct {
	APIKey     string
	Model      string // e.g. "bulbul:v2"
	Speaker    string // e.g. "anushka"
	BaseURL    string // override for tests; defaults to the public API
	HTTPClient *http.Client
	Logger     *log.Logger
}

// NewSarvamClient creates a new Sarvam client.
func NewSarvamClient(cfg SarvamConfig) *SarvamClient {
	model := cfg.Model
	if model == "" {
		model = "bulbul:v2"
	}
	speaker := cfg.Speaker
	if speaker == "" {
		speaker = "anushka"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = sarvamAPIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &SarvamClient{
		apiKey:     cfg.APIKey,
		model:      model,
		speaker:    speaker,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ttsRequest represents a Sarvam TTS request.
type ttsRequest struct {
	Text               string `json:"text"`
	TargetLanguageCode string `json:"target_language_code"`
	Model              string `json:"model"`
	Speaker            string `json:"speaker"`
}

// ttsResponse covers the provider's response shape, which has carried the
// audio under both a plural and a singular key across API versions.
type ttsResponse struct {
	Audios []string `json:"audios"`
	Audio  string   `json:"audio"`
}

// audioPayload normalizes the provider's response shape once, at the
// boundary, so callers never inspect it.
func (r *ttsResponse) audioPayload() string {
	if len(r.Audios) > 0 {
		return r.Audios[0]
	}
	return r.Audio
}

// Synthesize converts text to speech. The text is cleaned, chunked on word
// boundaries, synthesized chunk by chunk, and the per-chunk WAV payloads
// are stitched into one container. A failed chunk is dropped; an error is
// returned only when no chunk produced audio.
func (c *SarvamClient) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	chunks := ChunkText(CleanText(text), chunkWidth)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no speakable text")
	}

	var segments [][]byte
	for i, chunk := range chunks {
		audio, err := c.synthesizeChunk(ctx, chunk, language)
		if err != nil {
			c.logger.Printf("tts: chunk %d/%d failed: %v", i+1, len(chunks), err)
			continue
		}
		segments = append(segments, audio)
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("no audio segments were generated")
	}
	return CombineWAV(segments), nil
}

func (c *SarvamClient) synthesizeChunk(ctx context.Context, text, language string) ([]byte, error) {
	code, ok := languageCodes[language]
	if !ok {
		code = languageCodes["en"]
	}

	req := ttsRequest{
		Text:               text,
		TargetLanguageCode: code,
		Model:              c.model,
		Speaker:            c.speaker,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-subscription-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Sarvam API error: %s - %s", resp.Status, string(respBody))
	}

	var ttsResp ttsResponse
	if err := json.NewDecoder(resp.Body).Decode(&ttsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	payload := ttsResp.audioPayload()
	if payload == "" {
		return nil, fmt.Errorf("no audio in response")
	}

	audio, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}
	return audio, nil
}
