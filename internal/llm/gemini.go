package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiClient implements the Client interface using the Gemini
// generateContent API.
type GeminiClient struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey      string
	Model       string // e.g. "gemini-2.5-flash-lite"
	BaseURL     string // override for tests; defaults to the public API
	Temperature float64
	HTTPClient  *http.Client
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(cfg GeminiConfig) *GeminiClient {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = geminiAPIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GeminiClient{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: cfg.Temperature,
		httpClient:  httpClient,
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) newRequest(ctx context.Context, endpoint string, prompt string) (*http.Request, error) {
	req := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{Temperature: c.temperature},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:%s", c.baseURL, c.model, endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	return httpReq, nil
}

// Complete sends a prompt and returns the full text response.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	httpReq, err := c.newRequest(ctx, "generateContent", prompt)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &GenerationError{Provider: "gemini", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("API error: %s - %s", resp.Status, string(respBody)),
		}
	}

	var genResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", &GenerationError{Provider: "gemini", Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(genResp.Candidates) == 0 {
		return "", &GenerationError{Provider: "gemini", Err: fmt.Errorf("no candidates in response")}
	}

	var b strings.Builder
	for _, part := range genResp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}

// Stream sends a prompt and streams text deltas through the channel.
func (c *GeminiClient) Stream(ctx context.Context, prompt string) (<-chan string, error) {
	httpReq, err := c.newRequest(ctx, "streamGenerateContent?alt=sse", prompt)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &GenerationError{Provider: "gemini", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &GenerationError{
			Provider: "gemini",
			Err:      fmt.Errorf("API error: %s - %s", resp.Status, string(respBody)),
		}
	}

	ch := make(chan string, 100)

	go func() {
		defer close(ch)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()

			if !strings.HasPrefix(line, "data: ") {
				continue
			}

			var streamResp geminiResponse
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Candidates) == 0 {
				continue
			}
			for _, part := range streamResp.Candidates[0].Content.Parts {
				if part.Text == "" {
					continue
				}
				select {
				case <-ctx.Done():
					return
				case ch <- part.Text:
				}
			}
		}
	}()

	return ch, nil
}
