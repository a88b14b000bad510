package app

import (
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/shardulfunde/vidya/internal/feedback"
	"github.com/shardulfunde/vidya/internal/httpapi"
	"github.com/shardulfunde/vidya/internal/learnpath"
	"github.com/shardulfunde/vidya/internal/llm"
	"github.com/shardulfunde/vidya/internal/quizgen"
	"github.com/shardulfunde/vidya/internal/tts"
)

type App struct {
	cfg    Config
	logger *log.Logger
	router http.Handler
}

func New(cfg Config, logger *log.Logger) (*App, error) {
	if cfg.CerebrasAPIKey == "" {
		return nil, errors.New("CEREBRAS_API_KEY is required")
	}

	// Shared HTTP client with connection pooling. Keeps TCP connections
	// alive to reduce latency for repeated calls to the same providers.
	httpClient := &http.Client{
		Timeout: 120 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	generator := llm.NewCerebrasClient(llm.CerebrasConfig{
		APIKey:     cfg.CerebrasAPIKey,
		Model:      cfg.CerebrasModel,
		HTTPClient: httpClient,
	})

	// Feedback runs on Gemini when configured, mirroring the original
	// deployment; otherwise it shares the generation client.
	var feedbackClient llm.Client = generator
	if cfg.GeminiAPIKey != "" {
		feedbackClient = llm.NewGeminiClient(llm.GeminiConfig{
			APIKey:      cfg.GeminiAPIKey,
			Model:       cfg.GeminiModel,
			Temperature: 0.3,
			HTTPClient:  httpClient,
		})
	}

	speech := tts.NewSarvamClient(tts.SarvamConfig{
		APIKey:     cfg.SarvamAPIKey,
		Model:      cfg.TTSModel,
		Speaker:    cfg.TTSSpeaker,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	router := httpapi.NewRouter(logger, httpapi.Deps{
		Chat:     generator,
		Paths:    learnpath.NewService(generator, logger),
		Quizzes:  quizgen.NewService(generator, logger),
		Feedback: feedback.NewService(feedbackClient, logger),
		TTS:      speech,
	})

	return &App{
		cfg:    cfg,
		logger: logger,
		router: router,
	}, nil
}

func (a *App) Router() http.Handler {
	return a.router
}
