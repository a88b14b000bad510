package app

import "os"

type Config struct {
	HTTPAddr    string
	LogLevel    string
	SentryDSN   string
	Environment string

	// Text generation providers
	CerebrasAPIKey string
	CerebrasModel  string
	GeminiAPIKey   string
	GeminiModel    string

	// Speech synthesis
	SarvamAPIKey string
	TTSModel     string
	TTSSpeaker   string
}

func LoadConfigFromEnv() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		SentryDSN:   getenv("SENTRY_DSN", ""),
		Environment: getenv("ENVIRONMENT", "development"),

		// Text generation providers
		CerebrasAPIKey: getenv("CEREBRAS_API_KEY", ""),
		CerebrasModel:  getenv("CEREBRAS_MODEL", "qwen-3-235b-a22b-instruct-2507"),
		GeminiAPIKey:   getenv("GEMINI_API_KEY", ""),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-2.5-flash-lite"),

		// Speech synthesis
		SarvamAPIKey: getenv("SARVAM_API_KEY", ""),
		TTSModel:     getenv("TTS_MODEL", "bulbul:v2"),
		TTSSpeaker:   getenv("TTS_SPEAKER", "anushka"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
