package app

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"HTTP_ADDR", "LOG_LEVEL", "SENTRY_DSN", "ENVIRONMENT",
		"CEREBRAS_API_KEY", "CEREBRAS_MODEL", "GEMINI_API_KEY", "GEMINI_MODEL",
		"SARVAM_API_KEY", "TTS_MODEL", "TTS_SPEAKER",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfigFromEnv()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.CerebrasModel != "qwen-3-235b-a22b-instruct-2507" {
		t.Errorf("CerebrasModel = %q", cfg.CerebrasModel)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-lite" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if cfg.TTSModel != "bulbul:v2" || cfg.TTSSpeaker != "anushka" {
		t.Errorf("TTS defaults = %q/%q", cfg.TTSModel, cfg.TTSSpeaker)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CEREBRAS_API_KEY", "key-1")
	t.Setenv("CEREBRAS_MODEL", "other-model")
	t.Setenv("ENVIRONMENT", "production")

	cfg := LoadConfigFromEnv()

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.CerebrasAPIKey != "key-1" {
		t.Errorf("CerebrasAPIKey = %q", cfg.CerebrasAPIKey)
	}
	if cfg.CerebrasModel != "other-model" {
		t.Errorf("CerebrasModel = %q", cfg.CerebrasModel)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q", cfg.Environment)
	}
}
