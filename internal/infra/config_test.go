package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SCRIPT_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "dummy")
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_LOCALE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ScriptProvider != "gemini" {
		t.Fatalf("ScriptProvider = %q, want %q", cfg.ScriptProvider, "gemini")
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DefaultLocale != "id" {
		t.Fatalf("DefaultLocale = %q, want %q", cfg.DefaultLocale, "id")
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("GeminiModel = %q", cfg.GeminiModel)
	}
}

func TestLoadConfigRequiresProviderKey(t *testing.T) {
	t.Setenv("SCRIPT_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing GEMINI_API_KEY")
	}

	t.Setenv("SCRIPT_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("SCRIPT_PROVIDER", "llama-lokal")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoadConfigParsesCORSList(t *testing.T) {
	t.Setenv("SCRIPT_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "dummy")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("CORSAllowedOrigins = %#v, want 2 entries", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://staging.example.com" {
		t.Fatalf("second origin = %q", cfg.CORSAllowedOrigins[1])
	}
}
