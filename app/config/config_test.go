package config

import "testing"

func TestParseDefaults(t *testing.T) {
	cfg, err := parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("base_url = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Enabled {
		t.Error("model path must be disabled by default")
	}
}

func TestParseEnabledRequiresToken(t *testing.T) {
	_, err := parse([]byte("openai:\n  enabled: true\n"))
	if err == nil {
		t.Fatal("expected validation error when enabled without token")
	}

	cfg, err := parse([]byte("openai:\n  enabled: true\n  token: sk-test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.OpenAI.Enabled || cfg.OpenAI.Token != "sk-test" {
		t.Fatalf("got %+v", cfg.OpenAI)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg, err := parse([]byte("server:\n  addr: \":9090\"\nopenai:\n  model: gpt-4o\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
}
