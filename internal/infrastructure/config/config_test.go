package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("RENDER_EXTERNAL_URL", "https://traful.example.com/")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.BackendURL != "https://traful.example.com" {
		t.Fatalf("unexpected backend url: %q", cfg.BackendURL)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock mode from MERCADOPAGO_MOCK")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.PaywayTimeout != defaultPaywayTimeout {
		t.Fatalf("unexpected payway timeout: %v", cfg.PaywayTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PAYWAY_TIMEOUT_SECONDS", "3")
	t.Setenv("AIRTABLE_PAT", "pat")
	t.Setenv("AIRTABLE_BASE_ID", "app1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.PaywayTimeout != 3*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.AirtableConfigured() {
		t.Fatalf("expected airtable configured")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid PORT")
	}
}

func TestLoad_Ledger(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_ENDPOINT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LedgerConfigured() || cfg.LedgerRegion() != defaultAWSRegion {
		t.Fatalf("ledger should be off with default region, got %+v", cfg.DynamoDB)
	}

	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.LedgerConfigured() || cfg.DynamoDB.Endpoint != "http://dynamodb:8000" {
		t.Fatalf("expected ledger configured, got %+v", cfg.DynamoDB)
	}
}
