package payments

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/infrastructure/logger"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(" ", false, logger.Discard())
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, err := g.CreatePreference(context.Background(), entities.PreferenceRequest{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, err := g.GetPayment(context.Background(), "123"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestMercadoPagoGateway_MockRoundTrip(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ref := `{"v":1,"record_id":"rec1","item_type":"lote","deuda":true}`
	pref, err := g.CreatePreference(context.Background(), entities.PreferenceRequest{
		Title:             "Pago de Tasas",
		UnitPrice:         1500,
		ExternalReference: ref,
		SuccessURL:        "http://localhost:5176/success",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(pref.InitPoint, "http://localhost:5176/success?") {
		t.Fatalf("unexpected init point: %s", pref.InitPoint)
	}

	u, err := url.Parse(pref.InitPoint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	paymentID := u.Query().Get("payment_id")

	p, err := g.GetPayment(context.Background(), paymentID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Approved() || p.Amount != 1500 || p.ExternalReference != ref {
		t.Fatalf("unexpected payment: %+v", p)
	}

	if _, err := g.GetPayment(context.Background(), "999"); !errors.Is(err, ErrMockPaymentNotFound) {
		t.Fatalf("expected ErrMockPaymentNotFound, got %v", err)
	}
	if _, err := g.GetPayment(context.Background(), " "); !errors.Is(err, ErrInvalidGatewayPaymentID) {
		t.Fatalf("expected ErrInvalidGatewayPaymentID, got %v", err)
	}
}
