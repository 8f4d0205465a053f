package usecase

import (
	"context"
	"errors"
	"testing"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/infrastructure/logger"
	mock_interfaces "traful_pagos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testURLs = CheckoutURLs{FrontendURL: "http://front", BackendURL: "http://back/"}

func loteCheckoutContext() *entities.PaymentContext {
	return &entities.PaymentContext{
		RecordID:   "recXXX",
		ItemType:   entities.ItemTypeLote,
		Email:      "vecino@example.com",
		Debt:       true,
		DebtAmount: 1500,
	}
}

func TestCheckoutUseCase_CreatePreference(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, testURLs, logger.Discard())
		cases := []CheckoutInput{
			{Title: "", UnitPrice: 10, Context: loteCheckoutContext()},
			{Title: "Pago", UnitPrice: 0, Context: loteCheckoutContext()},
			{Title: "Pago", UnitPrice: 10},
			{Title: "Pago", UnitPrice: 10, Context: &entities.PaymentContext{ItemType: entities.ItemTypeLote}},
		}
		for i, in := range cases {
			if _, err := uc.CreatePreference(context.Background(), in); !errors.Is(err, ErrInvalidCheckoutRequest) {
				t.Fatalf("case %d: expected ErrInvalidCheckoutRequest, got %v", i, err)
			}
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, testURLs, logger.Discard())
		_, err := uc.CreatePreference(context.Background(), CheckoutInput{Title: "Pago", UnitPrice: 10, Context: loteCheckoutContext()})
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gw, nil, nil, testURLs, logger.Discard())

		gw.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PreferenceRequest) (entities.Preference, error) {
			if req.NotificationURL != "http://back/api/payment_webhook" {
				t.Fatalf("unexpected notification url: %s", req.NotificationURL)
			}
			if req.SuccessURL != "http://front/exito" || req.PayerEmail != "vecino@example.com" {
				t.Fatalf("unexpected request: %+v", req)
			}
			pc, err := entities.ParsePaymentContext(req.ExternalReference)
			if err != nil || pc.RecordID != "recXXX" || !pc.Debt || pc.DebtAmount != 1500 {
				t.Fatalf("context did not round trip: %+v err=%v", pc, err)
			}
			return entities.Preference{ID: "pref-1", InitPoint: "https://mp/init"}, nil
		})

		pref, err := uc.CreatePreference(context.Background(), CheckoutInput{Title: "Pago de Tasas", UnitPrice: 1500, Context: loteCheckoutContext()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pref.ID != "pref-1" {
			t.Fatalf("unexpected preference: %+v", pref)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(gw, nil, nil, testURLs, logger.Discard())

		gw.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.Preference{}, errors.New("401"))

		_, err := uc.CreatePreference(context.Background(), CheckoutInput{Title: "Pago", UnitPrice: 10, Context: loteCheckoutContext()})
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestCheckoutUseCase_CreatePaywayLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_interfaces.NewMockILinkGateway(ctrl)
	uc := NewCheckoutUseCase(nil, gw, nil, testURLs, logger.Discard())

	gw.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error) {
		if req.CallbackURL != "http://back/api/payway/callback" || req.Amount != 1500 {
			t.Fatalf("unexpected request: %+v", req)
		}
		return entities.PaymentLink{ID: "pw-1", URL: "https://payway/link"}, nil
	})

	link, err := uc.CreatePaywayLink(context.Background(), CheckoutInput{Title: "Pago", UnitPrice: 1500, Context: loteCheckoutContext()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.URL != "https://payway/link" {
		t.Fatalf("unexpected link: %+v", link)
	}
}
