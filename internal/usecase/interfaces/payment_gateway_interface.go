package interfaces

import (
	"context"

	"traful_pagos/internal/domain/entities"
)

// IPaymentGateway abstracts the hosted-checkout provider (Mercado Pago).
//
// The purchase intent travels opaquely in PreferenceRequest.ExternalReference
// and is recovered from GatewayPayment.ExternalReference when the webhook fires.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
}

// ILinkGateway abstracts the legacy payment-link provider (Payway).
type ILinkGateway interface {
	CreatePaymentLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error)
}
