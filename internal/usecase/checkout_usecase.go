package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCheckoutRequest = errors.New("invalid checkout request")
	ErrLinkGatewayUnavailable = errors.New("payment link gateway unavailable")
)

// Routes of this service and the web client used to build gateway URLs.
const (
	PathPaymentWebhook = "/api/payment_webhook"
	PathPaywayCallback = "/api/payway/callback"
	PathFrontendExito  = "/exito"
)

// CheckoutInput is a purchase intent coming from the web client.
type CheckoutInput struct {
	Title     string
	UnitPrice float64
	Context   *entities.PaymentContext
}

// CheckoutURLs are the public base URLs of the web client and of this service.
type CheckoutURLs struct {
	FrontendURL string
	BackendURL  string
}

// SuccessURL is where payers land after an approved payment.
func (u CheckoutURLs) SuccessURL() string {
	return strings.TrimRight(u.FrontendURL, "/") + PathFrontendExito
}

// FailureURL is where payers land after a rejected or cancelled payment.
func (u CheckoutURLs) FailureURL() string {
	return strings.TrimRight(u.FrontendURL, "/") + "/?pago=fallido"
}

func (u CheckoutURLs) PendingURL() string {
	return strings.TrimRight(u.FrontendURL, "/") + "/?pago=pendiente"
}

// ICheckoutUseCase creates payment intents on the gateways. Nothing is persisted.
type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, in CheckoutInput) (entities.Preference, error)
	CreatePaywayLink(ctx context.Context, in CheckoutInput) (entities.PaymentLink, error)
}

type CheckoutUseCase struct {
	gateway     interfaces.IPaymentGateway
	linkGateway interfaces.ILinkGateway
	audit       *AuditLogger
	urls        CheckoutURLs
	logg        *logrus.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, linkGateway interfaces.ILinkGateway, audit *AuditLogger, urls CheckoutURLs, logg *logrus.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, linkGateway: linkGateway, audit: audit, urls: urls, logg: logg}
}

func (u *CheckoutUseCase) CreatePreference(ctx context.Context, in CheckoutInput) (entities.Preference, error) {
	ref, err := u.validate(in)
	if err != nil {
		return entities.Preference{}, err
	}
	if u.gateway == nil {
		return entities.Preference{}, ErrGatewayNotConfigured
	}

	u.logg.WithFields(logrus.Fields{"title": in.Title, "unit_price": in.UnitPrice, "type": in.Context.Label()}).Info("[checkout][usecase] create preference start")
	pref, err := u.gateway.CreatePreference(ctx, entities.PreferenceRequest{
		Title:             strings.TrimSpace(in.Title),
		UnitPrice:         in.UnitPrice,
		ExternalReference: ref,
		PayerEmail:        in.Context.Email,
		SuccessURL:        u.urls.SuccessURL(),
		FailureURL:        u.urls.FailureURL(),
		PendingURL:        u.urls.PendingURL(),
		NotificationURL:   strings.TrimRight(u.urls.BackendURL, "/") + PathPaymentWebhook,
	})
	if err != nil {
		u.audit.Error(ctx, SourceCheckout, "Error creando preferencia", in.Context.RecordID, map[string]any{"error": err.Error()})
		return entities.Preference{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	u.audit.Info(ctx, SourceCheckout, "Preferencia creada", pref.ID, map[string]any{
		"type":   in.Context.Label(),
		"amount": in.UnitPrice,
	})
	return pref, nil
}

func (u *CheckoutUseCase) CreatePaywayLink(ctx context.Context, in CheckoutInput) (entities.PaymentLink, error) {
	ref, err := u.validate(in)
	if err != nil {
		return entities.PaymentLink{}, err
	}
	if u.linkGateway == nil {
		return entities.PaymentLink{}, ErrGatewayNotConfigured
	}

	link, err := u.linkGateway.CreatePaymentLink(ctx, entities.PaymentLinkRequest{
		Description:       strings.TrimSpace(in.Title),
		Amount:            in.UnitPrice,
		ExternalReference: ref,
		PayerEmail:        in.Context.Email,
		CallbackURL:       strings.TrimRight(u.urls.BackendURL, "/") + PathPaywayCallback,
		SuccessURL:        u.urls.SuccessURL(),
		FailureURL:        u.urls.FailureURL(),
	})
	if err != nil {
		u.audit.Error(ctx, SourceCheckout, "Error creando link de Payway", in.Context.RecordID, map[string]any{"error": err.Error()})
		return entities.PaymentLink{}, fmt.Errorf("%w: %v", ErrLinkGatewayUnavailable, err)
	}

	u.audit.Info(ctx, SourceCheckout, "Link de Payway creado", link.ID, map[string]any{
		"type":   in.Context.Label(),
		"amount": in.UnitPrice,
	})
	return link, nil
}

// validate checks the request and returns the serialized context.
func (u *CheckoutUseCase) validate(in CheckoutInput) (string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidCheckoutRequest)
	}
	if in.UnitPrice <= 0 {
		return "", fmt.Errorf("%w: unit_price must be positive", ErrInvalidCheckoutRequest)
	}
	if in.Context == nil {
		return "", fmt.Errorf("%w: items_to_pay is required", ErrInvalidCheckoutRequest)
	}
	ref, err := in.Context.Encode()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCheckoutRequest, err)
	}
	return ref, nil
}
