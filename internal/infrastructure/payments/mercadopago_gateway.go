package payments

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidGatewayPaymentID = errors.New("invalid gateway payment id")
var ErrMockPaymentNotFound = errors.New("mock payment not found")

const currencyARS = "ARS"

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	logg        *logrus.Logger

	mockMode     bool
	mu           sync.Mutex
	mockPayments map[string]entities.GatewayPayment
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the SDK clients. In mock mode no network calls
// are made: preferences redirect straight to the success URL and the payment
// they create is reported as approved.
func NewMercadoPagoGateway(accessToken string, mockMode bool, logg *logrus.Logger) (*MercadoPagoGateway, error) {
	if mockMode {
		logg.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{logg: logg, mockMode: true, mockPayments: map[string]entities.GatewayPayment{}}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		logg.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logg.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	logg.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		logg:        logg,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req entities.PreferenceRequest) (entities.Preference, error) {
	if g != nil && g.mockMode {
		return g.mockCreatePreference(req)
	}
	if g == nil || g.preferences == nil {
		return entities.Preference{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.logg.WithFields(logrus.Fields{"title": req.Title, "unit_price": req.UnitPrice}).Info("[payment][gateway] create preference start")

	request := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      req.Title,
				Quantity:   1,
				UnitPrice:  req.UnitPrice,
				CurrencyID: currencyARS,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.FailureURL,
			Pending: req.PendingURL,
		},
		AutoReturn:        "approved",
		NotificationURL:   req.NotificationURL,
		ExternalReference: req.ExternalReference,
	}
	if req.PayerEmail != "" {
		request.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		g.logg.WithError(err).Error("[payment][gateway] sdk create preference failed")
		return entities.Preference{}, err
	}
	if resp == nil || resp.ID == "" {
		return entities.Preference{}, errors.New("mercado pago returned an empty preference")
	}
	g.logg.WithField("preference_id", resp.ID).Info("[payment][gateway] create preference success")

	return entities.Preference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.GatewayPayment{}, ErrInvalidGatewayPaymentID
	}
	if g != nil && g.mockMode {
		return g.mockGetPayment(paymentID)
	}
	if g == nil || g.payments == nil {
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.GatewayPayment{}, fmt.Errorf("%w: %s", ErrInvalidGatewayPaymentID, paymentID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logg.WithError(err).WithField("payment_id", paymentID).Error("[payment][gateway] sdk get payment failed")
		return entities.GatewayPayment{}, err
	}
	g.logg.WithFields(logrus.Fields{"payment_id": paymentID, "status": resp.Status}).Info("[payment][gateway] get payment success")

	return entities.GatewayPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		Amount:            resp.TransactionAmount,
		ExternalReference: resp.ExternalReference,
		PayerEmail:        resp.Payer.Email,
	}, nil
}

func (g *MercadoPagoGateway) mockCreatePreference(req entities.PreferenceRequest) (entities.Preference, error) {
	now := time.Now().UTC().UnixNano()
	prefID := "mock-pref-" + strconv.FormatInt(now, 10)
	paymentID := strconv.FormatInt(now, 10)

	g.mu.Lock()
	g.mockPayments[paymentID] = entities.GatewayPayment{
		ID:                paymentID,
		Status:            entities.GatewayStatusApproved,
		StatusDetail:      "accredited",
		Amount:            req.UnitPrice,
		ExternalReference: req.ExternalReference,
		PayerEmail:        req.PayerEmail,
	}
	g.mu.Unlock()

	q := url.Values{}
	q.Set("payment_id", paymentID)
	q.Set("status", entities.GatewayStatusApproved)
	q.Set("preference_id", prefID)
	initPoint := req.SuccessURL + "?" + q.Encode()

	g.logg.WithFields(logrus.Fields{"preference_id": prefID, "payment_id": paymentID}).Info("[payment][gateway] mock preference created")
	return entities.Preference{ID: prefID, InitPoint: initPoint, SandboxInitPoint: initPoint}, nil
}

func (g *MercadoPagoGateway) mockGetPayment(paymentID string) (entities.GatewayPayment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.mockPayments[paymentID]
	if !ok {
		return entities.GatewayPayment{}, fmt.Errorf("%w: %s", ErrMockPaymentNotFound, paymentID)
	}
	return p, nil
}
