package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrPaywayGatewayNotConfigured = errors.New("payway gateway not configured")

const paywayLinkPath = "/checkout-payment-button/link"

// PaywayGateway creates hosted payment links on Payway (Decidir).
type PaywayGateway struct {
	httpClient *http.Client
	baseURL    string
	privateKey string
	siteID     string
	logg       *logrus.Logger
}

var _ interfaces.ILinkGateway = (*PaywayGateway)(nil)

func NewPaywayGateway(httpClient *http.Client, baseURL, privateKey, siteID string, logg *logrus.Logger) (*PaywayGateway, error) {
	if strings.TrimSpace(privateKey) == "" || strings.TrimSpace(siteID) == "" {
		return nil, ErrPaywayGatewayNotConfigured
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &PaywayGateway{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		privateKey: privateKey,
		siteID:     siteID,
		logg:       logg,
	}, nil
}

type paywayProduct struct {
	ID          int     `json:"id"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

type paywayLinkRequest struct {
	OriginPlatform     string          `json:"origin_platform"`
	PaymentDescription string          `json:"payment_description"`
	Currency           string          `json:"currency"`
	Products           []paywayProduct `json:"products"`
	TotalPrice         float64         `json:"total_price"`
	Site               string          `json:"site"`
	SuccessURL         string          `json:"success_url"`
	CancelURL          string          `json:"cancel_url"`
	NotificationsURL   string          `json:"notifications_url"`
	Installments       []int           `json:"installments"`
	PlanGateway        string          `json:"plan_gateway"`
	ExternalReference  string          `json:"site_transaction_id,omitempty"`
	PayerEmail         string          `json:"email,omitempty"`
}

type paywayLinkResponse struct {
	ID          string `json:"id"`
	Hash        string `json:"hash"`
	PaymentLink string `json:"payment_link"`
}

func (g *PaywayGateway) CreatePaymentLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error) {
	if g == nil {
		return entities.PaymentLink{}, ErrPaywayGatewayNotConfigured
	}

	total, _ := decimal.NewFromFloat(req.Amount).Round(2).Float64()
	payload := paywayLinkRequest{
		OriginPlatform:     "SDK-Go",
		PaymentDescription: req.Description,
		Currency:           currencyARS,
		Products: []paywayProduct{
			{ID: 1, Value: total, Description: req.Description, Quantity: 1},
		},
		TotalPrice:        total,
		Site:              g.siteID,
		SuccessURL:        req.SuccessURL,
		CancelURL:         req.FailureURL,
		NotificationsURL:  req.CallbackURL,
		Installments:      []int{1},
		PlanGateway:       "NACIONAL",
		ExternalReference: req.ExternalReference,
		PayerEmail:        req.PayerEmail,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.PaymentLink{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+paywayLinkPath, bytes.NewReader(body))
	if err != nil {
		return entities.PaymentLink{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", g.privateKey)

	g.logg.WithField("amount", total).Info("[payway][gateway] create link start")
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		g.logg.WithError(err).Error("[payway][gateway] request failed")
		return entities.PaymentLink{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		g.logg.WithField("status", resp.StatusCode).Error("[payway][gateway] unexpected status")
		return entities.PaymentLink{}, fmt.Errorf("payway: unexpected status %s", resp.Status)
	}

	var apiResp paywayLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return entities.PaymentLink{}, err
	}
	if apiResp.PaymentLink == "" {
		return entities.PaymentLink{}, errors.New("payway: response without payment_link")
	}

	id := apiResp.ID
	if id == "" {
		id = apiResp.Hash
	}
	g.logg.WithField("link_id", id).Info("[payway][gateway] create link success")
	return entities.PaymentLink{ID: id, URL: apiResp.PaymentLink}, nil
}
