package request

import (
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase"
)

// CheckoutRequest is sent by the payment flow of the web client.
// `items_to_pay` is the payment context that travels through the gateway.
type CheckoutRequest struct {
	Title      string                   `json:"title"`
	UnitPrice  Amount                   `json:"unit_price"`
	ItemsToPay *entities.PaymentContext `json:"items_to_pay"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Title:     strings.TrimSpace(r.Title),
		UnitPrice: r.UnitPrice.Float(),
		Context:   r.ItemsToPay,
	}
}

// SimulatePaymentRequest drives the debug reconciliation endpoint.
type SimulatePaymentRequest struct {
	ItemsToPay *entities.PaymentContext `json:"items_to_pay" binding:"required"`
	Amount     Amount                   `json:"amount"`
	Status     string                   `json:"status"`
}

// WebhookNotification is the body Mercado Pago posts to the notification URL.
// Older notifications only carry `topic` and `id` as query parameters.
type WebhookNotification struct {
	Type   string `json:"type"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Data   struct {
		ID FlexibleID `json:"id"`
	} `json:"data"`
}

// Resolve picks the event type and payment id from the body, falling back to
// the query parameters.
func (n WebhookNotification) Resolve(query func(string) string) (eventType, paymentID string) {
	eventType = firstNonEmpty(n.Type, n.Topic, query("type"), query("topic"))
	paymentID = firstNonEmpty(string(n.Data.ID), query("data.id"), query("id"))
	if eventType == "" && strings.HasPrefix(n.Action, "payment.") {
		eventType = "payment"
	}
	return eventType, paymentID
}

// SendReceiptRequest accepts both keys used by the web client.
type SendReceiptRequest struct {
	RecordID          string `json:"record_id"`
	HistorialRecordID string `json:"historial_record_id"`
	Email             string `json:"email"`
}

func (r SendReceiptRequest) ResolveHistoryID() string {
	return firstNonEmpty(r.HistorialRecordID, r.RecordID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
