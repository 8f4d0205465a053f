package handlers

import (
	"errors"
	"net/http"

	request "traful_pagos/internal/adapter/http/dto/request"
	response "traful_pagos/internal/adapter/http/dto/response"
	"traful_pagos/internal/usecase"
	"traful_pagos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidCheckoutPayload   = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Datos de pago inválidos", http.StatusBadRequest)
	errInvalidSimulationPayload = pkg.NewDomainErrorSimple("INVALID_SIMULATION_INPUT", "Datos de simulación inválidos", http.StatusBadRequest)
)

// PaymentHandler exposes the checkout endpoints and the gateway callbacks.
type PaymentHandler struct {
	checkout       usecase.ICheckoutUseCase
	reconciliation usecase.IReconciliationUseCase
	urls           usecase.CheckoutURLs
	logg           *logrus.Logger
}

func NewPaymentHandler(checkout usecase.ICheckoutUseCase, reconciliation usecase.IReconciliationUseCase, urls usecase.CheckoutURLs, logg *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{checkout: checkout, reconciliation: reconciliation, urls: urls, logg: logg}
}

// CreatePreference creates a Mercado Pago checkout for the selected items.
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	pref, err := h.checkout.CreatePreference(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPreference(pref))
}

// CreatePaywayLink creates a payment link on the legacy gateway.
func (h *PaymentHandler) CreatePaywayLink(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	link, err := h.checkout.CreatePaywayLink(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentLink(link))
}

// PaymentWebhook receives Mercado Pago notifications.
//
// The gateway retries on non-2xx answers, so only a failed payment lookup is
// reported as an error. Malformed bodies fall back to the query parameters.
func (h *PaymentHandler) PaymentWebhook(c *gin.Context) {
	var payload request.WebhookNotification
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logg.WithError(err).Debug("[payment][handler] webhook without json body")
	}
	eventType, paymentID := payload.Resolve(c.Query)

	result, err := h.reconciliation.HandleNotification(c.Request.Context(), eventType, paymentID)
	if err != nil {
		if errors.Is(err, usecase.ErrGatewayUnavailable) || errors.Is(err, usecase.ErrGatewayNotConfigured) {
			appErr := pkg.NewDomainError("GATEWAY_UNAVAILABLE", "No se pudo consultar el pago", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.logg.WithError(err).WithField("payment_id", paymentID).Error("[payment][handler] webhook processing failed")
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PaywayCallback logs the legacy gateway form post and sends the payer back
// to the web client.
func (h *PaymentHandler) PaywayCallback(c *gin.Context) {
	form := map[string]string{}
	if err := c.Request.ParseForm(); err != nil {
		h.logg.WithError(err).Warn("[payment][handler] payway callback with unreadable form")
	}
	for k, v := range c.Request.Form {
		if len(v) > 0 {
			form[k] = v[0]
		}
	}

	if h.reconciliation.RecordLegacyCallback(c.Request.Context(), form) {
		c.Redirect(http.StatusFound, h.urls.SuccessURL())
		return
	}
	c.Redirect(http.StatusFound, h.urls.FailureURL())
}

// SimulatePayment runs the reconciliation pipeline with a synthetic payment.
func (h *PaymentHandler) SimulatePayment(c *gin.Context) {
	var payload request.SimulatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ItemsToPay == nil {
		c.JSON(errInvalidSimulationPayload.HTTPStatus, errInvalidSimulationPayload.ToHTTPError())
		return
	}

	result, err := h.reconciliation.Simulate(c.Request.Context(), *payload.ItemsToPay, payload.Amount.Float(), payload.Status)
	if err != nil {
		appErr := mapSimulationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Datos de pago inválidos", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Pasarela de pago no configurada", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrGatewayUnavailable), errors.Is(err, usecase.ErrLinkGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "No se pudo crear el pago", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
	}
}

func mapSimulationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDebugDisabled):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Recurso no encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSimulation):
		return pkg.NewDomainError("INVALID_REQUEST", "Datos de simulación inválidos", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
	}
}
