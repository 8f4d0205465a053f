package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "traful_pagos/internal/adapter/http/dto/request"
	response "traful_pagos/internal/adapter/http/dto/response"
	"traful_pagos/internal/usecase"
	"traful_pagos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReceiptPayload = pkg.NewDomainErrorSimple("INVALID_RECEIPT_INPUT", "Datos inválidos", http.StatusBadRequest)

type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// GetReceipt streams the PDF receipt of a history record.
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	historyID := c.Param("history_id")
	pdf, err := h.usecase.GetReceiptPDF(c.Request.Context(), historyID)
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=comprobante_%s.pdf", historyID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *ReceiptHandler) SendReceipt(c *gin.Context) {
	var payload request.SendReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReceiptPayload.HTTPStatus, errInvalidReceiptPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SendReceipt(c.Request.Context(), payload.ResolveHistoryID(), payload.Email); err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Message: "Comprobante enviado"})
}

func (h *ReceiptHandler) GetHistoryByPaymentID(c *gin.Context) {
	history, err := h.usecase.GetHistoryByPaymentID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHistory(history))
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHistoryID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Email inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHistoryNotFound):
		return pkg.NewDomainErrorSimple("HISTORY_NOT_FOUND", "Pago no encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceiptUnavailable):
		return pkg.NewDomainError("RECEIPT_UNAVAILABLE", "Comprobante no disponible", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrEmailUnavailable):
		return pkg.NewDomainError("EMAIL_UNAVAILABLE", "No se pudo enviar el email", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrStoreNotConfigured):
		return pkg.NewDomainError("STORE_NOT_CONFIGURED", "Base de datos no configurada", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
	}
}
