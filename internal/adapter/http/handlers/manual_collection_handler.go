package handlers

import (
	"errors"
	"io"
	"net/http"

	request "traful_pagos/internal/adapter/http/dto/request"
	response "traful_pagos/internal/adapter/http/dto/response"
	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase"
	"traful_pagos/pkg"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds the multipart proof read; one extra byte lets the use
// case reject oversized files.
const maxUploadBytes = 10 << 20

var (
	errInvalidCollectionPayload = pkg.NewDomainErrorSimple("INVALID_COLLECTION_INPUT", "Datos del cobro inválidos", http.StatusBadRequest)
	errInvalidLinkPayload       = pkg.NewDomainErrorSimple("INVALID_LINK_INPUT", "Datos del link inválidos", http.StatusBadRequest)
	errMissingProofFile         = pkg.NewDomainErrorSimple("MISSING_FILE", "Falta el archivo del comprobante", http.StatusBadRequest)
)

// ManualCollectionHandler serves the staff collection forms and the payment
// link notifications.
type ManualCollectionHandler struct {
	collections   usecase.IManualCollectionUseCase
	notifications usecase.INotificationUseCase
}

func NewManualCollectionHandler(collections usecase.IManualCollectionUseCase, notifications usecase.INotificationUseCase) *ManualCollectionHandler {
	return &ManualCollectionHandler{collections: collections, notifications: notifications}
}

func (h *ManualCollectionHandler) RegisterRecaudacion(c *gin.Context) {
	h.register(c, entities.ManualKindRecaudacion)
}

func (h *ManualCollectionHandler) RegisterPatente(c *gin.Context) {
	h.register(c, entities.ManualKindPatenteManual)
}

func (h *ManualCollectionHandler) RegisterPlanPago(c *gin.Context) {
	h.register(c, entities.ManualKindPlanPago)
}

func (h *ManualCollectionHandler) register(c *gin.Context, kind entities.ManualKind) {
	var payload request.ManualCollectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCollectionPayload.HTTPStatus, errInvalidCollectionPayload.ToHTTPError())
		return
	}

	result, err := h.collections.Register(c.Request.Context(), kind, payload.ToInput())
	if err != nil {
		appErr := mapManualCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromManualCollectionResult(result))
}

func (h *ManualCollectionHandler) SendPaymentLink(c *gin.Context) {
	var payload request.SendPaymentLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLinkPayload.HTTPStatus, errInvalidLinkPayload.ToHTTPError())
		return
	}

	if err := h.notifications.SendPaymentLink(c.Request.Context(), payload.ToInput()); err != nil {
		appErr := mapManualCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Message: "Link enviado"})
}

// UploadProof accepts the multipart proof of payment (`archivo` or `file`).
func (h *ManualCollectionHandler) UploadProof(c *gin.Context) {
	header, err := c.FormFile("archivo")
	if err != nil {
		header, err = c.FormFile("file")
	}
	if err != nil {
		c.JSON(errMissingProofFile.HTTPStatus, errMissingProofFile.ToHTTPError())
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(errMissingProofFile.HTTPStatus, errMissingProofFile.ToHTTPError())
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		c.JSON(errMissingProofFile.HTTPStatus, errMissingProofFile.ToHTTPError())
		return
	}

	err = h.notifications.UploadProof(c.Request.Context(), usecase.ProofUpload{
		Email:    c.PostForm("email"),
		Name:     c.PostForm("nombre"),
		Amount:   c.PostForm("monto"),
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		appErr := mapManualCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true, Message: "Comprobante recibido"})
}

func mapManualCollectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidManualCollection), errors.Is(err, usecase.ErrInvalidPaymentLink), errors.Is(err, usecase.ErrInvalidUpload):
		return pkg.NewDomainError("INVALID_REQUEST", "Datos inválidos", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Email inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", "Pasarela de pago no configurada", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "No se pudo generar el link de pago", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrEmailUnavailable):
		return pkg.NewDomainError("EMAIL_UNAVAILABLE", "No se pudo enviar el email", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrStoreNotConfigured):
		return pkg.NewDomainError("STORE_NOT_CONFIGURED", "Base de datos no configurada", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
	}
}
