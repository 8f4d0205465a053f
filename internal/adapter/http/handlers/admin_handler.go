package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	request "traful_pagos/internal/adapter/http/dto/request"
	response "traful_pagos/internal/adapter/http/dto/response"
	"traful_pagos/internal/usecase"
	"traful_pagos/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errInvalidAdminPayload = pkg.NewDomainErrorSimple("INVALID_ADMIN_INPUT", "Datos inválidos", http.StatusBadRequest)

// AdminHandler serves the staff login, reporting lists and dashboard.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) Login(c *gin.Context) {
	h.login(c, h.usecase.Login)
}

func (h *AdminHandler) StatsLogin(c *gin.Context) {
	h.login(c, h.usecase.StatsLogin)
}

func (h *AdminHandler) login(c *gin.Context, check func(ctx context.Context, password string) error) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	if err := check(c.Request.Context(), payload.Password); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}

func (h *AdminHandler) ListPayments(c *gin.Context) {
	page, perPage := pagination(c)
	result, err := h.usecase.ListPayments(c.Request.Context(), page, perPage)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPage(result, response.FromPaymentHistory))
}

func (h *AdminHandler) ListLogs(c *gin.Context) {
	page, perPage := pagination(c)
	result, err := h.usecase.ListLogs(c.Request.Context(), page, perPage)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPage(result, response.FromLogEntry))
}

func (h *AdminHandler) ListRecaudacion(c *gin.Context) {
	page, perPage := pagination(c)
	result, err := h.usecase.ListRecaudacion(c.Request.Context(), page, perPage)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPage(result, response.FromManualCollection))
}

func (h *AdminHandler) ListAccessLogs(c *gin.Context) {
	page, perPage := pagination(c)
	result, err := h.usecase.ListAccessLogs(c.Request.Context(), page, perPage)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccessLogPage(result))
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ExportPayments(c *gin.Context) {
	data, err := h.usecase.ExportPayments(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("pagos_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *AdminHandler) RegisterStaffAccess(c *gin.Context) {
	var payload request.RegisterAccessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	if err := h.usecase.RegisterStaffAccess(c.Request.Context(), payload.Username, c.ClientIP()); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Success: true})
}

// pagination reads `page` and `per_page`; invalid values fall back to the defaults.
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(usecase.DefaultPage)))
	if err != nil {
		page = usecase.DefaultPage
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(usecase.DefaultPerPage)))
	if err != nil {
		perPage = usecase.DefaultPerPage
	}
	return page, perPage
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Contraseña incorrecta", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAdminNotConfigured):
		return pkg.NewDomainError("ADMIN_NOT_CONFIGURED", "Acceso administrativo no configurado", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidUsername):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Usuario inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotConfigured):
		return pkg.NewDomainError("STORE_NOT_CONFIGURED", "Base de datos no configurada", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("STORE_ERROR", "Error consultando la base de datos", err, http.StatusInternalServerError)
	}
}
