package handlers

import (
	"context"
	"errors"
	"net/http"

	response "traful_pagos/internal/adapter/http/dto/response"
	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase"
	"traful_pagos/pkg"

	"github.com/gin-gonic/gin"
)

// SearchHandler looks up fee records for the public payment pages.
type SearchHandler struct {
	usecase usecase.ISearchUseCase
}

func NewSearchHandler(uc usecase.ISearchUseCase) *SearchHandler {
	return &SearchHandler{usecase: uc}
}

func (h *SearchHandler) SearchContributivo(c *gin.Context) {
	h.search(c, c.Query("dni"), h.usecase.SearchContributivo)
}

func (h *SearchHandler) SearchPatente(c *gin.Context) {
	h.search(c, c.Query("dni"), h.usecase.SearchPatente)
}

// SearchDeuda accepts `nombre` and the older `query` parameter.
func (h *SearchHandler) SearchDeuda(c *gin.Context) {
	name := c.Query("nombre")
	if name == "" {
		name = c.Query("query")
	}
	h.search(c, name, h.usecase.SearchDeuda)
}

func (h *SearchHandler) search(c *gin.Context, param string, finder func(ctx context.Context, param string) ([]entities.FeeRecord, error)) {
	records, err := finder(c.Request.Context(), param)
	if err != nil {
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFeeRecords(records))
}

func mapSearchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSearchParam):
		return pkg.NewDomainErrorSimple("MISSING_PARAMETER", "Falta el parámetro de búsqueda", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotConfigured):
		return pkg.NewDomainError("STORE_NOT_CONFIGURED", "Base de datos no configurada", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("STORE_ERROR", "Error consultando la base de datos", err, http.StatusInternalServerError)
	}
}
