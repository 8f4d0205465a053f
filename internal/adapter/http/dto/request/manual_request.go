package request

import (
	"strings"

	"traful_pagos/internal/usecase"
)

// ManualCollectionRequest is the union of the staff forms (recaudación,
// patente and plan de pago). Each form sends a subset of the fields.
type ManualCollectionRequest struct {
	Fecha          string            `json:"fecha"`
	Nombre         string            `json:"nombre"`
	DNI            string            `json:"dni"`
	Email          string            `json:"email"`
	Importes       map[string]Amount `json:"importes"`
	Notas          map[string]string `json:"notas"`
	Monto          Amount            `json:"monto"`
	MontoTotal     Amount            `json:"monto_total"`
	Total          Amount            `json:"total"`
	Descuento      Amount            `json:"descuento"`
	MedioPago      string            `json:"medio_pago"`
	Transferencia  string            `json:"transferencia"`
	Administrativa string            `json:"administrativa"`
	Administrativo string            `json:"administrativo"`
	Patente        string            `json:"patente"`
	Marca          string            `json:"marca"`
	Modelo         string            `json:"modelo"`
	Anio           string            `json:"anio"`
	CuotaPlan      string            `json:"cuota_plan"`
}

// ToInput maps the form. The total is always recomputed server side, so
// `total_final` is ignored.
func (r ManualCollectionRequest) ToInput() usecase.ManualCollectionInput {
	concepts := make(map[string]float64, len(r.Importes))
	for k, v := range r.Importes {
		if k = strings.TrimSpace(k); k != "" {
			concepts[k] = v.Float()
		}
	}

	notes := make(map[string]string, len(r.Notas)+3)
	for k, v := range r.Notas {
		if v = strings.TrimSpace(v); v != "" {
			notes[k] = v
		}
	}
	for k, v := range map[string]string{"marca": r.Marca, "modelo": r.Modelo, "anio": r.Anio} {
		if v = strings.TrimSpace(v); v != "" {
			notes[k] = v
		}
	}
	if len(notes) == 0 {
		notes = nil
	}

	amount := r.Monto.Float()
	if amount <= 0 {
		amount = r.MontoTotal.Float()
	}
	if amount <= 0 {
		amount = r.Total.Float()
	}

	return usecase.ManualCollectionInput{
		Date:        strings.TrimSpace(r.Fecha),
		Name:        r.Nombre,
		DNI:         r.DNI,
		Email:       r.Email,
		Concepts:    concepts,
		Notes:       notes,
		Amount:      amount,
		Discount:    r.Descuento.Float(),
		Method:      r.MedioPago,
		Transfer:    r.Transferencia,
		Operator:    firstNonEmpty(r.Administrativa, r.Administrativo),
		Domain:      r.Patente,
		Installment: strings.TrimSpace(r.CuotaPlan),
	}
}

// SendPaymentLinkRequest is sent by the staff Mercado Pago link module.
type SendPaymentLinkRequest struct {
	Email    string `json:"email"`
	Monto    Amount `json:"monto"`
	Concepto string `json:"concepto"`
	Link     string `json:"link"`
}

func (r SendPaymentLinkRequest) ToInput() usecase.PaymentLinkEmail {
	return usecase.PaymentLinkEmail{
		Email:   r.Email,
		Amount:  r.Monto.Float(),
		Concept: strings.TrimSpace(r.Concepto),
		Link:    r.Link,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type RegisterAccessRequest struct {
	Username string `json:"username" binding:"required"`
}
