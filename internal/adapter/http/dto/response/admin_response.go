package response

import (
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase"
)

const timestampLayout = "2006-01-02 15:04:05"

// PageResponse is the paginated envelope of the admin lists.
type PageResponse[T any] struct {
	Records      []T `json:"records"`
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	TotalRecords int `json:"total_records"`
	TotalPages   int `json:"total_pages"`
}

// AccessLogPageResponse uses the `logs` key expected by the access log page.
type AccessLogPageResponse struct {
	Logs         []AccessLogResponse `json:"logs"`
	Page         int                 `json:"page"`
	PerPage      int                 `json:"per_page"`
	TotalRecords int                 `json:"total_records"`
	TotalPages   int                 `json:"total_pages"`
}

// FromPage maps every record of p with fn.
func FromPage[E, T any](p usecase.Page[E], fn func(E) T) PageResponse[T] {
	records := make([]T, 0, len(p.Records))
	for _, r := range p.Records {
		records = append(records, fn(r))
	}
	return PageResponse[T]{
		Records:      records,
		Page:         p.Page,
		PerPage:      p.PerPage,
		TotalRecords: p.TotalRecords,
		TotalPages:   p.TotalPages,
	}
}

type PaymentRecordResponse struct {
	ID               string  `json:"id"`
	Timestamp        string  `json:"timestamp"`
	Estado           string  `json:"estado"`
	PaymentType      string  `json:"payment_type"`
	Detalle          string  `json:"detalle"`
	ItemsPagadosJSON string  `json:"items_pagados_json"`
	MPPaymentID      string  `json:"mp_payment_id"`
	Email            string  `json:"email,omitempty"`
	Monto            float64 `json:"monto"`
}

func FromPaymentHistory(h entities.PaymentHistory) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:               h.ID,
		Timestamp:        formatTimestamp(h.CreatedAt),
		Estado:           string(h.Status),
		PaymentType:      h.PaymentType,
		Detalle:          h.Detail,
		ItemsPagadosJSON: entities.EncodeItems(h.Items),
		MPPaymentID:      h.GatewayPaymentID,
		Email:            h.Email,
		Monto:            h.Amount,
	}
}

type LogResponse struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Source    string `json:"source"`
	Message   string `json:"message"`
	RelatedID string `json:"related_id"`
	Details   string `json:"details"`
}

func FromLogEntry(e entities.LogEntry) LogResponse {
	return LogResponse{
		ID:        e.ID,
		Timestamp: formatTimestamp(e.Timestamp),
		Level:     string(e.Level),
		Source:    e.Source,
		Message:   e.Message,
		RelatedID: e.RelatedID,
		Details:   e.Details,
	}
}

type RecaudacionResponse struct {
	ID            string             `json:"id"`
	Fecha         string             `json:"fecha"`
	Contribuyente string             `json:"contribuyente"`
	Operador      string             `json:"operador"`
	Email         string             `json:"email"`
	Subtotal      float64            `json:"subtotal"`
	Descuento     float64            `json:"descuento"`
	Total         float64            `json:"total"`
	Transferencia string             `json:"transferencia"`
	Estado        string             `json:"estado"`
	Detalle       map[string]float64 `json:"detalle"`
	Notas         map[string]string  `json:"notas,omitempty"`
}

func FromManualCollection(m entities.ManualCollection) RecaudacionResponse {
	fecha := m.Date
	if fecha == "" && !m.CreatedAt.IsZero() {
		fecha = m.CreatedAt.UTC().Format("2006-01-02")
	}
	detalle := m.Concepts
	if detalle == nil {
		detalle = map[string]float64{}
	}
	return RecaudacionResponse{
		ID:            m.ID,
		Fecha:         fecha,
		Contribuyente: m.Name,
		Operador:      m.Operator,
		Email:         m.Email,
		Subtotal:      m.Subtotal,
		Descuento:     m.Discount,
		Total:         m.Amount,
		Transferencia: m.Transfer,
		Estado:        string(m.Status),
		Detalle:       detalle,
		Notas:         m.Notes,
	}
}

type AccessLogResponse struct {
	ID      string `json:"id"`
	Fecha   string `json:"fecha"`
	Hora    string `json:"hora"`
	Usuario string `json:"usuario"`
	IP      string `json:"ip"`
}

func FromAccessLog(a entities.AccessLog) AccessLogResponse {
	out := AccessLogResponse{ID: a.ID, Usuario: a.Username, IP: a.IP}
	if !a.Timestamp.IsZero() {
		ts := a.Timestamp.UTC()
		out.Fecha = ts.Format("2006-01-02")
		out.Hora = ts.Format("15:04:05")
	}
	return out
}

func FromAccessLogPage(p usecase.Page[entities.AccessLog]) AccessLogPageResponse {
	page := FromPage(p, FromAccessLog)
	return AccessLogPageResponse{
		Logs:         page.Records,
		Page:         page.Page,
		PerPage:      page.PerPage,
		TotalRecords: page.TotalRecords,
		TotalPages:   page.TotalPages,
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
