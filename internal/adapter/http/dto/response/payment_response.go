package response

import (
	"encoding/base64"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase"
)

// FeeRecordResponse keeps the store's record shape, which the web client reads as is.
type FeeRecordResponse struct {
	ID          string         `json:"id"`
	CreatedTime string         `json:"createdTime,omitempty"`
	Fields      map[string]any `json:"fields"`
}

func FromFeeRecord(r entities.FeeRecord) FeeRecordResponse {
	fields := r.Fields
	if fields == nil {
		fields = map[string]any{}
	}
	return FeeRecordResponse{ID: r.ID, CreatedTime: r.CreatedTime, Fields: fields}
}

func FromFeeRecords(records []entities.FeeRecord) []FeeRecordResponse {
	out := make([]FeeRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromFeeRecord(r))
	}
	return out
}

type PreferenceResponse struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

func FromPreference(p entities.Preference) PreferenceResponse {
	return PreferenceResponse{PreferenceID: p.ID, InitPoint: p.InitPoint, SandboxInitPoint: p.SandboxInitPoint}
}

type PaymentLinkResponse struct {
	ID         string `json:"id"`
	PaymentURL string `json:"payment_url"`
}

func FromPaymentLink(l entities.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{ID: l.ID, PaymentURL: l.URL}
}

// HistoryResponse mirrors a history row as `{id, fields}` for the success page.
type HistoryResponse struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

func FromHistory(h entities.PaymentHistory) HistoryResponse {
	fields := map[string]any{
		"Estado":             string(h.Status),
		"Monto":              h.Amount,
		"Detalle":            h.Detail,
		"MP_Payment_ID":      h.GatewayPaymentID,
		"Items_Pagados_JSON": entities.EncodeItems(h.Items),
		"Comprobante_URL":    h.ReceiptURL,
		"Email":              h.Email,
		"Payment_Type":       h.PaymentType,
	}
	if !h.CreatedAt.IsZero() {
		fields["Timestamp"] = h.CreatedAt.UTC().Format(time.RFC3339)
	}
	return HistoryResponse{ID: h.ID, Fields: fields}
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ManualCollectionResponse carries the receipt inline for the counter to print.
type ManualCollectionResponse struct {
	Message      string  `json:"message"`
	RecordID     string  `json:"record_id,omitempty"`
	HistoryID    string  `json:"historial_record_id,omitempty"`
	Status       string  `json:"estado"`
	Subtotal     float64 `json:"subtotal"`
	Total        float64 `json:"total"`
	PDFBase64    string  `json:"pdf_base64,omitempty"`
	PDFGenerated bool    `json:"pdf_generated"`
	EmailSent    bool    `json:"email_sent"`
	PaymentLink  string  `json:"mp_link,omitempty"`
}

func FromManualCollectionResult(r usecase.ManualCollectionResult) ManualCollectionResponse {
	out := ManualCollectionResponse{
		Message:      "Cobro registrado",
		RecordID:     r.RecordID,
		HistoryID:    r.HistoryID,
		Status:       string(r.Status),
		Subtotal:     r.Subtotal,
		Total:        r.Total,
		PDFGenerated: r.PDFGenerated,
		EmailSent:    r.EmailSent,
		PaymentLink:  r.PaymentLink,
	}
	if len(r.PDF) > 0 {
		out.PDFBase64 = base64.StdEncoding.EncodeToString(r.PDF)
	}
	if r.PaymentLink != "" {
		out.Message = "Link de pago generado"
	}
	return out
}
