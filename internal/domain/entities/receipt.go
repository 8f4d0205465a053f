package entities

import "time"

// Receipt is the printable proof of payment. It is never persisted; it is
// rebuilt from the history record whenever requested.
type Receipt struct {
	Number           string
	Date             time.Time
	PayerName        string
	Email            string
	Status           HistoryStatus
	Concept          string
	Total            float64
	GatewayPaymentID string
	Items            []ReceiptItem
}

// ReceiptFromHistory builds the receipt of a history record.
func ReceiptFromHistory(h PaymentHistory) Receipt {
	return Receipt{
		Number:           h.ID,
		Date:             h.CreatedAt,
		Email:            h.Email,
		Status:           h.Status,
		Concept:          h.Detail,
		Total:            h.Amount,
		GatewayPaymentID: h.GatewayPaymentID,
		Items:            h.Items,
	}
}
