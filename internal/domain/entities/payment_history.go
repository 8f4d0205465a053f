package entities

import (
	"encoding/json"
	"time"
)

// HistoryStatus is the outcome stored on a history record.
type HistoryStatus string

const (
	HistoryStatusExitoso HistoryStatus = "Exitoso"
	HistoryStatusFallido HistoryStatus = "Fallido"
)

// ReceiptItem is one paid line (a debt or a period) shown on the receipt.
type ReceiptItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PaymentHistory is the audit row written for every payment attempt.
//
// Lifecycle: created with a provisional Fallido status when a notification
// arrives, then updated in place with the final status, items and receipt link.
type PaymentHistory struct {
	ID               string
	Status           HistoryStatus
	Amount           float64
	Detail           string
	GatewayPaymentID string
	Items            []ReceiptItem
	ReceiptURL       string
	Email            string
	PaymentType      string
	CreatedAt        time.Time
}

// EncodeItems renders the item list as stored in the history table.
func EncodeItems(items []ReceiptItem) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// DecodeItems parses the stored item list; malformed values yield no items.
func DecodeItems(raw string) []ReceiptItem {
	if raw == "" {
		return nil
	}
	var items []ReceiptItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}
