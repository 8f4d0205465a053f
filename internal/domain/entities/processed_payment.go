package entities

import (
	"errors"
	"time"
)

var ErrPaymentAlreadyProcessed = errors.New("payment already processed")

// ProcessedPayment marks a gateway payment id as already reconciled.
//
// Storage model (DynamoDB):
//   - PK: payment_id
type ProcessedPayment struct {
	GatewayPaymentID string
	HistoryID        string
	Status           HistoryStatus
	ProcessedAt      time.Time
}
