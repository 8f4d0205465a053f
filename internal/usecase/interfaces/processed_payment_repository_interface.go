package interfaces

import (
	"context"

	"traful_pagos/internal/domain/entities"
)

// IProcessedPaymentRepository is the webhook de-duplication ledger.
//
// Create must fail with entities.ErrPaymentAlreadyProcessed when the id already exists.
// Get returns a zero value (empty GatewayPaymentID) when the id is unknown.
type IProcessedPaymentRepository interface {
	Create(ctx context.Context, p entities.ProcessedPayment) error
	Get(ctx context.Context, paymentID string) (entities.ProcessedPayment, error)
}
