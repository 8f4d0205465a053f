package interfaces

import (
	"context"

	"traful_pagos/internal/domain/entities"
)

// IPaymentHistoryRepository persists the per-payment audit trail.
//
// GetByID and FindByGatewayPaymentID return a zero-value record (empty ID)
// when nothing matches.
type IPaymentHistoryRepository interface {
	Create(ctx context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error)
	Update(ctx context.Context, h entities.PaymentHistory) (entities.PaymentHistory, error)
	GetByID(ctx context.Context, id string) (entities.PaymentHistory, error)
	FindByGatewayPaymentID(ctx context.Context, paymentID string) (entities.PaymentHistory, error)
	ListAll(ctx context.Context) ([]entities.PaymentHistory, error)
}
