package interfaces

import (
	"context"

	"traful_pagos/internal/domain/entities"
)

// IManualCollectionRepository persists staff-registered collections, one table per kind.
type IManualCollectionRepository interface {
	Create(ctx context.Context, c entities.ManualCollection) (entities.ManualCollection, error)
	ListPendingByEmail(ctx context.Context, kind entities.ManualKind, email string) ([]entities.ManualCollection, error)
	MarkPaid(ctx context.Context, kind entities.ManualKind, id string, gatewayPaymentID string) error
	ListAll(ctx context.Context, kind entities.ManualKind) ([]entities.ManualCollection, error)
}
