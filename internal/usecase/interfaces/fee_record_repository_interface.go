package interfaces

import (
	"context"

	"traful_pagos/internal/domain/entities"
)

// IFeeRecordRepository reads and mutates the fee tables (contributivos,
// patente, deudas) selected by item type.
type IFeeRecordRepository interface {
	SearchByDNI(ctx context.Context, itemType entities.ItemType, dni string) ([]entities.FeeRecord, error)
	SearchByName(ctx context.Context, itemType entities.ItemType, name string) ([]entities.FeeRecord, error)
	GetByID(ctx context.Context, itemType entities.ItemType, id string) (entities.FeeRecord, error)
	Update(ctx context.Context, itemType entities.ItemType, id string, fields map[string]any) (entities.FeeRecord, error)
}
