package interfaces

import (
	"context"

	"traful_pagos/internal/domain/entities"
)

type ILogRepository interface {
	Create(ctx context.Context, entry entities.LogEntry) error
	ListAll(ctx context.Context) ([]entities.LogEntry, error)
}

type IAccessLogRepository interface {
	Create(ctx context.Context, entry entities.AccessLog) error
	ListAll(ctx context.Context) ([]entities.AccessLog, error)
}
