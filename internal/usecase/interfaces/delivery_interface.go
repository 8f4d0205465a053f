package interfaces

import (
	"context"

	"traful_pagos/internal/domain/entities"
)

// IReceiptRenderer turns a receipt into PDF bytes.
type IReceiptRenderer interface {
	Render(ctx context.Context, r entities.Receipt) ([]byte, error)
}

// IEmailSender delivers transactional emails and returns the provider message id.
type IEmailSender interface {
	Send(ctx context.Context, msg entities.EmailMessage) (string, error)
}

// IRecordLocker serializes read-modify-write cycles on a store record.
// The returned release function must be called once the write is done.
type IRecordLocker interface {
	Lock(ctx context.Context, key string) (func(context.Context), error)
}
