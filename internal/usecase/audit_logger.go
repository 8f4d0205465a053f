package usecase

import (
	"context"
	"encoding/json"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Log sources written to the audit table.
const (
	SourcePaymentWebhook   = "payment_webhook"
	SourceSimulatePayment  = "simulate_payment"
	SourcePaywayCallback   = "payway_callback"
	SourceCheckout         = "create_preference"
	SourceReceipt          = "receipt"
	SourceManualCollection = "manual_collection"
	SourceNotification     = "notification"
	SourceAdmin            = "admin"
)

// AuditLogger writes operational events to the store's Logs table and mirrors
// them to the process logger. Store failures are logged and never returned.
type AuditLogger struct {
	repo interfaces.ILogRepository
	logg *logrus.Logger
	now  func() time.Time
}

func NewAuditLogger(repo interfaces.ILogRepository, logg *logrus.Logger) *AuditLogger {
	return &AuditLogger{repo: repo, logg: logg, now: time.Now}
}

func (a *AuditLogger) Info(ctx context.Context, source, message, relatedID string, details map[string]any) {
	a.write(ctx, entities.LogLevelInfo, source, message, relatedID, details)
}

func (a *AuditLogger) Warning(ctx context.Context, source, message, relatedID string, details map[string]any) {
	a.write(ctx, entities.LogLevelWarning, source, message, relatedID, details)
}

func (a *AuditLogger) Error(ctx context.Context, source, message, relatedID string, details map[string]any) {
	a.write(ctx, entities.LogLevelError, source, message, relatedID, details)
}

func (a *AuditLogger) write(ctx context.Context, level entities.LogLevel, source, message, relatedID string, details map[string]any) {
	if a == nil {
		return
	}

	entry := a.logg.WithFields(logrus.Fields{"source": source, "related_id": relatedID})
	for k, v := range details {
		entry = entry.WithField(k, v)
	}
	switch level {
	case entities.LogLevelError:
		entry.Error("[audit] " + message)
	case entities.LogLevelWarning:
		entry.Warn("[audit] " + message)
	default:
		entry.Info("[audit] " + message)
	}

	if a.repo == nil {
		return
	}

	var raw string
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			raw = string(b)
		}
	}
	err := a.repo.Create(ctx, entities.LogEntry{
		Timestamp: a.now().UTC(),
		Level:     level,
		Source:    source,
		Message:   message,
		RelatedID: relatedID,
		Details:   raw,
	})
	if err != nil {
		a.logg.WithError(err).WithField("source", source).Warn("[audit] failed writing log record")
	}
}
