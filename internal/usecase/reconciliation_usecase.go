package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrDebugDisabled        = errors.New("debug endpoints disabled")
	ErrInvalidSimulation    = errors.New("invalid simulated payment")
)

// Reconciliation result statuses.
const (
	ReconciliationProcessed    = "processed"
	ReconciliationIgnored      = "ignored"
	ReconciliationDuplicate    = "duplicate"
	ReconciliationContextError = "context_error"
)

const (
	eventTypePayment   = "payment"
	simulatedIDPrefix  = "SIM_"
	receiptPathPattern = "%s/api/receipt/%s"
)

var amountTolerance = decimal.NewFromInt(1)

// ReconciliationResult describes what a notification did to the store.
type ReconciliationResult struct {
	Status    string                 `json:"status"`
	PaymentID string                 `json:"payment_id,omitempty"`
	HistoryID string                 `json:"history_id,omitempty"`
	Outcome   entities.HistoryStatus `json:"outcome,omitempty"`
	Items     []entities.ReceiptItem `json:"items,omitempty"`
	Receipt   *ReceiptDelivery       `json:"receipt,omitempty"`
}

// IReconciliationUseCase turns gateway notifications into store mutations and
// an audit trail.
type IReconciliationUseCase interface {
	HandleNotification(ctx context.Context, eventType, paymentID string) (ReconciliationResult, error)
	Simulate(ctx context.Context, pc entities.PaymentContext, amount float64, status string) (ReconciliationResult, error)
	RecordLegacyCallback(ctx context.Context, form map[string]string) bool
}

// ReconciliationDeps groups the collaborators of ReconciliationUseCase.
// Ledger, Locker and Receipts are optional.
type ReconciliationDeps struct {
	Gateway  interfaces.IPaymentGateway
	Fees     interfaces.IFeeRecordRepository
	History  interfaces.IPaymentHistoryRepository
	Manual   interfaces.IManualCollectionRepository
	Ledger   interfaces.IProcessedPaymentRepository
	Locker   interfaces.IRecordLocker
	Receipts IReceiptUseCase
	Audit    *AuditLogger
	Logger   *logrus.Logger

	BackendURL   string
	DebugEnabled bool
}

type ReconciliationUseCase struct {
	deps ReconciliationDeps
	now  func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(deps ReconciliationDeps) *ReconciliationUseCase {
	return &ReconciliationUseCase{deps: deps, now: time.Now}
}

// HandleNotification processes a webhook. Only a gateway lookup failure is
// returned as an error; every other problem ends up in the audit trail.
func (u *ReconciliationUseCase) HandleNotification(ctx context.Context, eventType, paymentID string) (ReconciliationResult, error) {
	logg := u.deps.Logger.WithFields(logrus.Fields{"event_type": eventType, "payment_id": paymentID})
	if !strings.EqualFold(strings.TrimSpace(eventType), eventTypePayment) {
		logg.Info("[reconciliation][usecase] event ignored")
		return ReconciliationResult{Status: ReconciliationIgnored}, nil
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		logg.Warn("[reconciliation][usecase] notification without payment id")
		return ReconciliationResult{Status: ReconciliationIgnored}, nil
	}
	if u.deps.Gateway == nil {
		return ReconciliationResult{}, ErrGatewayNotConfigured
	}

	payment, err := u.deps.Gateway.GetPayment(ctx, paymentID)
	if err != nil {
		logg.WithError(err).Error("[reconciliation][usecase] gateway lookup failed")
		return ReconciliationResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if payment.ID == "" {
		payment.ID = paymentID
	}

	release := u.lock(ctx, "payment:"+payment.ID)
	defer release(ctx)

	if u.alreadyProcessed(ctx, payment) {
		u.deps.Audit.Warning(ctx, SourcePaymentWebhook, "Notificación duplicada ignorada", payment.ID, map[string]any{
			"status": payment.Status,
		})
		return ReconciliationResult{Status: ReconciliationDuplicate, PaymentID: payment.ID}, nil
	}

	return u.process(ctx, payment, SourcePaymentWebhook)
}

// Simulate runs the reconciliation pipeline for a synthetic payment.
func (u *ReconciliationUseCase) Simulate(ctx context.Context, pc entities.PaymentContext, amount float64, status string) (ReconciliationResult, error) {
	if !u.deps.DebugEnabled {
		return ReconciliationResult{}, ErrDebugDisabled
	}
	if amount < 0 {
		return ReconciliationResult{}, fmt.Errorf("%w: negative amount", ErrInvalidSimulation)
	}
	if status == "" {
		status = entities.GatewayStatusApproved
	}
	if amount == 0 {
		amount = pc.TotalAmount
	}
	ref, err := pc.Encode()
	if err != nil {
		return ReconciliationResult{}, fmt.Errorf("%w: %v", ErrInvalidSimulation, err)
	}

	return u.process(ctx, entities.GatewayPayment{
		ID:                simulatedIDPrefix + uuid.NewString(),
		Status:            status,
		Amount:            amount,
		ExternalReference: ref,
		PayerEmail:        pc.Email,
	}, SourceSimulatePayment)
}

// RecordLegacyCallback stores the Payway form post in the audit log and
// reports whether the payment was approved.
func (u *ReconciliationUseCase) RecordLegacyCallback(ctx context.Context, form map[string]string) bool {
	details := make(map[string]any, len(form))
	for k, v := range form {
		details[k] = v
	}
	status := strings.ToLower(strings.TrimSpace(form["status"]))
	relatedID := firstNonEmpty(form["site_transaction_id"], form["payment_id"], form["id"])
	u.deps.Audit.Info(ctx, SourcePaywayCallback, "Callback de Payway recibido", relatedID, details)
	return status == entities.GatewayStatusApproved || status == "accredited"
}

func (u *ReconciliationUseCase) process(ctx context.Context, payment entities.GatewayPayment, source string) (ReconciliationResult, error) {
	result := ReconciliationResult{Status: ReconciliationProcessed, PaymentID: payment.ID}
	u.deps.Audit.Info(ctx, source, "Procesando pago", payment.ID, map[string]any{
		"status": payment.Status,
		"amount": payment.Amount,
	})

	pc, err := entities.ParsePaymentContext(payment.ExternalReference)
	if err != nil {
		u.deps.Audit.Error(ctx, source, "Contexto de pago inválido", payment.ID, map[string]any{
			"error":              err.Error(),
			"external_reference": payment.ExternalReference,
		})
		h, _ := u.createHistory(ctx, entities.PaymentHistory{
			Status:           entities.HistoryStatusFallido,
			Amount:           payment.Amount,
			Detail:           fmt.Sprintf("Pago %s - contexto inválido", payment.Status),
			GatewayPaymentID: payment.ID,
			Email:            payment.PayerEmail,
		}, source)
		result.Status = ReconciliationContextError
		result.HistoryID = h.ID
		result.Outcome = entities.HistoryStatusFallido
		u.markProcessed(ctx, payment, h)
		return result, nil
	}

	email := firstNonEmpty(pc.Email, payment.PayerEmail)
	history, _ := u.createHistory(ctx, entities.PaymentHistory{
		Status:           entities.HistoryStatusFallido,
		Amount:           payment.Amount,
		Detail:           fmt.Sprintf("Procesando pago %s - %s", pc.Label(), pc.Identifier()),
		GatewayPaymentID: payment.ID,
		Email:            email,
		PaymentType:      pc.Label(),
	}, source)

	settled := true
	if payment.Approved() {
		history.Status = entities.HistoryStatusExitoso
		history.Detail = fmt.Sprintf("Pago %s - %s", pc.Label(), pc.Identifier())

		var items []entities.ReceiptItem
		var err error
		if pc.IsManual() {
			items, err = u.settleManual(ctx, pc, payment, email, source)
		} else {
			items, err = u.settleFeeRecord(ctx, pc, payment, source)
		}
		if err != nil {
			settled = false
			history.Detail += " (actualización pendiente)"
			u.deps.Audit.Error(ctx, source, "Error actualizando registros del pago", payment.ID, map[string]any{
				"error":     err.Error(),
				"type":      pc.Label(),
				"record_id": pc.RecordID,
			})
		}
		if len(items) == 0 {
			items = []entities.ReceiptItem{{Description: "Pago " + pc.Label(), Amount: payment.Amount}}
		}
		history.Items = items
	} else {
		history.Status = entities.HistoryStatusFallido
		history.Detail = fmt.Sprintf("Pago %s - %s %s", payment.Status, pc.Label(), pc.Identifier())
		u.deps.Audit.Warning(ctx, source, "Pago no aprobado", payment.ID, map[string]any{
			"status":        payment.Status,
			"status_detail": payment.StatusDetail,
		})
	}

	history.Amount = payment.Amount
	if history.ID != "" {
		history.ReceiptURL = fmt.Sprintf(receiptPathPattern, strings.TrimRight(u.deps.BackendURL, "/"), history.ID)
		if updated, err := u.deps.History.Update(ctx, history); err != nil {
			u.deps.Audit.Error(ctx, source, "Error actualizando historial", payment.ID, map[string]any{
				"error":      err.Error(),
				"history_id": history.ID,
			})
		} else if updated.ID != "" {
			history = updated
		}
	}

	result.HistoryID = history.ID
	result.Outcome = history.Status
	result.Items = history.Items

	if settled {
		u.markProcessed(ctx, payment, history)
	}

	if history.ID != "" && history.Status == entities.HistoryStatusExitoso && u.deps.Receipts != nil && email != "" {
		delivery := u.deps.Receipts.Deliver(ctx, history, email)
		if delivery.Error != "" {
			u.deps.Audit.Warning(ctx, SourceReceipt, "Comprobante no entregado", history.ID, map[string]any{
				"error": delivery.Error,
			})
		}
		result.Receipt = &delivery
	}

	u.deps.Audit.Info(ctx, source, "Pago procesado", payment.ID, map[string]any{
		"outcome":    string(history.Status),
		"history_id": history.ID,
	})
	return result, nil
}

// settleFeeRecord zeroes the paid fields of the record in a single update.
func (u *ReconciliationUseCase) settleFeeRecord(ctx context.Context, pc entities.PaymentContext, payment entities.GatewayPayment, source string) ([]entities.ReceiptItem, error) {
	layout, ok := pc.ItemType.Layout()
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedItemType, pc.ItemType)
	}
	if u.deps.Fees == nil {
		return nil, ErrStoreNotConfigured
	}

	months := pc.SelectedMonths()
	if !layout.HasPeriods {
		months = nil
	}
	payDebt := pc.Debt || !layout.HasPeriods
	if !payDebt && len(months) == 0 {
		u.deps.Audit.Warning(ctx, source, "Pago sin conceptos seleccionados", payment.ID, map[string]any{
			"record_id": pc.RecordID,
		})
		return nil, nil
	}

	release := u.lock(ctx, "fee:"+pc.RecordID)
	defer release(ctx)

	// Amounts missing from the context are read from the record before zeroing it.
	var current *entities.FeeRecord
	amountOf := func(given float64, read func(entities.FeeRecord) decimal.Decimal) float64 {
		if given > 0 {
			return given
		}
		if current == nil {
			rec, err := u.deps.Fees.GetByID(ctx, pc.ItemType, pc.RecordID)
			if err != nil {
				u.deps.Logger.WithError(err).WithField("record_id", pc.RecordID).Warn("[reconciliation][usecase] could not read record amounts")
				rec = entities.FeeRecord{Type: pc.ItemType}
			}
			current = &rec
		}
		f, _ := read(*current).Float64()
		return f
	}

	fields := map[string]any{}
	var items []entities.ReceiptItem
	if payDebt {
		fields[layout.DebtField] = layout.ZeroValue
		items = append(items, entities.ReceiptItem{
			Description: layout.DebtLabel,
			Amount:      amountOf(pc.DebtAmount, func(r entities.FeeRecord) decimal.Decimal { return r.Debt() }),
		})
	}
	for _, m := range months {
		month := m
		fields[layout.PeriodField(month)] = layout.ZeroValue
		items = append(items, entities.ReceiptItem{
			Description: layout.PeriodDescription(month),
			Amount:      amountOf(pc.MonthAmounts[month], func(r entities.FeeRecord) decimal.Decimal { return r.Period(month) }),
		})
	}

	if _, err := u.deps.Fees.Update(ctx, pc.ItemType, pc.RecordID, fields); err != nil {
		return items, err
	}
	u.deps.Audit.Info(ctx, source, "Registro actualizado", pc.RecordID, map[string]any{
		"item_type":  string(pc.ItemType),
		"fields":     sortedFieldNames(fields),
		"payment_id": payment.ID,
	})
	return items, nil
}

// settleManual flips the first pending collection matching payer and amount.
func (u *ReconciliationUseCase) settleManual(ctx context.Context, pc entities.PaymentContext, payment entities.GatewayPayment, email, source string) ([]entities.ReceiptItem, error) {
	if u.deps.Manual == nil {
		return nil, ErrStoreNotConfigured
	}
	if email == "" {
		u.deps.Audit.Warning(ctx, source, "Pago manual sin email, no se puede conciliar", payment.ID, map[string]any{"type": string(pc.Type)})
		return nil, nil
	}

	pending, err := u.deps.Manual.ListPendingByEmail(ctx, pc.Type, email)
	if err != nil {
		return nil, err
	}

	paid := decimal.NewFromFloat(payment.Amount)
	for _, m := range pending {
		if pc.Type == entities.ManualKindPatenteManual && pc.Domain != "" && !strings.EqualFold(strings.TrimSpace(m.Domain), strings.TrimSpace(pc.Domain)) {
			continue
		}
		if pc.Type == entities.ManualKindPlanPago && pc.Name != "" && !strings.EqualFold(strings.TrimSpace(m.Name), strings.TrimSpace(pc.Name)) {
			continue
		}
		if decimal.NewFromFloat(m.Amount).Sub(paid).Abs().GreaterThan(amountTolerance) {
			continue
		}

		if err := u.deps.Manual.MarkPaid(ctx, pc.Type, m.ID, payment.ID); err != nil {
			return nil, err
		}
		u.deps.Audit.Info(ctx, source, "Cobro manual conciliado", m.ID, map[string]any{
			"type":       string(pc.Type),
			"payment_id": payment.ID,
		})
		return collectionItems(m, payment.Amount), nil
	}

	u.deps.Audit.Warning(ctx, source, "No se encontró cobro pendiente para el pago", payment.ID, map[string]any{
		"type":   string(pc.Type),
		"email":  email,
		"amount": payment.Amount,
	})
	return nil, nil
}

func (u *ReconciliationUseCase) createHistory(ctx context.Context, h entities.PaymentHistory, source string) (entities.PaymentHistory, error) {
	if u.deps.History == nil {
		u.deps.Logger.Warn("[reconciliation][usecase] history repository not configured")
		return h, ErrStoreNotConfigured
	}
	h.CreatedAt = u.now().UTC()
	created, err := u.deps.History.Create(ctx, h)
	if err != nil {
		u.deps.Audit.Error(ctx, source, "Error creando historial", h.GatewayPaymentID, map[string]any{"error": err.Error()})
		return h, err
	}
	return created, nil
}

// ledgerKey is the payment id for approved payments. Other statuses are keyed
// per status so a pending payment can still be reconciled once approved.
func ledgerKey(p entities.GatewayPayment) string {
	if p.Approved() {
		return p.ID
	}
	return p.ID + ":" + p.Status
}

// alreadyProcessed checks the ledger first. Without a ledger, or when it
// cannot be read, an Exitoso history row for the payment id counts as processed.
func (u *ReconciliationUseCase) alreadyProcessed(ctx context.Context, payment entities.GatewayPayment) bool {
	if u.deps.Ledger == nil {
		return u.settledInHistory(ctx, payment.ID)
	}
	keys := []string{payment.ID}
	if key := ledgerKey(payment); key != payment.ID {
		keys = append(keys, key)
	}
	for _, key := range keys {
		p, err := u.deps.Ledger.Get(ctx, key)
		if err != nil {
			u.deps.Logger.WithError(err).WithField("payment_id", payment.ID).Warn("[reconciliation][usecase] ledger unavailable, checking history")
			return u.settledInHistory(ctx, payment.ID)
		}
		if p.GatewayPaymentID != "" {
			return true
		}
	}
	return false
}

func (u *ReconciliationUseCase) settledInHistory(ctx context.Context, paymentID string) bool {
	if u.deps.History == nil {
		return false
	}
	h, err := u.deps.History.FindByGatewayPaymentID(ctx, paymentID)
	if err != nil {
		u.deps.Logger.WithError(err).WithField("payment_id", paymentID).Warn("[reconciliation][usecase] history lookup failed, processing anyway")
		return false
	}
	return h.ID != "" && h.Status == entities.HistoryStatusExitoso
}

func (u *ReconciliationUseCase) markProcessed(ctx context.Context, payment entities.GatewayPayment, h entities.PaymentHistory) {
	if u.deps.Ledger == nil {
		return
	}
	paymentID := ledgerKey(payment)
	err := u.deps.Ledger.Create(ctx, entities.ProcessedPayment{
		GatewayPaymentID: paymentID,
		HistoryID:        h.ID,
		Status:           h.Status,
		ProcessedAt:      u.now().UTC(),
	})
	if errors.Is(err, entities.ErrPaymentAlreadyProcessed) {
		u.deps.Logger.WithField("payment_id", paymentID).Warn("[reconciliation][usecase] payment recorded concurrently")
		return
	}
	if err != nil {
		u.deps.Logger.WithError(err).WithField("payment_id", paymentID).Warn("[reconciliation][usecase] failed writing ledger")
	}
}

func (u *ReconciliationUseCase) lock(ctx context.Context, key string) func(context.Context) {
	noop := func(context.Context) {}
	if u.deps.Locker == nil {
		return noop
	}
	release, err := u.deps.Locker.Lock(ctx, key)
	if err != nil {
		u.deps.Logger.WithError(err).WithField("key", key).Warn("[reconciliation][usecase] lock not obtained, continuing")
		return noop
	}
	return release
}

// collectionItems builds receipt lines from the collection concepts, or a
// single line with the paid amount.
func collectionItems(m entities.ManualCollection, paid float64) []entities.ReceiptItem {
	if len(m.Concepts) == 0 {
		return []entities.ReceiptItem{{Description: manualKindLabel(m.Kind, m.Installment), Amount: paid}}
	}
	keys := make([]string, 0, len(m.Concepts))
	for k := range m.Concepts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]entities.ReceiptItem, 0, len(keys))
	for _, k := range keys {
		items = append(items, entities.ReceiptItem{Description: k, Amount: m.Concepts[k]})
	}
	return items
}

func manualKindLabel(kind entities.ManualKind, installment string) string {
	switch kind {
	case entities.ManualKindPatenteManual:
		return "Patente"
	case entities.ManualKindPlanPago:
		if installment != "" {
			return "Plan de pago - cuota " + installment
		}
		return "Plan de pago"
	}
	return "Recaudación"
}

func sortedFieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
