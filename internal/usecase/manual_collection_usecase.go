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

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrInvalidManualCollection = errors.New("invalid manual collection")

var hundred = decimal.NewFromInt(100)

// ManualCollectionInput is a collection registered by municipal staff.
// Concepts take precedence over Amount when both are given.
type ManualCollectionInput struct {
	Date        string
	Name        string
	DNI         string
	Email       string
	Concepts    map[string]float64
	Notes       map[string]string
	Amount      float64
	Discount    float64
	Method      string
	Transfer    string
	Operator    string
	Domain      string
	Installment string
}

// ManualCollectionResult is returned to the staff form.
type ManualCollectionResult struct {
	RecordID     string
	HistoryID    string
	Status       entities.CollectionStatus
	Subtotal     float64
	Total        float64
	PDF          []byte
	PDFGenerated bool
	EmailSent    bool
	PaymentLink  string
}

// IManualCollectionUseCase registers counter, patente and payment plan collections.
type IManualCollectionUseCase interface {
	Register(ctx context.Context, kind entities.ManualKind, in ManualCollectionInput) (ManualCollectionResult, error)
}

type ManualCollectionUseCase struct {
	collections interfaces.IManualCollectionRepository
	history     interfaces.IPaymentHistoryRepository
	gateway     interfaces.IPaymentGateway
	receipts    IReceiptUseCase
	sender      interfaces.IEmailSender
	audit       *AuditLogger
	urls        CheckoutURLs
	logg        *logrus.Logger
	now         func() time.Time
}

var _ IManualCollectionUseCase = (*ManualCollectionUseCase)(nil)

func NewManualCollectionUseCase(
	collections interfaces.IManualCollectionRepository,
	history interfaces.IPaymentHistoryRepository,
	gateway interfaces.IPaymentGateway,
	receipts IReceiptUseCase,
	sender interfaces.IEmailSender,
	audit *AuditLogger,
	urls CheckoutURLs,
	logg *logrus.Logger,
) *ManualCollectionUseCase {
	return &ManualCollectionUseCase{
		collections: collections,
		history:     history,
		gateway:     gateway,
		receipts:    receipts,
		sender:      sender,
		audit:       audit,
		urls:        urls,
		logg:        logg,
		now:         time.Now,
	}
}

// Register stores the collection. Cash collections are recorded as paid with
// a history entry and a receipt; online ones are stored Pendiente and get a
// Mercado Pago link that the webhook later reconciles.
func (u *ManualCollectionUseCase) Register(ctx context.Context, kind entities.ManualKind, in ManualCollectionInput) (ManualCollectionResult, error) {
	m, err := u.build(kind, in)
	if err != nil {
		return ManualCollectionResult{}, err
	}
	if u.collections == nil {
		return ManualCollectionResult{}, ErrStoreNotConfigured
	}
	logg := u.logg.WithFields(logrus.Fields{"kind": kind, "method": m.Method, "total": m.Amount})
	logg.Info("[manual][usecase] register start")

	if m.Method == entities.PaymentMethodMercadoPago {
		return u.registerOnline(ctx, m)
	}

	m.Status = entities.CollectionStatusPagado
	created, err := u.collections.Create(ctx, m)
	if err != nil {
		u.audit.Error(ctx, SourceManualCollection, "Error registrando cobro manual", "", map[string]any{"error": err.Error(), "type": string(kind)})
		return ManualCollectionResult{}, err
	}
	res := ManualCollectionResult{RecordID: created.ID, Status: created.Status, Subtotal: m.Subtotal, Total: m.Amount}

	h := entities.PaymentHistory{
		Status:      entities.HistoryStatusExitoso,
		Amount:      m.Amount,
		Detail:      fmt.Sprintf("Pago %s - %s", manualKindLabel(kind, m.Installment), m.Name),
		Items:       collectionItems(m, m.Amount),
		Email:       m.Email,
		PaymentType: string(kind),
		CreatedAt:   u.now().UTC(),
	}
	if u.history != nil {
		if saved, err := u.history.Create(ctx, h); err != nil {
			u.audit.Error(ctx, SourceManualCollection, "Error creando historial de cobro manual", created.ID, map[string]any{"error": err.Error()})
		} else {
			h = saved
			res.HistoryID = saved.ID
		}
	}
	if h.ID == "" {
		h.ID = created.ID
	}

	if u.receipts != nil {
		delivery := u.receipts.Deliver(ctx, h, m.Email)
		res.PDF = delivery.PDF
		res.PDFGenerated = delivery.PDFGenerated
		res.EmailSent = delivery.EmailSent
		if delivery.Error != "" && m.Email != "" {
			u.audit.Warning(ctx, SourceReceipt, "Comprobante de cobro manual no entregado", created.ID, map[string]any{"error": delivery.Error})
		}
	}

	u.audit.Info(ctx, SourceManualCollection, "Cobro manual registrado", created.ID, map[string]any{
		"type":   string(kind),
		"total":  m.Amount,
		"method": m.Method,
	})
	return res, nil
}

func (u *ManualCollectionUseCase) registerOnline(ctx context.Context, m entities.ManualCollection) (ManualCollectionResult, error) {
	if m.Email == "" {
		return ManualCollectionResult{}, fmt.Errorf("%w: email is required for online payments", ErrInvalidManualCollection)
	}
	if u.gateway == nil {
		return ManualCollectionResult{}, ErrGatewayNotConfigured
	}

	m.Status = entities.CollectionStatusPendiente
	created, err := u.collections.Create(ctx, m)
	if err != nil {
		u.audit.Error(ctx, SourceManualCollection, "Error registrando cobro manual", "", map[string]any{"error": err.Error(), "type": string(m.Kind)})
		return ManualCollectionResult{}, err
	}

	pc := entities.PaymentContext{
		Type:        m.Kind,
		Email:       m.Email,
		Amount:      m.Amount,
		Name:        m.Name,
		DNI:         m.DNI,
		Domain:      m.Domain,
		Installment: m.Installment,
	}
	ref, err := pc.Encode()
	if err != nil {
		return ManualCollectionResult{}, fmt.Errorf("%w: %v", ErrInvalidManualCollection, err)
	}

	pref, err := u.gateway.CreatePreference(ctx, entities.PreferenceRequest{
		Title:             manualKindLabel(m.Kind, m.Installment) + " - " + m.Name,
		UnitPrice:         m.Amount,
		ExternalReference: ref,
		PayerEmail:        m.Email,
		SuccessURL:        u.urls.SuccessURL(),
		FailureURL:        u.urls.FailureURL(),
		PendingURL:        u.urls.PendingURL(),
		NotificationURL:   strings.TrimRight(u.urls.BackendURL, "/") + PathPaymentWebhook,
	})
	if err != nil {
		u.audit.Error(ctx, SourceManualCollection, "Error creando link de pago para cobro manual", created.ID, map[string]any{"error": err.Error()})
		return ManualCollectionResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	link := firstNonEmpty(pref.InitPoint, pref.SandboxInitPoint)

	res := ManualCollectionResult{
		RecordID:    created.ID,
		Status:      created.Status,
		Subtotal:    m.Subtotal,
		Total:       m.Amount,
		PaymentLink: link,
	}
	if u.sender != nil {
		_, err := u.sender.Send(ctx, entities.EmailMessage{
			To:      []string{m.Email},
			Subject: "Link de pago - Municipalidad",
			HTML:    paymentLinkHTML(manualKindLabel(m.Kind, m.Installment), m.Amount, link, ""),
		})
		if err != nil {
			u.logg.WithError(err).WithField("record_id", created.ID).Warn("[manual][usecase] payment link email not sent")
		} else {
			res.EmailSent = true
		}
	}

	u.audit.Info(ctx, SourceManualCollection, "Cobro manual pendiente con link de pago", created.ID, map[string]any{
		"type":          string(m.Kind),
		"total":         m.Amount,
		"preference_id": pref.ID,
	})
	return res, nil
}

// build validates the input and computes subtotal, discount and total.
func (u *ManualCollectionUseCase) build(kind entities.ManualKind, in ManualCollectionInput) (entities.ManualCollection, error) {
	if !kind.Valid() {
		return entities.ManualCollection{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidManualCollection, kind)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.ManualCollection{}, fmt.Errorf("%w: nombre is required", ErrInvalidManualCollection)
	}
	email := strings.TrimSpace(in.Email)
	if email != "" && !validEmail(email) {
		return entities.ManualCollection{}, ErrInvalidEmail
	}
	if in.Discount < 0 || in.Discount > 100 {
		return entities.ManualCollection{}, fmt.Errorf("%w: descuento must be between 0 and 100", ErrInvalidManualCollection)
	}

	method := strings.ToLower(strings.TrimSpace(in.Method))
	switch method {
	case "":
		method = entities.PaymentMethodCash
	case entities.PaymentMethodCash, entities.PaymentMethodMercadoPago:
	default:
		return entities.ManualCollection{}, fmt.Errorf("%w: unknown medio_pago %q", ErrInvalidManualCollection, in.Method)
	}

	subtotal := decimal.Zero
	concepts := map[string]float64{}
	keys := make([]string, 0, len(in.Concepts))
	for k := range in.Concepts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := in.Concepts[k]
		if v < 0 {
			return entities.ManualCollection{}, fmt.Errorf("%w: negative amount for %q", ErrInvalidManualCollection, k)
		}
		if v == 0 {
			continue
		}
		concepts[k] = v
		subtotal = subtotal.Add(decimal.NewFromFloat(v))
	}
	if len(concepts) == 0 {
		concepts = nil
		subtotal = decimal.NewFromFloat(in.Amount)
	}
	if !subtotal.IsPositive() {
		return entities.ManualCollection{}, fmt.Errorf("%w: amount must be positive", ErrInvalidManualCollection)
	}

	discount := decimal.NewFromFloat(in.Discount)
	total := subtotal.Sub(subtotal.Mul(discount).Div(hundred)).Round(2)
	sub, _ := subtotal.Round(2).Float64()
	tot, _ := total.Float64()

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = u.now().Format("2006-01-02")
	}

	return entities.ManualCollection{
		Kind:        kind,
		Date:        date,
		Name:        name,
		DNI:         strings.TrimSpace(in.DNI),
		Email:       email,
		Subtotal:    sub,
		Discount:    in.Discount,
		Amount:      tot,
		Method:      method,
		Transfer:    strings.TrimSpace(in.Transfer),
		Operator:    strings.TrimSpace(in.Operator),
		Concepts:    concepts,
		Notes:       in.Notes,
		Domain:      strings.ToUpper(strings.TrimSpace(in.Domain)),
		Installment: strings.TrimSpace(in.Installment),
		CreatedAt:   u.now().UTC(),
	}, nil
}
