package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidHistoryID   = errors.New("invalid history id")
	ErrInvalidPaymentID   = errors.New("invalid payment id")
	ErrHistoryNotFound    = errors.New("history record not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrReceiptUnavailable = errors.New("receipt unavailable")
	ErrEmailUnavailable   = errors.New("email delivery unavailable")
	ErrStoreNotConfigured = errors.New("store not configured")
	errMissingRecipient   = errors.New("no recipient email")
)

const receiptFilenameTemplate = "comprobante_%s.pdf"

// ReceiptDelivery is the outcome of the best-effort receipt step.
type ReceiptDelivery struct {
	PDFGenerated bool   `json:"pdf_generated"`
	EmailSent    bool   `json:"email_sent"`
	Error        string `json:"error,omitempty"`
	PDF          []byte `json:"-"`
}

// IReceiptUseCase rebuilds receipts from history records and delivers them.
type IReceiptUseCase interface {
	GetReceiptPDF(ctx context.Context, historyID string) ([]byte, error)
	SendReceipt(ctx context.Context, historyID, email string) error
	GetHistoryByPaymentID(ctx context.Context, paymentID string) (entities.PaymentHistory, error)
	Deliver(ctx context.Context, h entities.PaymentHistory, email string) ReceiptDelivery
	Render(ctx context.Context, h entities.PaymentHistory) ([]byte, error)
}

type ReceiptUseCase struct {
	history  interfaces.IPaymentHistoryRepository
	renderer interfaces.IReceiptRenderer
	sender   interfaces.IEmailSender
	logg     *logrus.Logger
}

var _ IReceiptUseCase = (*ReceiptUseCase)(nil)

func NewReceiptUseCase(history interfaces.IPaymentHistoryRepository, renderer interfaces.IReceiptRenderer, sender interfaces.IEmailSender, logg *logrus.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{history: history, renderer: renderer, sender: sender, logg: logg}
}

func (u *ReceiptUseCase) GetReceiptPDF(ctx context.Context, historyID string) ([]byte, error) {
	h, err := u.loadHistory(ctx, historyID)
	if err != nil {
		return nil, err
	}
	return u.Render(ctx, h)
}

func (u *ReceiptUseCase) SendReceipt(ctx context.Context, historyID, email string) error {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	h, err := u.loadHistory(ctx, historyID)
	if err != nil {
		return err
	}
	pdf, err := u.Render(ctx, h)
	if err != nil {
		return err
	}
	return u.send(ctx, h, email, pdf)
}

func (u *ReceiptUseCase) GetHistoryByPaymentID(ctx context.Context, paymentID string) (entities.PaymentHistory, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentHistory{}, ErrInvalidPaymentID
	}
	if u.history == nil {
		return entities.PaymentHistory{}, ErrStoreNotConfigured
	}
	h, err := u.history.FindByGatewayPaymentID(ctx, paymentID)
	if err != nil {
		return entities.PaymentHistory{}, err
	}
	if h.ID == "" {
		return entities.PaymentHistory{}, ErrHistoryNotFound
	}
	return h, nil
}

// Deliver renders the receipt and emails it when a recipient is given.
// Failures are reported in the result and never returned as errors.
func (u *ReceiptUseCase) Deliver(ctx context.Context, h entities.PaymentHistory, email string) ReceiptDelivery {
	var out ReceiptDelivery
	pdf, err := u.Render(ctx, h)
	if err != nil {
		u.logg.WithError(err).WithField("history_id", h.ID).Warn("[receipt][usecase] pdf not generated")
		out.Error = err.Error()
		return out
	}
	out.PDFGenerated = true
	out.PDF = pdf

	email = strings.TrimSpace(email)
	if email == "" {
		out.Error = errMissingRecipient.Error()
		return out
	}

	if err := u.send(ctx, h, email, pdf); err != nil {
		u.logg.WithError(err).WithField("history_id", h.ID).Warn("[receipt][usecase] email not sent")
		out.Error = err.Error()
		return out
	}
	out.EmailSent = true
	return out
}

func (u *ReceiptUseCase) Render(ctx context.Context, h entities.PaymentHistory) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrReceiptUnavailable
	}
	pdf, err := u.renderer.Render(ctx, entities.ReceiptFromHistory(h))
	if err != nil || len(pdf) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrReceiptUnavailable, err)
	}
	return pdf, nil
}

func (u *ReceiptUseCase) loadHistory(ctx context.Context, historyID string) (entities.PaymentHistory, error) {
	historyID = strings.TrimSpace(historyID)
	if historyID == "" {
		return entities.PaymentHistory{}, ErrInvalidHistoryID
	}
	if u.history == nil {
		return entities.PaymentHistory{}, ErrStoreNotConfigured
	}
	h, err := u.history.GetByID(ctx, historyID)
	if err != nil {
		return entities.PaymentHistory{}, err
	}
	if h.ID == "" {
		return entities.PaymentHistory{}, ErrHistoryNotFound
	}
	return h, nil
}

func (u *ReceiptUseCase) send(ctx context.Context, h entities.PaymentHistory, email string, pdf []byte) error {
	if u.sender == nil {
		return ErrEmailUnavailable
	}
	_, err := u.sender.Send(ctx, entities.EmailMessage{
		To:      []string{email},
		Subject: "Comprobante de pago - Municipalidad",
		HTML:    receiptEmailHTML(h),
		Attachments: []entities.EmailAttachment{
			{Filename: fmt.Sprintf(receiptFilenameTemplate, h.ID), Content: pdf},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmailUnavailable, err)
	}
	return nil
}

func receiptEmailHTML(h entities.PaymentHistory) string {
	var b strings.Builder
	b.WriteString("<h2>Comprobante de pago</h2>")
	fmt.Fprintf(&b, "<p>Estado: <strong>%s</strong></p>", html.EscapeString(string(h.Status)))
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(h.Detail))
	b.WriteString("<ul>")
	for _, it := range h.Items {
		fmt.Fprintf(&b, "<li>%s: $ %.2f</li>", html.EscapeString(it.Description), it.Amount)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Total: <strong>$ %.2f</strong></p>", h.Amount)
	b.WriteString("<p>Adjuntamos el comprobante en formato PDF.</p>")
	return b.String()
}

var validate = validator.New()

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
