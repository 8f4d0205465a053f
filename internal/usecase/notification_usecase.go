package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPaymentLink = errors.New("invalid payment link request")
	ErrInvalidUpload      = errors.New("invalid proof upload")
)

const (
	pathFrontendUpload = "/subir-comprobante"
	maxProofSize       = 10 << 20
)

// PaymentLinkEmail is a payment link sent by staff to a taxpayer.
type PaymentLinkEmail struct {
	Email   string
	Amount  float64
	Concept string
	Link    string
}

// ProofUpload is a payment proof uploaded by a taxpayer.
type ProofUpload struct {
	Email    string
	Name     string
	Amount   string
	Filename string
	Content  []byte
}

// INotificationUseCase sends staff and taxpayer notifications by email.
type INotificationUseCase interface {
	SendPaymentLink(ctx context.Context, req PaymentLinkEmail) error
	UploadProof(ctx context.Context, up ProofUpload) error
}

type NotificationUseCase struct {
	sender     interfaces.IEmailSender
	audit      *AuditLogger
	urls       CheckoutURLs
	adminEmail string
	logg       *logrus.Logger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(sender interfaces.IEmailSender, audit *AuditLogger, urls CheckoutURLs, adminEmail string, logg *logrus.Logger) *NotificationUseCase {
	return &NotificationUseCase{sender: sender, audit: audit, urls: urls, adminEmail: strings.TrimSpace(adminEmail), logg: logg}
}

// SendPaymentLink emails the link together with a button to upload the proof
// of payment afterwards.
func (u *NotificationUseCase) SendPaymentLink(ctx context.Context, req PaymentLinkEmail) error {
	email := strings.TrimSpace(req.Email)
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	link := strings.TrimSpace(req.Link)
	if _, err := url.ParseRequestURI(link); err != nil {
		return fmt.Errorf("%w: link", ErrInvalidPaymentLink)
	}
	if req.Amount < 0 {
		return fmt.Errorf("%w: monto", ErrInvalidPaymentLink)
	}
	if u.sender == nil {
		return ErrEmailUnavailable
	}

	q := url.Values{}
	q.Set("email", email)
	if req.Amount > 0 {
		q.Set("monto", strconv.FormatFloat(req.Amount, 'f', 2, 64))
	}
	uploadURL := strings.TrimRight(u.urls.FrontendURL, "/") + pathFrontendUpload + "?" + q.Encode()

	concept := firstNonEmpty(req.Concept, "Pago municipal")
	id, err := u.sender.Send(ctx, entities.EmailMessage{
		To:      []string{email},
		Subject: "Link de pago - " + concept,
		HTML:    paymentLinkHTML(concept, req.Amount, link, uploadURL),
	})
	if err != nil {
		u.audit.Error(ctx, SourceNotification, "Error enviando link de pago", email, map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %v", ErrEmailUnavailable, err)
	}
	u.audit.Info(ctx, SourceNotification, "Link de pago enviado", id, map[string]any{
		"email":   email,
		"monto":   req.Amount,
		"concept": concept,
	})
	return nil
}

// UploadProof forwards the uploaded file to the administration mailbox.
func (u *NotificationUseCase) UploadProof(ctx context.Context, up ProofUpload) error {
	email := strings.TrimSpace(up.Email)
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	if len(up.Content) == 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidUpload)
	}
	if len(up.Content) > maxProofSize {
		return fmt.Errorf("%w: file too large", ErrInvalidUpload)
	}
	if u.sender == nil || u.adminEmail == "" {
		return ErrEmailUnavailable
	}

	filename := filepath.Base(strings.TrimSpace(up.Filename))
	if filename == "." || filename == "/" || filename == "" {
		filename = "comprobante"
	}

	var b strings.Builder
	b.WriteString("<h2>Nuevo comprobante de pago</h2>")
	fmt.Fprintf(&b, "<p>Email: %s</p>", html.EscapeString(email))
	if up.Name != "" {
		fmt.Fprintf(&b, "<p>Nombre: %s</p>", html.EscapeString(up.Name))
	}
	if up.Amount != "" {
		fmt.Fprintf(&b, "<p>Monto informado: $ %s</p>", html.EscapeString(up.Amount))
	}

	_, err := u.sender.Send(ctx, entities.EmailMessage{
		To:          []string{u.adminEmail},
		Subject:     "Comprobante recibido - " + email,
		HTML:        b.String(),
		Attachments: []entities.EmailAttachment{{Filename: filename, Content: up.Content}},
	})
	if err != nil {
		u.audit.Error(ctx, SourceNotification, "Error reenviando comprobante", email, map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %v", ErrEmailUnavailable, err)
	}
	u.audit.Info(ctx, SourceNotification, "Comprobante recibido", email, map[string]any{
		"filename": filename,
		"size":     len(up.Content),
	})
	return nil
}

func paymentLinkHTML(concept string, amount float64, link, uploadURL string) string {
	var b strings.Builder
	b.WriteString("<h2>Municipalidad - Link de pago</h2>")
	fmt.Fprintf(&b, "<p>Concepto: <strong>%s</strong></p>", html.EscapeString(concept))
	if amount > 0 {
		fmt.Fprintf(&b, "<p>Monto: <strong>$ %.2f</strong></p>", amount)
	}
	fmt.Fprintf(&b, `<p><a href="%s" style="background:#009ee3;color:#fff;padding:10px 16px;border-radius:4px;text-decoration:none">Pagar ahora</a></p>`, html.EscapeString(link))
	if uploadURL != "" {
		b.WriteString("<p>Una vez realizado el pago, adjunte el comprobante:</p>")
		fmt.Fprintf(&b, `<p><a href="%s" style="background:#198754;color:#fff;padding:10px 16px;border-radius:4px;text-decoration:none">Adjuntar comprobante</a></p>`, html.EscapeString(uploadURL))
	}
	return b.String()
}
