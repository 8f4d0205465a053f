package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/infrastructure/logger"
	mock_interfaces "traful_pagos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type receiptMocks struct {
	history  *mock_interfaces.MockIPaymentHistoryRepository
	renderer *mock_interfaces.MockIReceiptRenderer
	sender   *mock_interfaces.MockIEmailSender
}

func newReceiptUseCase(t *testing.T) (*ReceiptUseCase, receiptMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := receiptMocks{
		history:  mock_interfaces.NewMockIPaymentHistoryRepository(ctrl),
		renderer: mock_interfaces.NewMockIReceiptRenderer(ctrl),
		sender:   mock_interfaces.NewMockIEmailSender(ctrl),
	}
	return NewReceiptUseCase(m.history, m.renderer, m.sender, logger.Discard()), m
}

var receiptHistory = entities.PaymentHistory{
	ID:               "recH",
	Status:           entities.HistoryStatusExitoso,
	Amount:           1500,
	Detail:           "Pago <web>",
	GatewayPaymentID: "123",
	Items:            []entities.ReceiptItem{{Description: "Lote 12 - 03/2026", Amount: 1500}},
	Email:            "vecino@example.com",
}

func TestReceiptUseCase_GetReceiptPDF(t *testing.T) {
	t.Run("renders the stored record", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.history.EXPECT().GetByID(gomock.Any(), "recH").Return(receiptHistory, nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Receipt) ([]byte, error) {
			if r.Number != "recH" {
				t.Fatalf("unexpected receipt: %+v", r)
			}
			return []byte("%PDF"), nil
		})

		pdf, err := uc.GetReceiptPDF(context.Background(), " recH ")
		if err != nil || string(pdf) != "%PDF" {
			t.Fatalf("unexpected result %q, %v", pdf, err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc, _ := newReceiptUseCase(t)
		if _, err := uc.GetReceiptPDF(context.Background(), ""); !errors.Is(err, ErrInvalidHistoryID) {
			t.Fatalf("expected ErrInvalidHistoryID, got %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.history.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.PaymentHistory{}, nil)
		if _, err := uc.GetReceiptPDF(context.Background(), "nope"); !errors.Is(err, ErrHistoryNotFound) {
			t.Fatalf("expected ErrHistoryNotFound, got %v", err)
		}
	})

	t.Run("renderer failure", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.history.EXPECT().GetByID(gomock.Any(), "recH").Return(receiptHistory, nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))
		if _, err := uc.GetReceiptPDF(context.Background(), "recH"); !errors.Is(err, ErrReceiptUnavailable) {
			t.Fatalf("expected ErrReceiptUnavailable, got %v", err)
		}
	})

	t.Run("store not configured", func(t *testing.T) {
		uc := NewReceiptUseCase(nil, nil, nil, logger.Discard())
		if _, err := uc.GetReceiptPDF(context.Background(), "recH"); !errors.Is(err, ErrStoreNotConfigured) {
			t.Fatalf("expected ErrStoreNotConfigured, got %v", err)
		}
	})
}

func TestReceiptUseCase_SendReceipt(t *testing.T) {
	t.Run("sends the pdf as attachment", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.history.EXPECT().GetByID(gomock.Any(), "recH").Return(receiptHistory, nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg entities.EmailMessage) (string, error) {
			if len(msg.To) != 1 || msg.To[0] != "a@b.com" {
				t.Fatalf("unexpected recipients: %v", msg.To)
			}
			if len(msg.Attachments) != 1 || msg.Attachments[0].Filename != "comprobante_recH.pdf" || !bytes.Equal(msg.Attachments[0].Content, []byte("%PDF")) {
				t.Fatalf("unexpected attachments: %+v", msg.Attachments)
			}
			if !strings.Contains(msg.HTML, "Pago &lt;web&gt;") {
				t.Fatalf("detail not escaped: %s", msg.HTML)
			}
			return "msg-1", nil
		})

		if err := uc.SendReceipt(context.Background(), "recH", " a@b.com "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid email is rejected before loading", func(t *testing.T) {
		uc, _ := newReceiptUseCase(t)
		if err := uc.SendReceipt(context.Background(), "recH", "no-es-mail"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("provider error", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.history.EXPECT().GetByID(gomock.Any(), "recH").Return(receiptHistory, nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		if err := uc.SendReceipt(context.Background(), "recH", "a@b.com"); !errors.Is(err, ErrEmailUnavailable) {
			t.Fatalf("expected ErrEmailUnavailable, got %v", err)
		}
	})
}

func TestReceiptUseCase_GetHistoryByPaymentID(t *testing.T) {
	uc, m := newReceiptUseCase(t)

	if _, err := uc.GetHistoryByPaymentID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
	}

	m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "999").Return(entities.PaymentHistory{}, nil)
	if _, err := uc.GetHistoryByPaymentID(context.Background(), "999"); !errors.Is(err, ErrHistoryNotFound) {
		t.Fatalf("expected ErrHistoryNotFound, got %v", err)
	}

	m.history.EXPECT().FindByGatewayPaymentID(gomock.Any(), "123").Return(receiptHistory, nil)
	h, err := uc.GetHistoryByPaymentID(context.Background(), "123")
	if err != nil || h.ID != "recH" {
		t.Fatalf("unexpected result %+v, %v", h, err)
	}
}

func TestReceiptUseCase_Deliver(t *testing.T) {
	t.Run("without recipient only the pdf is produced", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)

		out := uc.Deliver(context.Background(), receiptHistory, "")
		if !out.PDFGenerated || out.EmailSent || out.Error == "" || len(out.PDF) == 0 {
			t.Fatalf("unexpected delivery: %+v", out)
		}
	})

	t.Run("render failure is reported not returned", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		out := uc.Deliver(context.Background(), receiptHistory, "a@b.com")
		if out.PDFGenerated || out.EmailSent || out.Error == "" {
			t.Fatalf("unexpected delivery: %+v", out)
		}
	})

	t.Run("full delivery", func(t *testing.T) {
		uc, m := newReceiptUseCase(t)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil)

		out := uc.Deliver(context.Background(), receiptHistory, "a@b.com")
		if !out.PDFGenerated || !out.EmailSent || out.Error != "" {
			t.Fatalf("unexpected delivery: %+v", out)
		}
	})
}
