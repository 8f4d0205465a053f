package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/infrastructure/logger"
	mock_interfaces "traful_pagos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_SendPaymentLink(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, testURLs, "", logger.Discard())
		if err := uc.SendPaymentLink(context.Background(), PaymentLinkEmail{Email: "x", Link: "https://mp"}); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
		if err := uc.SendPaymentLink(context.Background(), PaymentLinkEmail{Email: "a@b.com", Link: "not a url"}); !errors.Is(err, ErrInvalidPaymentLink) {
			t.Fatalf("expected ErrInvalidPaymentLink, got %v", err)
		}
		if err := uc.SendPaymentLink(context.Background(), PaymentLinkEmail{Email: "a@b.com", Link: "https://mp"}); !errors.Is(err, ErrEmailUnavailable) {
			t.Fatalf("expected ErrEmailUnavailable, got %v", err)
		}
	})

	t.Run("sends link with upload button", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewNotificationUseCase(sender, nil, testURLs, "", logger.Discard())

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg entities.EmailMessage) (string, error) {
			if !strings.Contains(msg.HTML, "https://mpago.la/abc") {
				t.Fatalf("missing payment link: %s", msg.HTML)
			}
			if !strings.Contains(msg.HTML, "http://front/subir-comprobante?email=a%40b.com&amp;monto=250.00") {
				t.Fatalf("missing upload link: %s", msg.HTML)
			}
			return "id", nil
		})

		err := uc.SendPaymentLink(context.Background(), PaymentLinkEmail{Email: "a@b.com", Amount: 250, Concept: "Plan", Link: "https://mpago.la/abc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_UploadProof(t *testing.T) {
	t.Run("admin mailbox not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewNotificationUseCase(sender, nil, testURLs, "", logger.Discard())

		err := uc.UploadProof(context.Background(), ProofUpload{Email: "a@b.com", Content: []byte("x")})
		if !errors.Is(err, ErrEmailUnavailable) {
			t.Fatalf("expected ErrEmailUnavailable, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, testURLs, "admin@muni.gob.ar", logger.Discard())
		if err := uc.UploadProof(context.Background(), ProofUpload{Email: "a@b.com"}); !errors.Is(err, ErrInvalidUpload) {
			t.Fatalf("expected ErrInvalidUpload, got %v", err)
		}
	})

	t.Run("forwards to admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewNotificationUseCase(sender, nil, testURLs, "admin@muni.gob.ar", logger.Discard())

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg entities.EmailMessage) (string, error) {
			if msg.To[0] != "admin@muni.gob.ar" || len(msg.Attachments) != 1 || msg.Attachments[0].Filename != "pago.pdf" {
				t.Fatalf("unexpected email: %+v", msg)
			}
			return "id", nil
		})

		err := uc.UploadProof(context.Background(), ProofUpload{Email: "a@b.com", Amount: "100", Filename: "../../pago.pdf", Content: []byte("%PDF")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
