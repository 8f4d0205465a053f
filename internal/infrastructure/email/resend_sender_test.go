package email

import (
	"context"
	"errors"
	"testing"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/infrastructure/logger"
)

func TestNewResendSender_MissingKey(t *testing.T) {
	_, err := NewResendSender("", "a@b.c", logger.Discard())
	if !errors.Is(err, ErrEmailNotConfigured) {
		t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
	}
}

func TestResendSender_NilSender(t *testing.T) {
	var s *ResendSender
	if _, err := s.Send(context.Background(), entities.EmailMessage{To: []string{"x@y.z"}}); !errors.Is(err, ErrEmailNotConfigured) {
		t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
	}
}

func TestResendSender_NoRecipients(t *testing.T) {
	s, err := NewResendSender("re_test", "a@b.c", logger.Discard())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Send(context.Background(), entities.EmailMessage{Subject: "x"}); !errors.Is(err, ErrNoRecipients) {
		t.Fatalf("expected ErrNoRecipients, got %v", err)
	}
}
