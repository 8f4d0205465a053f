package email

import (
	"context"
	"errors"
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"
)

var ErrEmailNotConfigured = errors.New("email sender not configured")
var ErrNoRecipients = errors.New("email without recipients")

type ResendSender struct {
	client *resend.Client
	from   string
	logg   *logrus.Logger
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey, from string, logg *logrus.Logger) (*ResendSender, error) {
	if strings.TrimSpace(apiKey) == "" {
		logg.Warn("[email][resend] missing RESEND_API_KEY")
		return nil, ErrEmailNotConfigured
	}
	return &ResendSender{client: resend.NewClient(apiKey), from: from, logg: logg}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg entities.EmailMessage) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrEmailNotConfigured
	}
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}

	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		s.logg.WithError(err).WithField("subject", msg.Subject).Error("[email][resend] send failed")
		return "", err
	}
	s.logg.WithFields(logrus.Fields{"email_id": sent.Id, "subject": msg.Subject}).Info("[email][resend] sent")
	return sent.Id, nil
}
