package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// SMSSender delivers a message to a phone number and returns a provider
// message ID. Implementations wrap a real SMS provider; delivery is treated
// as fire-and-forget by callers.
type SMSSender interface {
	Send(ctx context.Context, phoneNumber, body string) (string, error)
}

// LogSMSSender writes messages to the log instead of delivering them. Used
// in development and tests, mirroring the mocked provider client of the
// original deployment.
type LogSMSSender struct {
	log *logrus.Logger
}

func NewLogSMSSender(log *logrus.Logger) *LogSMSSender {
	return &LogSMSSender{log: log}
}

func (s *LogSMSSender) Send(ctx context.Context, phoneNumber, body string) (string, error) {
	messageID := fmt.Sprintf("mock-%d", time.Now().UnixNano())
	s.log.WithFields(logrus.Fields{
		"to":         phoneNumber,
		"message_id": messageID,
	}).Infof("[MOCK SMS] %s", body)
	return messageID, nil
}
