package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mailguard-live/mailguard-backend/config"
	"github.com/mailguard-live/mailguard-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"
)

// Mock mail transport
type mockMailSender struct {
	mock.Mock
}

func (m *mockMailSender) DialAndSend(msgs ...*gomail.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

func newTestService(cfg *config.MailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.NewRegistry())
}

func testMessage() *types.Message {
	return &types.Message{
		ID:      "11111111-1111-1111-1111-111111111111",
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Hi",
	}
}

func TestSendFeedbackEmailUnconfigured(t *testing.T) {
	// No MAIL_HOST: the relay is a no-op and must not touch any transport.
	svc := newTestService(&config.MailConfig{To: "info@mailguard.live", From: "info@mailguard.live"})
	require.Nil(t, svc.sender)

	err := svc.SendFeedbackEmail(context.Background(), testMessage())
	assert.NoError(t, err)
}

func TestSendFeedbackEmailSuccess(t *testing.T) {
	svc := newTestService(&config.MailConfig{
		Host: "smtp.example.com",
		Port: 587,
		To:   "info@mailguard.live",
		From: "info@mailguard.live",
	})

	sender := new(mockMailSender)
	sender.On("DialAndSend", mock.MatchedBy(func(msgs []*gomail.Message) bool {
		if len(msgs) != 1 {
			return false
		}
		m := msgs[0]
		return m.GetHeader("Subject")[0] == "Mail Guard feedback from Ana" &&
			m.GetHeader("To")[0] == "info@mailguard.live" &&
			m.GetHeader("From")[0] == "info@mailguard.live"
	})).Return(nil)
	svc.sender = sender

	err := svc.SendFeedbackEmail(context.Background(), testMessage())
	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSendFeedbackEmailTransportFailure(t *testing.T) {
	svc := newTestService(&config.MailConfig{
		Host: "smtp.example.com",
		Port: 587,
		To:   "info@mailguard.live",
		From: "info@mailguard.live",
	})

	sender := new(mockMailSender)
	sender.On("DialAndSend", mock.Anything).Return(errors.New("550 rejected"))
	svc.sender = sender

	err := svc.SendFeedbackEmail(context.Background(), testMessage())
	assert.ErrorContains(t, err, "email send failed")
	sender.AssertExpectations(t)
}

func TestNewEmailServiceTransportSelection(t *testing.T) {
	withHost := newTestService(&config.MailConfig{Host: "smtp.example.com", Port: 587})
	assert.NotNil(t, withHost.sender)

	withoutHost := newTestService(&config.MailConfig{Port: 587})
	assert.Nil(t, withoutHost.sender)
}
