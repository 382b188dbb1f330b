package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mailguard-live/mailguard-backend/config"
	"github.com/mailguard-live/mailguard-backend/logger"
	"github.com/mailguard-live/mailguard-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	gomail "gopkg.in/gomail.v2"
)

// MailSender is the transport used to deliver a composed message.
// *gomail.Dialer satisfies it.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService relays newly created feedback messages to the configured
// recipient over SMTP. When no MAIL_HOST is configured the service carries no
// transport and every send succeeds trivially without network contact.
type EmailService struct {
	config  *config.MailConfig
	sender  MailSender
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.MailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.MailConfig, reg prometheus.Registerer) *EmailService {
	var sender MailSender
	if cfg.Enabled() {
		dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
		dialer.SSL = cfg.Secure
		sender = dialer
	}

	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mailguard_email_send_duration_seconds",
			Help:    "Time taken to send feedback emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mailguard_email_errors_total",
			Help: "Total number of feedback email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mailguard_emails_sent_total",
			Help: "Total number of feedback emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		sender:  sender,
		metrics: metrics,
	}
}

// SendFeedbackEmail composes and sends the notification for a newly created
// feedback message. Returns nil without network contact when the relay is
// unconfigured. A non-nil error is an ordinary fail-with-reason outcome the
// caller is expected to log and suppress.
func (s *EmailService) SendFeedbackEmail(_ context.Context, msg *types.Message) error {
	log := logger.GetLogger()

	if s.sender == nil {
		log.Debugw("Mail transport not configured, skipping feedback email",
			"messageID", msg.ID)
		return nil
	}

	startTime := time.Now()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.From)
	m.SetHeader("To", s.config.To)
	m.SetHeader("Subject", fmt.Sprintf("Mail Guard feedback from %s", msg.Name))
	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Message))

	if err := s.sender.DialAndSend(m); err != nil {
		s.metrics.errorCount.Inc()
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Feedback email sent",
		"messageID", msg.ID,
		"to", s.config.To,
		"submitter", logger.MaskEmail(msg.Email))
	return nil
}
