package notification

import (
	"context"
	"fmt"

	"brightstart/config"
	"brightstart/models"
	"brightstart/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailNotificationService delivers appointment emails over SMTP.
type MailNotificationService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailNotificationService builds the SMTP sender from AppConfig. When no
// SMTP host is configured it returns a sender that logs and drops every
// message, so development setups work without a mail relay.
func NewMailNotificationService() NotificationService {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		utils.GetLogger().Warn("SMTP host not configured; appointment emails disabled")
		return &noopNotificationService{}
	}
	return &MailNotificationService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

func (s *MailNotificationService) SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error {
	subject := "Your visit is booked"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour appointment is confirmed for %s at %s.\r\n\r\nReference: %s\r\n",
		appt.ParentName, appt.Date.Format("Monday, January 2, 2006"), appt.Time, appt.ID,
	)
	return s.send(appt.Email, subject, body)
}

func (s *MailNotificationService) SendCancellation(ctx context.Context, appt *models.Appointment) error {
	subject := "Your appointment was cancelled"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour appointment on %s at %s has been cancelled.\r\n\r\nReference: %s\r\n",
		appt.ParentName, appt.Date.Format("Monday, January 2, 2006"), appt.Time, appt.ID,
	)
	return s.send(appt.Email, subject, body)
}

func (s *MailNotificationService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

type noopNotificationService struct{}

func (s *noopNotificationService) SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Debug("email disabled, skipping booking confirmation", zap.String("appointmentId", appt.ID))
	return nil
}

func (s *noopNotificationService) SendCancellation(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Debug("email disabled, skipping cancellation notice", zap.String("appointmentId", appt.ID))
	return nil
}
