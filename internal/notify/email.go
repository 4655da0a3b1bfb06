package notify

import (
	"fmt"
	"net/smtp"

	"github.com/equilease/lease-service/internal/config"
	"github.com/equilease/lease-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendProposal mails a deal proposal to the given landlord addresses.
func (s *Sender) SendProposal(to []string, businessName, proposalText string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = to
	e.Subject = fmt.Sprintf("EquiLease Deal Proposal: %s", businessName)

	body := fmt.Sprintf(
		"A new hybrid lease proposal is ready for your review.\n\n"+
			"Tenant: %s\n\n%s\n\nBest regards,\nEquiLease Platform",
		businessName, proposalText,
	)
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send proposal for %s: %v", businessName, err)
		return fmt.Errorf("failed to send proposal email: %w", err)
	}

	s.logger.Infof("Email sent to %v: %s", to, e.Subject)
	return nil
}

// SendPendingDigest mails a summary of deals awaiting review.
func (s *Sender) SendPendingDigest(to string, deals []models.Deal) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("EquiLease: %d deal(s) pending review", len(deals))

	body := "The following deal applications are awaiting your review:\n\n"
	for i := range deals {
		d := &deals[i]
		body += fmt.Sprintf(
			"- %s (%s, %s) — risk %.1f/100, upfront %.1f%%, equity %.1f%%, submitted %s\n",
			d.BusinessName, d.BusinessType, d.Location,
			d.RiskScore, d.UpfrontRentPercent, d.EquityPercent,
			d.CreatedAt.Format("2006-01-02"),
		)
	}
	body += "\nBest regards,\nEquiLease Platform"
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send pending digest to %s: %v", to, err)
		return fmt.Errorf("failed to send pending digest: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}
