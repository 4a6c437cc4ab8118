package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"toolshed-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendLoanReminder(ctx context.Context, to, username string, entries []domain.RentalHistoryEntry) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThe following tools have been out for a while:\n\n", username)
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s %s, lent to %s since %s\n",
			e.ToolBrand, e.ToolName, e.FriendName, e.Rental.RentalTimestamp.Format("2006-01-02"))
	}
	b.WriteString("\nYou may want to ask for them back.\n\nToolshed")

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Tools still on loan")
	m.SetBody("text/plain", b.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send loan reminder: %w", err)
	}
	return nil
}
