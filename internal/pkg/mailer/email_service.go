package mailer

import (
	"fmt"
	"strings"

	"fikse-agent-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOrderReceipt(toEmail string, order *entity.Order) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendOrderReceipt(toEmail string, order *entity.Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Repair Order %s", order.Id))

	var lines strings.Builder
	for _, svc := range order.Services {
		lines.WriteString(fmt.Sprintf("<li><b>%s</b> (%s): %s ($%.0f)</li>", svc.Service, svc.GarmentType, svc.Description, svc.Price))
	}

	hoursInfo := ""
	if order.EstimatedHours != nil {
		hoursInfo = fmt.Sprintf("<p>Estimated time: %.1f hours</p>", *order.EstimatedHours)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Repair Order %s</h2>
			<p>Created: %s</p>
			<ul>%s</ul>
			<p><b>Total: $%.0f</b></p>
			%s
		</div>
	`, order.Id, order.CreatedAt.Format("2006-01-02 15:04:05"), lines.String(), order.TotalPrice, hoursInfo)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send order receipt to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Order receipt %s sent to %s\n", order.Id, toEmail)
	return nil
}
