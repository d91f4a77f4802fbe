// internal/adapters/out/mail/order_mailer.go
package mail

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	orderdom "storefront/internal/domain/order"
)

// Env vars (local / Cloud Run)
const (
	envSendGridAPIKey = "SENDGRID_API_KEY"
	envSendGridFrom   = "SENDGRID_FROM" // e.g. no-reply@example.com
)

// OrderMailer sends the post-checkout confirmation email through an
// EmailClient. It implements usecase.OrderMailerPort.
type OrderMailer struct {
	client      EmailClient
	fromAddress string
}

func NewOrderMailer(client EmailClient, fromAddress string) *OrderMailer {
	return &OrderMailer{
		client:      client,
		fromAddress: strings.TrimSpace(fromAddress),
	}
}

// NewOrderMailerWithSendGrid wires an OrderMailer from env config.
//
// - SENDGRID_API_KEY : SendGrid API key
// - SENDGRID_FROM    : sender address
func NewOrderMailerWithSendGrid() *OrderMailer {
	apiKey := os.Getenv(envSendGridAPIKey)
	fromAddr := os.Getenv(envSendGridFrom)

	if apiKey == "" {
		log.Printf("[mail] WARN: SENDGRID_API_KEY is empty. OrderMailer will fail to send mail.")
	}
	if fromAddr == "" {
		log.Printf("[mail] WARN: SENDGRID_FROM is empty. OrderMailer will fail to send mail.")
	}

	mailer := NewOrderMailer(NewSendGridClient(apiKey), fromAddr)

	log.Printf("[mail] OrderMailerWithSendGrid initialized. from=%s", fromAddr)
	return mailer
}

func (m *OrderMailer) SendOrderConfirmation(ctx context.Context, toEmail string, o orderdom.Order) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("order_mailer: email client is nil")
	}

	subject := fmt.Sprintf("Order #%s confirmed", o.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order.\n\n")
	fmt.Fprintf(&b, "Order #%s (%s)\n\n", o.ID, o.Status)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "  %s x%d — %.2f\n", it.Name, it.Qty, it.UnitPrice*float64(it.Qty))
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\n", o.Total)
	fmt.Fprintf(&b, "\nShipping to:\n  %s\n  %s, %s %s\n  %s\n",
		o.ShippingAddress.Street,
		o.ShippingAddress.City,
		o.ShippingAddress.State,
		o.ShippingAddress.ZipCode,
		o.ShippingAddress.Country,
	)

	return m.client.Send(ctx, m.fromAddress, toEmail, subject, b.String())
}
