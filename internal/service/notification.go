package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/pkg/utils"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type EmailNotifierImpl struct {
	conf config.SMTPConfig
	send func(conf config.SMTPConfig, message *gomail.Message) error
}

func CreateEmailNotifier(conf config.SMTPConfig) *EmailNotifierImpl {
	return &EmailNotifierImpl{conf: conf, send: utils.SendEmail}
}

func (n *EmailNotifierImpl) configured() bool {
	return n.conf.Host != "" && n.conf.Sender != ""
}

// OrderPlaced mails the customer a summary. It is a no-op without SMTP
// settings or a customer email.
func (n *EmailNotifierImpl) OrderPlaced(ctx context.Context, order domain.Order) error {
	if !n.configured() || order.CustomerInfo.Email == "" {
		log.Ctx(ctx).Debug().Str("component", "OrderPlacedEmail").Msg("email skipped")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.conf.Sender)
	m.SetHeader("To", order.CustomerInfo.Email)
	m.SetHeader("Subject", fmt.Sprintf("Khang Viet - order %s received", order.ID))
	m.SetBody("text/plain", OrderSummary(order))

	return n.send(n.conf, m)
}

// OrderSummary renders the plain-text confirmation body.
func OrderSummary(order domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", order.CustomerInfo.Name)
	fmt.Fprintf(&b, "We received your order %s", order.ID)
	if !order.CreatedAt.IsZero() {
		fmt.Fprintf(&b, " on %s", utils.ConvertDateTimeToHumanReadableFormat(order.CreatedAt))
	}
	b.WriteString(".\n\n")

	for _, it := range order.Items {
		name := it.ProductName
		if name == "" {
			name = it.ProductID
		}
		fmt.Fprintf(&b, "- %s x%d: %s\n", name, it.Quantity, utils.FormatVND(it.PriceAtPurchase*float64(it.Quantity)))
	}

	fmt.Fprintf(&b, "\nTotal: %s\n", utils.FormatVND(order.TotalAmount))
	fmt.Fprintf(&b, "Delivery address: %s\n", order.CustomerInfo.Address)
	return b.String()
}
