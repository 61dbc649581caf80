package utils

import (
	"fmt"

	"github.com/khangviet/storefront/config"
	"gopkg.in/gomail.v2"
)

// SendEmail delivers message through the configured SMTP relay. The sender
// doubles as the SMTP username.
func SendEmail(conf config.SMTPConfig, message *gomail.Message) error {
	d := gomail.NewDialer(conf.Host, conf.Port, conf.Sender, conf.Password)

	if err := d.DialAndSend(message); err != nil {
		return fmt.Errorf("sending mail via %s:%d: %w", conf.Host, conf.Port, err)
	}

	return nil
}
