package service

import (
	"context"
	"testing"

	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestEmailNotifierSkipsWithoutSMTP(t *testing.T) {
	n := CreateEmailNotifier(config.SMTPConfig{})
	n.send = func(config.SMTPConfig, *gomail.Message) error {
		t.Fatal("send must not be called")
		return nil
	}
	assert.NoError(t, n.OrderPlaced(context.Background(), domain.Order{CustomerInfo: validCustomer}))
}

func TestEmailNotifierSendsSummary(t *testing.T) {
	n := CreateEmailNotifier(config.SMTPConfig{Host: "smtp.example.com", Port: 587, Sender: "shop@khangviet.vn"})

	var sent *gomail.Message
	n.send = func(conf config.SMTPConfig, m *gomail.Message) error {
		sent = m
		assert.Equal(t, "smtp.example.com", conf.Host)
		assert.Equal(t, 587, conf.Port)
		return nil
	}

	order := domain.Order{
		ID:           "o-1",
		CustomerInfo: validCustomer,
		Items:        []domain.OrderItem{{ProductName: "Neon", Quantity: 2, PriceAtPurchase: 100000}},
		TotalAmount:  200000,
	}
	require.NoError(t, n.OrderPlaced(context.Background(), order))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"a@example.com"}, sent.GetHeader("To"))

	summary := OrderSummary(order)
	assert.Contains(t, summary, "Neon x2")
	assert.Contains(t, summary, "o-1")
}
