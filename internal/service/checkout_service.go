package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

const defaultPublishTimeout = 5 * time.Second

type CheckoutServiceImpl struct {
	orders         OrderBackend
	cart           CartService
	publisher      EventPublisher
	notifier       Notifier
	publishTimeout time.Duration
}

func CreateCheckoutService(orders OrderBackend, cart CartService, publisher EventPublisher, notifier Notifier) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{orders: orders, cart: cart, publisher: publisher, notifier: notifier, publishTimeout: defaultPublishTimeout}
}

// ValidateCustomerInfo lists every required field that is missing or malformed.
func ValidateCustomerInfo(info domain.CustomerInfo) error {
	var fields []string
	if strings.TrimSpace(info.Name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(info.Phone) == "" {
		fields = append(fields, "phone")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(info.Email)); err != nil {
		fields = append(fields, "email")
	}
	if strings.TrimSpace(info.Address) == "" {
		fields = append(fields, "address")
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// PlaceOrder submits the session's cart. The submitted items leave the cart
// only after the backend confirms the order.
func (s *CheckoutServiceImpl) PlaceOrder(ctx context.Context, sessionID string, info domain.CustomerInfo) (domain.Order, error) {
	cart := s.cart.GetCart(ctx, sessionID)
	if cart.IsEmpty() {
		return domain.Order{}, errs.ErrEmptyCart
	}
	if err := ValidateCustomerInfo(info); err != nil {
		return domain.Order{}, err
	}

	info.Email = strings.TrimSpace(info.Email)

	// a client disconnect must not abort a submitted order
	ctx = context.WithoutCancel(ctx)

	order, err := s.orders.CreateOrder(ctx, dto.NewCreateOrderRequest(info, cart))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("")
		return domain.Order{}, err
	}

	if _, err := s.cart.SettleOrder(ctx, sessionID, cart); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("order placed but cart not cleared")
	}

	pubCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	err = s.publisher.Publish(pubCtx, order.ID, dto.KafkaMessage{EventType: dto.EventOrderPlaced, Data: order})
	cancel()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("failed to publish order event")
	}

	if err := s.notifier.OrderPlaced(ctx, order); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PlaceOrder").Msg("failed to send confirmation email")
	}

	return order, nil
}
