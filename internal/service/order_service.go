package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/session"
	apperrors "theme-park-ticketing/pkg/app_errors"
)

// PaymentDetails are the raw checkout fields supplied by the shell.
type PaymentDetails struct {
	Method     model.PaymentMethod
	CardNumber string
	Expiry     string
	CCV        string
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{12,}$`)
	expiryPattern     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	ccvPattern        = regexp.MustCompile(`^\d{3}$`)
)

func validatePaymentDetails(details PaymentDetails) error {
	if !details.Method.IsValid() {
		return apperrors.NewValidationError("payment_method", "payment method must be credit or debit")
	}
	if !cardNumberPattern.MatchString(details.CardNumber) {
		return apperrors.NewValidationError("card_number", "invalid card number, please enter a valid card number")
	}
	if !expiryPattern.MatchString(details.Expiry) {
		return apperrors.NewValidationError("expiry", "invalid expiration date, please use MM/YY format")
	}
	if !ccvPattern.MatchString(details.CCV) {
		return apperrors.NewValidationError("ccv", "invalid CCV, please enter a 3-digit CCV")
	}
	if details.Method == model.PaymentDebit && !strings.HasPrefix(details.CardNumber, "4") {
		return apperrors.NewValidationError("card_number", "invalid debit card number")
	}
	return nil
}

type OrderService interface {
	CartItems(ctx context.Context, sess *session.Session) ([]model.Ticket, float64, error)
	AddToCart(ctx context.Context, sess *session.Session, ticketType string) (model.Ticket, error)
	RemoveFromCart(ctx context.Context, sess *session.Session, ticketType string) error
	ClearCart(ctx context.Context, sess *session.Session) error
	Checkout(ctx context.Context, sess *session.Session, details PaymentDetails) (*model.Order, error)
	History(ctx context.Context, sess *session.Session) ([]*model.Order, error)
}

type OrderServiceImpl struct {
	ds *Dataset
}

func NewOrderService(ds *Dataset) OrderService {
	return &OrderServiceImpl{ds: ds}
}

func (s *OrderServiceImpl) customer(sess *session.Session) (*model.CustomerAccount, error) {
	customer, _ := s.ds.findCustomer(sess.AccountID)
	if customer == nil {
		return nil, apperrors.ErrNotFound
	}
	return customer, nil
}

func (s *OrderServiceImpl) CartItems(ctx context.Context, sess *session.Session) ([]model.Ticket, float64, error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	customer, err := s.customer(sess)
	if err != nil {
		return nil, 0, err
	}
	items := append([]model.Ticket(nil), customer.Cart.Items()...)
	return items, customer.Cart.Total(), nil
}

// AddToCart snapshots the catalog entry at its current discounted price.
// Later catalog edits never reach the snapshot.
func (s *OrderServiceImpl) AddToCart(ctx context.Context, sess *session.Session, ticketType string) (model.Ticket, error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	customer, err := s.customer(sess)
	if err != nil {
		return model.Ticket{}, err
	}
	ticket := s.ds.findTicket(ticketType)
	if ticket == nil {
		return model.Ticket{}, apperrors.ErrNotFound
	}

	snapshot := ticket.Snapshot()
	customer.Cart.Add(snapshot)
	return snapshot, nil
}

// RemoveFromCart drops the first cart snapshot of the given type; removing a
// type that is not in the cart is a no-op.
func (s *OrderServiceImpl) RemoveFromCart(ctx context.Context, sess *session.Session, ticketType string) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	customer, err := s.customer(sess)
	if err != nil {
		return err
	}
	for _, item := range customer.Cart.Items() {
		if item.Type == ticketType {
			customer.Cart.Remove(item)
			return nil
		}
	}
	return nil
}

func (s *OrderServiceImpl) ClearCart(ctx context.Context, sess *session.Session) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	customer, err := s.customer(sess)
	if err != nil {
		return err
	}
	customer.Cart.Clear()
	return nil
}

// Checkout validates everything before mutating anything, then converts the
// cart into a paid order in one synchronous sequence: build payment and
// order, append to the customer history and the global log, clear the cart,
// persist customers and orders.
func (s *OrderServiceImpl) Checkout(ctx context.Context, sess *session.Session, details PaymentDetails) (*model.Order, error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	customer, err := s.customer(sess)
	if err != nil {
		return nil, err
	}
	if customer.Cart.IsEmpty() {
		return nil, apperrors.ErrEmptyCart
	}
	if err := validatePaymentDetails(details); err != nil {
		return nil, err
	}

	amount := customer.Cart.Total()
	payment := &model.Payment{Method: details.Method, Amount: amount}
	items := append([]model.Ticket(nil), customer.Cart.Items()...)
	order := model.NewOrder(s.ds.seq.Next(), time.Now(), model.OrderStatusPaid, items, payment)

	customer.AddOrderToHistory(order)
	s.ds.orders = append(s.ds.orders, order)
	customer.Cart.Clear()

	if err := s.ds.customerRepo.Save(ctx, s.ds.customers); err != nil {
		return nil, err
	}
	if err := s.ds.orderRepo.Save(ctx, s.ds.orders); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderServiceImpl) History(ctx context.Context, sess *session.Session) ([]*model.Order, error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	customer, err := s.customer(sess)
	if err != nil {
		return nil, err
	}
	history := make([]*model.Order, len(customer.History))
	copy(history, customer.History)
	return history, nil
}
