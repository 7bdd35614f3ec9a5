package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/laredoma/storefront/internal/cart"
	"github.com/laredoma/storefront/internal/models"
	"github.com/laredoma/storefront/internal/payment"
	"github.com/laredoma/storefront/internal/session"
	"github.com/laredoma/storefront/internal/shipping"
)

var ErrEmptyCart = errors.New("cart is empty")

// Checkout form fields reported by validation
const (
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldPaymentRef = "paymentRef"
	FieldLocation   = "location"
)

// ValidationError lists the checkout fields that block submission
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "checkout is incomplete: " + strings.Join(e.Fields, ", ")
}

// Validate returns the missing or malformed fields of a checkout form
func Validate(req models.CheckoutRequest) []string {
	missing := make([]string, 0)

	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, FieldName)
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, FieldPhone)
	}
	if _, err := payment.NormalizeRef(req.PaymentRef); err != nil {
		missing = append(missing, FieldPaymentRef)
	}
	if req.Location == nil || !req.Location.Valid() {
		missing = append(missing, FieldLocation)
	}

	return missing
}

// CheckoutQuote is the order summary shown while the customer fills the form
type CheckoutQuote struct {
	shipping.Quote
	ItemCount      int      `json:"itemCount"`
	CanSubmit      bool     `json:"canSubmit"`
	Missing        []string `json:"missing"`
	PaymentRefSeen bool     `json:"paymentRefSeen"`
}

// CheckoutService prices and places storefront orders
type CheckoutService struct {
	sessions  session.Store
	estimator *shipping.Estimator
	payments  *payment.Registry
	now       func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(sessions session.Store, estimator *shipping.Estimator, payments *payment.Registry) *CheckoutService {
	return &CheckoutService{
		sessions:  sessions,
		estimator: estimator,
		payments:  payments,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Quote prices the session's cart for the draft form and reports whether it can be submitted
func (s *CheckoutService) Quote(ctx context.Context, sessionID string, req models.CheckoutRequest) (*CheckoutQuote, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	location := req.Location
	if location != nil && !location.Valid() {
		location = nil
	}

	missing := Validate(req)
	q := &CheckoutQuote{
		Quote:     s.estimator.Estimate(sess.Cart.Total(), location),
		ItemCount: sess.Cart.Count(),
		Missing:   missing,
		CanSubmit: len(missing) == 0 && !sess.Cart.IsEmpty(),
	}
	if ref, err := payment.NormalizeRef(req.PaymentRef); err == nil {
		q.PaymentRefSeen = s.payments.Seen(ref)
	}
	return q, nil
}

// Place submits the order: it prices the cart, records the confirmation on the session and clears the cart
func (s *CheckoutService) Place(ctx context.Context, sessionID string, req models.CheckoutRequest) (*models.Confirmation, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if missing := Validate(req); len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	ref, err := payment.NormalizeRef(req.PaymentRef)
	if err != nil {
		return nil, &ValidationError{Fields: []string{FieldPaymentRef}}
	}
	seen := s.payments.Seen(ref)

	var confirmation *models.Confirmation
	_, err = s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if sess.Cart.IsEmpty() {
			return ErrEmptyCart
		}

		quote := s.estimator.Estimate(sess.Cart.Total(), req.Location)
		confirmation = &models.Confirmation{
			ID:         uuid.New().String(),
			Name:       strings.TrimSpace(req.Name),
			Phone:      strings.TrimSpace(req.Phone),
			PaymentRef: ref,
			RefSeen:    seen,
			Address:    strings.TrimSpace(req.Address),
			Reference:  strings.TrimSpace(req.Reference),
			Location:   *req.Location,
			Items:      confirmationLines(sess.Cart),
			Subtotal:   quote.Subtotal,
			Shipping:   quote.Shipping,
			Total:      quote.Total,
			PlacedAt:   s.now(),
		}

		sess.LastOrder = confirmation
		sess.Cart.Clear()
		sess.Drawer.Close()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.payments.Record(ref)
	return confirmation, nil
}

func confirmationLines(c *cart.Cart) []models.ConfirmationLine {
	lines := make([]models.ConfirmationLine, 0, c.Len())
	for _, item := range c.Items {
		lines = append(lines, models.ConfirmationLine{
			ProductID: item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return lines
}
