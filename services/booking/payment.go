package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weddify/models"
	"weddify/services/notification"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler charges a booking and produces an invoice.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler handles card payments through Stripe and records
// cash payments as pending invoices settled on the event day.
type UnifiedPaymentHandler struct {
	logger       *zap.Logger
	notification notification.NotificationService
}

func NewPaymentHandler(logger *zap.Logger, notificationSvc notification.NotificationService) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{
		logger:       logger,
		notification: notificationSvc,
	}
}

func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "cash":
		return h.processCashPayment(ctx, req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *UnifiedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("invoiceId", inv.InvoiceID)
	params.AddMetadata("userId", req.UserID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("card payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.notifyPayment(ctx, req, inv)
	h.logger.Info("Card payment successful", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

// Cash payments remain "pending" until collected at the event.
func (h *UnifiedPaymentHandler) processCashPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	inv.UpdatedAt = time.Now()

	h.notifyPayment(ctx, req, inv)
	h.logger.Info("Cash payment recorded", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

func (h *UnifiedPaymentHandler) notifyPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) {
	if h.notification == nil {
		return
	}
	n := models.Notification{
		Type:    "payment_confirmation",
		Message: fmt.Sprintf("Payment of %s %.2f via %s is %s.", inv.Currency, float64(inv.Amount)/100, inv.Method, inv.Status),
		Data: map[string]interface{}{
			"invoiceId": inv.InvoiceID,
			"amount":    inv.Amount,
			"method":    inv.Method,
			"status":    inv.Status,
		},
	}
	if err := h.notification.NotifyUser(ctx, req.UserID, n); err != nil {
		h.logger.Error("payment notification failed", zap.Error(err))
	}
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
