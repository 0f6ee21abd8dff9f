package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	packageRepo "weddify/database/repository/packages"
	"weddify/models"
	"weddify/utils"

	"go.uber.org/zap"
)

// CreateVendorPackageBooking executes the booking flow in strict order:
// fetch, validate, price, reserve, pay, persist. The slot reservation is
// the only step that mutates shared state before the record exists, so
// every later failure explicitly releases it.
func (s *DefaultBookingService) CreateVendorPackageBooking(
	ctx context.Context,
	userID string,
	input models.BookingRequestInput,
) (*models.Booking, error) {
	logger := utils.GetLogger()
	now := time.Now()

	// The validator reports a missing packageId too, but it needs the
	// package fetched first; report the structural violation before any
	// lookup so the caller gets a 400, not a 404 for an empty ID.
	if strings.TrimSpace(input.PackageID) == "" {
		return nil, &ValidationError{Violations: []RuleViolation{{
			Rule:    RuleRequiredFields,
			Message: "packageId is required",
		}}}
	}

	pkg, err := s.PackageRepo.GetByID(input.PackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load package: %w", err)
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	var venue *models.Venue
	if input.VenueID != "" {
		venue, err = s.VenueRepo.GetByID(input.VenueID)
		if err != nil {
			return nil, fmt.Errorf("failed to load venue: %w", err)
		}
		if venue == nil {
			return nil, ErrVenueNotFound
		}
	}

	normalized, violations := ValidateBookingRequest(input, *pkg, venue, now)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	settings, err := s.Settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform settings: %w", err)
	}
	quote := ComputeQuote(pkg.Pricing, settings.TaxRateBps, now)

	// Atomic check-and-increment. Validation already screened capacity,
	// but only this write decides the race.
	reserved, err := s.PackageRepo.Reserve(ctx, pkg.ID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrNoCapacity) {
			return nil, ErrCapacityExceeded
		}
		return nil, fmt.Errorf("slot reservation failed: %w", err)
	}

	payReq := models.PaymentRequest{
		UserID:   userID,
		Amount:   quote.FinalPrice,
		Currency: quote.Currency,
		Method:   normalized.PaymentMethod,
	}
	invoice, err := s.Payments.ProcessPayment(ctx, payReq)
	if err != nil {
		s.releaseReservation(pkg.ID, "payment failure")
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	record := BuildBookingRecord(userID, *normalized, *pkg, quote, now)
	record.Payment.Status = invoice.Status
	record.Payment.InvoiceID = invoice.InvoiceID
	record.Payment.PaymentIntentID = invoice.PaymentID

	if _, err := s.BookingRepo.Save(ctx, record); err != nil {
		s.releaseReservation(pkg.ID, "booking save failure")
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", record.ID),
		zap.String("packageID", pkg.ID),
		zap.String("userID", userID),
		zap.Int("currentBookings", reserved.Availability.CurrentBookings),
		zap.Bool("packageStillAvailable", reserved.Availability.IsAvailable))

	s.notify(ctx, userID, models.Notification{
		Type:    "booking_created",
		Message: fmt.Sprintf("Your booking for %s on %s is %s.", pkg.Name, record.Schedule.Date, record.Status),
		Data:    map[string]interface{}{"bookingId": record.ID},
	})

	return record, nil
}

// ConfirmBooking is a vendor action on a pending booking.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID, vendorID string) (*models.Booking, error) {
	record, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if record == nil {
		return nil, ErrBookingNotFound
	}
	if record.VendorID != vendorID {
		return nil, ErrNotOwner
	}
	if record.Status != models.BookingStatusPending {
		return nil, &ValidationError{Violations: []RuleViolation{{
			Rule:    "status",
			Message: fmt.Sprintf("only pending bookings can be confirmed, booking is %s", record.Status),
		}}}
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, models.BookingStatusConfirmed); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	record.Status = models.BookingStatusConfirmed

	s.notify(ctx, record.UserID, models.Notification{
		Type:    "booking_confirmation",
		Message: fmt.Sprintf("Your booking on %s has been confirmed by the vendor.", record.Schedule.Date),
		Data:    map[string]interface{}{"bookingId": record.ID},
	})
	s.scheduleEventReminder(record)
	return record, nil
}

// scheduleEventReminder queues a push for the day before a confirmed
// event. Best effort: a booking that cannot get a reminder is still
// confirmed.
func (s *DefaultBookingService) scheduleEventReminder(record *models.Booking) {
	if s.Reminders == nil {
		return
	}
	date, err := time.ParseInLocation(dayLayout, record.Schedule.Date, time.Local)
	if err != nil {
		return
	}
	startMinute, err := parseClock(record.Schedule.StartTime)
	if err != nil {
		startMinute = 0
	}
	fireAt := date.Add(time.Duration(startMinute)*time.Minute - 24*time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}

	msg := fmt.Sprintf("Your booking on %s starts tomorrow at %s.", record.Schedule.Date, record.Schedule.StartTime)
	if err := s.Reminders.ScheduleReminder(record.UserID, "Upcoming booking", msg, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule event reminder",
			zap.String("bookingID", record.ID), zap.Error(err))
	}
}

// CancelBooking cancels a pending or confirmed booking and releases the
// reserved package slot.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, userID string) error {
	record, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}
	if record == nil {
		return ErrBookingNotFound
	}
	if record.UserID != userID {
		return ErrNotOwner
	}
	if record.Status != models.BookingStatusPending && record.Status != models.BookingStatusConfirmed {
		return &ValidationError{Violations: []RuleViolation{{
			Rule:    "status",
			Message: fmt.Sprintf("booking in status %s cannot be cancelled", record.Status),
		}}}
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	s.releaseReservation(record.PackageID, "user cancellation")

	s.notify(ctx, record.UserID, models.Notification{
		Type:    "booking_cancelled",
		Message: fmt.Sprintf("Your booking on %s has been cancelled.", record.Schedule.Date),
		Data:    map[string]interface{}{"bookingId": record.ID},
	})
	return nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, callerID string) (*models.Booking, error) {
	record, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if record == nil {
		return nil, ErrBookingNotFound
	}
	if record.UserID != callerID && record.VendorID != callerID {
		return nil, ErrNotOwner
	}
	return record, nil
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByUser(userID)
}

func (s *DefaultBookingService) ListVendorBookings(ctx context.Context, vendorID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByVendor(vendorID)
}

// ExpirePendingBookings sweeps bookings whose payment never settled and
// returns their slots to the pool. Invoked from the queue worker.
func (s *DefaultBookingService) ExpirePendingBookings(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	stale, err := s.BookingRepo.ListExpiredPending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired bookings: %w", err)
	}

	expired := 0
	for _, record := range stale {
		if err := s.BookingRepo.UpdateStatus(ctx, record.ID, models.BookingStatusCancelled); err != nil {
			utils.GetLogger().Error("failed to expire booking",
				zap.String("bookingID", record.ID), zap.Error(err))
			continue
		}
		s.releaseReservation(record.PackageID, "pending payment expired")
		expired++

		s.notify(ctx, record.UserID, models.Notification{
			Type:    "booking_expired",
			Message: fmt.Sprintf("Your booking on %s expired because payment was not completed.", record.Schedule.Date),
			Data:    map[string]interface{}{"bookingId": record.ID},
		})
	}
	return expired, nil
}

// releaseReservation rolls back a claimed slot. Failures are logged, not
// propagated: the caller's error is the one the user must see, and a
// stuck counter is repairable by the sweep.
func (s *DefaultBookingService) releaseReservation(packageID, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PackageRepo.Release(ctx, packageID); err != nil {
		utils.GetLogger().Error("failed to release package slot",
			zap.String("packageID", packageID),
			zap.String("reason", reason),
			zap.Error(err))
	}
}

func (s *DefaultBookingService) notify(ctx context.Context, userID string, n models.Notification) {
	if s.Notification == nil {
		return
	}
	if err := s.Notification.NotifyUser(ctx, userID, n); err != nil {
		utils.GetLogger().Warn("booking notification failed",
			zap.String("userID", userID), zap.Error(err))
	}
}
