package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	packageRepo "weddify/database/repository/packages"
	venueRepo "weddify/database/repository/venue"
	"weddify/models"
	"weddify/services/admin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePackageRepo keeps packages in memory. Reserve implements the same
// guarded check-and-increment contract as the Mongo implementation: the
// whole operation happens under one lock, and losing the race yields
// ErrNoCapacity.
type fakePackageRepo struct {
	mu       sync.Mutex
	packages map[string]*models.Package
}

func newFakePackageRepo(pkgs ...*models.Package) *fakePackageRepo {
	r := &fakePackageRepo{packages: map[string]*models.Package{}}
	for _, p := range pkgs {
		r.packages[p.ID] = p
	}
	return r
}

func (r *fakePackageRepo) GetByID(id string) (*models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePackageRepo) GetByVendor(vendorID string) ([]models.Package, error) { return nil, nil }
func (r *fakePackageRepo) Search(packageRepo.PackageSearchCriteria) ([]models.Package, error) {
	return nil, nil
}
func (r *fakePackageRepo) Create(pkg *models.Package) error { return nil }
func (r *fakePackageRepo) Update(pkg *models.Package) error { return nil }
func (r *fakePackageRepo) Delete(id string) error           { return nil }

func (r *fakePackageRepo) Reserve(ctx context.Context, packageID string) (*models.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[packageID]
	if !ok || !p.IsActive || !p.Availability.IsAvailable ||
		p.Availability.CurrentBookings >= p.Availability.MaxBookings {
		return nil, packageRepo.ErrNoCapacity
	}
	p.Availability.CurrentBookings++
	p.Availability.IsAvailable = p.Availability.CurrentBookings < p.Availability.MaxBookings
	cp := *p
	return &cp, nil
}

func (r *fakePackageRepo) Release(ctx context.Context, packageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.packages[packageID]
	if !ok || p.Availability.CurrentBookings == 0 {
		return nil
	}
	p.Availability.CurrentBookings--
	p.Availability.IsAvailable = true
	return nil
}

type fakeVenueRepo struct {
	venues map[string]*models.Venue
}

func (r *fakeVenueRepo) GetByID(id string) (*models.Venue, error) {
	if r.venues == nil {
		return nil, nil
	}
	return r.venues[id], nil
}
func (r *fakeVenueRepo) GetByVendor(string) ([]models.Venue, error) { return nil, nil }
func (r *fakeVenueRepo) Search(venueRepo.VenueSearchCriteria) ([]models.Venue, error) {
	return nil, nil
}
func (r *fakeVenueRepo) Create(*models.Venue) error { return nil }
func (r *fakeVenueRepo) Update(*models.Venue) error { return nil }
func (r *fakeVenueRepo) Delete(string) error        { return nil }

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	saveErr  error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Save(ctx context.Context, b *models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return "", r.saveErr
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return b.ID, nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByVendor(vendorID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.VendorID == vendorID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) UpdatePayment(ctx context.Context, id string, payment models.BookingPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Payment = payment
	return nil
}

func (r *fakeBookingRepo) ListExpiredPending(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.BookingStatusPending && b.Payment.Status == "pending" && b.CreatedAt.Before(cutoff) {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakePayments struct {
	mu      sync.Mutex
	err     error
	charges int
}

func (p *fakePayments) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	p.charges++
	status := "pending"
	if req.Method == "card" {
		status = "paid"
	}
	return &models.Invoice{
		InvoiceID: "inv-1",
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    status,
	}, nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (n *fakeNotifier) NotifyUser(ctx context.Context, userID string, notif models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notif)
	return nil
}

type fakeReminderScheduler struct {
	mu        sync.Mutex
	userIDs   []string
	scheduled []time.Time
}

func (r *fakeReminderScheduler) ScheduleReminder(userID, title, message string, fireAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userIDs = append(r.userIDs, userID)
	r.scheduled = append(r.scheduled, fireAt)
	return nil
}

type fakeSettings struct{}

func (fakeSettings) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	return &models.PlatformSettings{ID: "platform", TaxRateBps: 1500, DefaultAdvanceDays: 90}, nil
}

func (fakeSettings) UpdateSettings(ctx context.Context, updatedBy string, patch admin.SettingsPatch) (*models.PlatformSettings, error) {
	return nil, errors.New("not implemented")
}

func newTestService(pkgRepo *fakePackageRepo, bRepo *fakeBookingRepo, pay *fakePayments) (*DefaultBookingService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	svc := &DefaultBookingService{
		PackageRepo:  pkgRepo,
		VenueRepo:    &fakeVenueRepo{},
		BookingRepo:  bRepo,
		Payments:     pay,
		Notification: notifier,
		Settings:     fakeSettings{},
	}
	return svc, notifier
}

func futureRequest() models.BookingRequestInput {
	date := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	return models.BookingRequestInput{
		PackageID: "pkg-1",
		Schedule: models.BookingSchedule{
			Date:      date,
			StartTime: "10:00",
			EndTime:   "18:00",
		},
		PaymentMethod: "card",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	pay := &fakePayments{}
	svc, notifier := newTestService(pkgRepo, bRepo, pay)

	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, models.BookingStatusPending, record.Status)
	assert.Equal(t, "paid", record.Payment.Status)
	assert.Equal(t, "inv-1", record.Payment.InvoiceID)
	assert.Equal(t, int64(11500000), record.Payment.Amount) // 10,000,000 + 15% tax

	stored, err := bRepo.GetByID(record.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	updated, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, 3, updated.Availability.CurrentBookings)
	assert.True(t, updated.Availability.IsAvailable)

	assert.NotEmpty(t, notifier.sent)
}

func TestCreateBookingPackageNotFound(t *testing.T) {
	svc, _ := newTestService(newFakePackageRepo(), newFakeBookingRepo(), &fakePayments{})
	_, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestCreateBookingMissingPackageIDIsValidationError(t *testing.T) {
	svc, _ := newTestService(newFakePackageRepo(), newFakeBookingRepo(), &fakePayments{})

	req := futureRequest()
	req.PackageID = "  "
	_, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", req)

	// A blank ID is a bad request, not a missing package.
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, RuleRequiredFields, vErr.Violations[0].Rule)
	assert.NotErrorIs(t, err, ErrPackageNotFound)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	svc, _ := newTestService(pkgRepo, newFakeBookingRepo(), &fakePayments{})

	req := futureRequest()
	req.Schedule.StartTime = "18:00"
	req.Schedule.EndTime = "10:00"

	_, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, RuleTimeOrder, vErr.Violations[0].Rule)

	// No slot was touched.
	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, 2, p.Availability.CurrentBookings)
}

func TestCreateBookingFullPackageRejected(t *testing.T) {
	pkg := availablePackage()
	pkg.Availability.CurrentBookings = pkg.Availability.MaxBookings
	pkg.Availability.IsAvailable = false
	pkgRepo := newFakePackageRepo(&pkg)
	svc, _ := newTestService(pkgRepo, newFakeBookingRepo(), &fakePayments{})

	_, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	got := rules(vErr.Violations)
	assert.Contains(t, got, RuleCapacity)

	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, pkg.Availability.MaxBookings, p.Availability.CurrentBookings)
}

func TestCreateBookingRaceOnLastSlot(t *testing.T) {
	pkg := availablePackage()
	pkg.Availability.CurrentBookings = pkg.Availability.MaxBookings - 1
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	svc, _ := newTestService(pkgRepo, bRepo, &fakePayments{})

	const racers = 20
	var wg sync.WaitGroup
	results := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrCapacityExceeded):
			conflicts++
		default:
			// Validation may catch the full package before Reserve does;
			// both rejections leave the counter untouched.
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, racers-1, conflicts)

	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, p.Availability.MaxBookings, p.Availability.CurrentBookings)
	assert.False(t, p.Availability.IsAvailable)

	bookings, _ := bRepo.ListByUser("user-1")
	assert.Len(t, bookings, 1)
}

func TestCreateBookingLastSlotFlipsAvailability(t *testing.T) {
	pkg := availablePackage()
	pkg.Availability.CurrentBookings = pkg.Availability.MaxBookings - 1
	pkgRepo := newFakePackageRepo(&pkg)
	svc, _ := newTestService(pkgRepo, newFakeBookingRepo(), &fakePayments{})

	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, record.Status)

	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, p.Availability.MaxBookings, p.Availability.CurrentBookings)
	assert.False(t, p.Availability.IsAvailable)
}

func TestCreateBookingPaymentFailureReleasesSlot(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	pay := &fakePayments{err: errors.New("card declined")}
	svc, _ := newTestService(pkgRepo, bRepo, pay)

	_, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.Error(t, err)

	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, 2, p.Availability.CurrentBookings)
	assert.True(t, p.Availability.IsAvailable)

	bookings, _ := bRepo.ListByUser("user-1")
	assert.Empty(t, bookings)
}

func TestCreateBookingSaveFailureReleasesSlot(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	bRepo.saveErr = errors.New("write failed")
	svc, _ := newTestService(pkgRepo, bRepo, &fakePayments{})

	_, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.Error(t, err)

	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, 2, p.Availability.CurrentBookings)
}

func TestConfirmBooking(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	svc, _ := newTestService(pkgRepo, bRepo, &fakePayments{})

	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.NoError(t, err)

	confirmed, err := svc.ConfirmBooking(context.Background(), record.ID, "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	// A second confirm is rejected.
	_, err = svc.ConfirmBooking(context.Background(), record.ID, "vendor-1")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	// Another vendor cannot confirm.
	_, err = svc.ConfirmBooking(context.Background(), record.ID, "vendor-2")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestConfirmBookingSchedulesEventReminder(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	svc, _ := newTestService(pkgRepo, bRepo, &fakePayments{})
	reminders := &fakeReminderScheduler{}
	svc.Reminders = reminders

	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.NoError(t, err)
	assert.Empty(t, reminders.scheduled, "pending bookings get no reminder")

	_, err = svc.ConfirmBooking(context.Background(), record.ID, "vendor-1")
	require.NoError(t, err)

	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, "user-1", reminders.userIDs[0])

	// Fires the day before the event, in the future.
	eventStart, perr := time.ParseInLocation("2006-01-02 15:04", record.Schedule.Date+" "+record.Schedule.StartTime, time.Local)
	require.NoError(t, perr)
	assert.Equal(t, eventStart.Add(-24*time.Hour), reminders.scheduled[0])
	assert.True(t, reminders.scheduled[0].After(time.Now()))
}

func TestConfirmBookingPastEventSkipsReminder(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	svc, _ := newTestService(pkgRepo, bRepo, &fakePayments{})
	reminders := &fakeReminderScheduler{}
	svc.Reminders = reminders

	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.NoError(t, err)

	// An event starting within the next 24h has no day-before slot left.
	bRepo.mu.Lock()
	bRepo.bookings[record.ID].Schedule.Date = time.Now().Format("2006-01-02")
	bRepo.mu.Unlock()

	_, err = svc.ConfirmBooking(context.Background(), record.ID, "vendor-1")
	require.NoError(t, err)
	assert.Empty(t, reminders.scheduled)
}

func TestCancelBookingReleasesSlot(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	svc, _ := newTestService(pkgRepo, bRepo, &fakePayments{})

	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.NoError(t, err)

	// Another user cannot cancel.
	err = svc.CancelBooking(context.Background(), record.ID, "user-2")
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, svc.CancelBooking(context.Background(), record.ID, "user-1"))

	stored, _ := bRepo.GetByID(record.ID)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)

	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, 2, p.Availability.CurrentBookings)
}

func TestGetBookingOwnership(t *testing.T) {
	pkg := availablePackage()
	svc, _ := newTestService(newFakePackageRepo(&pkg), newFakeBookingRepo(), &fakePayments{})

	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", futureRequest())
	require.NoError(t, err)

	_, err = svc.GetBooking(context.Background(), record.ID, "user-1")
	assert.NoError(t, err)
	_, err = svc.GetBooking(context.Background(), record.ID, "vendor-1")
	assert.NoError(t, err)
	_, err = svc.GetBooking(context.Background(), record.ID, "someone-else")
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = svc.GetBooking(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExpirePendingBookings(t *testing.T) {
	pkg := availablePackage()
	pkgRepo := newFakePackageRepo(&pkg)
	bRepo := newFakeBookingRepo()
	svc, _ := newTestService(pkgRepo, bRepo, &fakePayments{})

	req := futureRequest()
	req.PaymentMethod = "cash" // stays pending
	record, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", req)
	require.NoError(t, err)

	// Backdate the record past the TTL.
	bRepo.mu.Lock()
	bRepo.bookings[record.ID].CreatedAt = time.Now().Add(-time.Hour)
	bRepo.mu.Unlock()

	expired, err := svc.ExpirePendingBookings(context.Background(), 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	stored, _ := bRepo.GetByID(record.ID)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)

	p, _ := pkgRepo.GetByID("pkg-1")
	assert.Equal(t, 2, p.Availability.CurrentBookings)

	// Fresh pending bookings are untouched.
	record2, err := svc.CreateVendorPackageBooking(context.Background(), "user-1", req)
	require.NoError(t, err)
	expired, err = svc.ExpirePendingBookings(context.Background(), 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 0, expired)
	stored2, _ := bRepo.GetByID(record2.ID)
	assert.Equal(t, models.BookingStatusPending, stored2.Status)
}
