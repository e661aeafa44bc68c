package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/usecase"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== FAKES ====================

type fakeVenueRepo struct {
	venue *entity.Venue
	calls int
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	f.calls++
	if f.venue != nil && f.venue.ID == id {
		return f.venue, nil
	}
	return nil, nil
}

func (f *fakeVenueRepo) FindActive(ctx context.Context, limit, offset int) ([]*entity.Venue, error) {
	return nil, nil
}

func (f *fakeVenueRepo) CountActive(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeBookingRepo struct {
	created []*entity.Booking
	byRef   map[string]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byRef: make(map[string]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	copied := *booking
	f.created = append(f.created, &copied)
	f.byRef[booking.BookingID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, booking := range f.byRef {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	return f.byRef[bookingID], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, booking := range f.created {
		if booking.UserID == userID {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	copied := *booking
	f.byRef[booking.BookingID] = &copied
	return nil
}

// ==================== HELPERS ====================

func testConfig() *utils.Config {
	return &utils.Config{
		Pricing: utils.PricingConfig{
			TaxRate:           0.18,
			ServiceChargeRate: 0.05,
		},
	}
}

func newBookingService(venueRepo *fakeVenueRepo, bookingRepo *fakeBookingRepo) usecase.BookingService {
	repo := &repository.Repository{
		Venue:   venueRepo,
		Booking: bookingRepo,
	}
	return usecase.NewBookingService(repo, testConfig(), zap.NewNop())
}

func activeVenue(id uuid.UUID) *entity.Venue {
	return &entity.Venue{
		Base:        entity.Base{ID: id},
		Name:        "Grand Palace",
		BasePrice:   50000,
		CapacityMin: 100,
		CapacityMax: 200,
		IsActive:    true,
		IsVerified:  true,
		Availability: []entity.AvailabilitySlot{
			{Date: "2026-10-15", IsAvailable: true},
			{Date: "2026-10-16", IsAvailable: false},
		},
	}
}

func weddingRequest(venueID string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VenueID: venueID,
		Services: []request.ServiceLineRequest{
			{ServiceID: venueID, ServiceName: "Grand Palace", Type: "venue", Quantity: 1, UnitPrice: 50000},
			{ServiceID: uuid.New().String(), ServiceName: "Royal Buffet", Type: "catering", Quantity: 100, UnitPrice: 500},
		},
		Event: request.EventDetailsRequest{
			Occasion:   "wedding",
			EventDate:  "2026-10-15",
			GuestCount: 150,
		},
	}
}

// ==================== CREATE BOOKING ====================

func TestCreateBookingWeddingPackage(t *testing.T) {
	venueID := uuid.New()
	venueRepo := &fakeVenueRepo{venue: activeVenue(venueID)}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	userID := uuid.New().String()
	resp, err := service.CreateBooking(context.Background(), userID, weddingRequest(venueID.String()))

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 100000.0, resp.Pricing.Subtotal)
	assert.Equal(t, 18000.0, resp.Pricing.Taxes)
	assert.Equal(t, 5000.0, resp.Pricing.ServiceCharges)
	assert.Equal(t, 0.0, resp.Pricing.Discount)
	assert.Equal(t, 123000.0, resp.Pricing.Total)

	assert.Equal(t, entity.BookingStatusPendingConfirmation, resp.Status)
	assert.Equal(t, entity.PaymentStatusPending, resp.Payment.Status)
	assert.Equal(t, 0.0, resp.Payment.PaidAmount)
	assert.Equal(t, 123000.0, resp.Payment.DueAmount)

	require.Len(t, resp.Timeline, 1)
	assert.Equal(t, entity.BookingStatusPendingConfirmation, resp.Timeline[0].Status)

	assert.True(t, strings.HasPrefix(resp.BookingID, "EVT-"))
	require.Len(t, bookingRepo.created, 1)
	assert.Equal(t, "Grand Palace", bookingRepo.created[0].VenueName)
}

func TestCreateBookingWithoutVenue(t *testing.T) {
	venueRepo := &fakeVenueRepo{}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	req := &request.CreateBookingRequest{
		Services: []request.ServiceLineRequest{
			{ServiceID: uuid.New().String(), Type: "decoration", Quantity: 1, UnitPrice: 12000},
			{ServiceID: uuid.New().String(), Type: "photography", Quantity: 1, UnitPrice: 15000},
		},
		Event: request.EventDetailsRequest{
			Occasion:   "birthday",
			EventDate:  "2026-11-01",
			GuestCount: 40,
		},
	}

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	require.NoError(t, err)
	assert.Equal(t, 27000.0, resp.Pricing.Subtotal)
	assert.Equal(t, 4860.0, resp.Pricing.Taxes)
	assert.Equal(t, 1350.0, resp.Pricing.ServiceCharges)
	assert.Equal(t, 33210.0, resp.Pricing.Total)
	assert.Equal(t, 0, venueRepo.calls)
}

// The persisted subtotal always reflects the server-side sum over the
// submitted lines, never the client-asserted value.
func TestCreateBookingIgnoresClientSubtotal(t *testing.T) {
	venueRepo := &fakeVenueRepo{}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	req := &request.CreateBookingRequest{
		Services: []request.ServiceLineRequest{
			{ServiceID: uuid.New().String(), Type: "extras", Quantity: 2, UnitPrice: 1000},
		},
		Event: request.EventDetailsRequest{
			Occasion:   "corporate",
			EventDate:  "2026-09-01",
			GuestCount: 25,
		},
		Pricing: request.PricingRequest{Subtotal: 1},
	}

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	require.NoError(t, err)
	assert.Equal(t, 2000.0, resp.Pricing.Subtotal)
	assert.Equal(t, 2000.0, bookingRepo.created[0].Pricing.Subtotal)
}

func TestCreateBookingEmptyServicesRejectedBeforeVenueLookup(t *testing.T) {
	venueRepo := &fakeVenueRepo{venue: activeVenue(uuid.New())}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	req := weddingRequest(venueRepo.venue.ID.String())
	req.Services = nil

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "At least one service is required", err.Error())
	assert.Equal(t, 0, venueRepo.calls)
	assert.Empty(t, bookingRepo.created)
}

func TestCreateBookingInactiveVenueRejected(t *testing.T) {
	venueID := uuid.New()
	venue := activeVenue(venueID)
	venue.IsActive = false
	venueRepo := &fakeVenueRepo{venue: venue}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), weddingRequest(venueID.String()))

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "Venue not available", err.Error())
	assert.Empty(t, bookingRepo.created)
}

func TestCreateBookingUnverifiedVenueRejected(t *testing.T) {
	venueID := uuid.New()
	venue := activeVenue(venueID)
	venue.IsVerified = false
	venueRepo := &fakeVenueRepo{venue: venue}
	service := newBookingService(venueRepo, newFakeBookingRepo())

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), weddingRequest(venueID.String()))

	require.Error(t, err)
	assert.Equal(t, "Venue not available", err.Error())
}

func TestCreateBookingUnknownVenueRejected(t *testing.T) {
	venueRepo := &fakeVenueRepo{}
	service := newBookingService(venueRepo, newFakeBookingRepo())

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), weddingRequest(uuid.New().String()))

	require.Error(t, err)
	assert.Equal(t, "Venue not available", err.Error())
}

func TestCreateBookingGuestCountBoundaries(t *testing.T) {
	venueID := uuid.New()

	cases := []struct {
		name       string
		guestCount int
		wantErr    bool
	}{
		{"below minimum", 99, true},
		{"at minimum", 100, false},
		{"at maximum", 200, false},
		{"above maximum", 201, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			venueRepo := &fakeVenueRepo{venue: activeVenue(venueID)}
			bookingRepo := newFakeBookingRepo()
			service := newBookingService(venueRepo, bookingRepo)

			req := weddingRequest(venueID.String())
			req.Event.GuestCount = tc.guestCount

			_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Guest count exceeds venue capacity", err.Error())
				assert.Empty(t, bookingRepo.created)
			} else {
				require.NoError(t, err)
				assert.Len(t, bookingRepo.created, 1)
			}
		})
	}
}

func TestCreateBookingUnavailableDateRejected(t *testing.T) {
	venueID := uuid.New()
	venueRepo := &fakeVenueRepo{venue: activeVenue(venueID)}
	service := newBookingService(venueRepo, newFakeBookingRepo())

	for _, date := range []string{"2026-10-16", "2026-12-25"} {
		req := weddingRequest(venueID.String())
		req.Event.EventDate = date

		_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

		require.Error(t, err)
		assert.Equal(t, "Venue not available on selected date", err.Error())
	}
}

func TestCreateBookingMissingEventDetailsRejected(t *testing.T) {
	venueRepo := &fakeVenueRepo{}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	req := &request.CreateBookingRequest{
		Services: []request.ServiceLineRequest{
			{ServiceID: uuid.New().String(), Type: "extras", Quantity: 1, UnitPrice: 100},
		},
	}

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, bookingRepo.created)
}

func TestCreateBookingClampsNegativeDiscount(t *testing.T) {
	venueRepo := &fakeVenueRepo{}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	req := &request.CreateBookingRequest{
		Services: []request.ServiceLineRequest{
			{ServiceID: uuid.New().String(), Type: "extras", Quantity: 1, UnitPrice: 1000},
		},
		Event: request.EventDetailsRequest{
			Occasion:   "anniversary",
			EventDate:  "2026-09-10",
			GuestCount: 10,
		},
		Pricing: request.PricingRequest{Discount: -500},
	}

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Pricing.Discount)
	assert.Equal(t, resp.Pricing.Subtotal+resp.Pricing.Taxes+resp.Pricing.ServiceCharges, resp.Pricing.Total)
}

func TestCreateBookingAppliesDiscount(t *testing.T) {
	venueRepo := &fakeVenueRepo{}
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(venueRepo, bookingRepo)

	req := &request.CreateBookingRequest{
		Services: []request.ServiceLineRequest{
			{ServiceID: uuid.New().String(), Type: "catering", Quantity: 10, UnitPrice: 1000},
		},
		Event: request.EventDetailsRequest{
			Occasion:   "wedding",
			EventDate:  "2026-09-10",
			GuestCount: 10,
		},
		Pricing: request.PricingRequest{Discount: 2000},
	}

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)

	require.NoError(t, err)
	assert.Equal(t, 10000.0, resp.Pricing.Subtotal)
	assert.Equal(t, 2000.0, resp.Pricing.Discount)
	assert.Equal(t, 10000.0+1800.0+500.0-2000.0, resp.Pricing.Total)
}

// ==================== PAYMENTS ====================

func createTestBooking(t *testing.T, service usecase.BookingService, userID string) string {
	t.Helper()

	req := &request.CreateBookingRequest{
		Services: []request.ServiceLineRequest{
			{ServiceID: uuid.New().String(), Type: "catering", Quantity: 10, UnitPrice: 1000},
		},
		Event: request.EventDetailsRequest{
			Occasion:   "wedding",
			EventDate:  "2026-09-10",
			GuestCount: 10,
		},
	}

	resp, err := service.CreateBooking(context.Background(), userID, req)
	require.NoError(t, err)
	return resp.BookingID
}

func TestRecordPaymentPartialThenFull(t *testing.T) {
	service := newBookingService(&fakeVenueRepo{}, newFakeBookingRepo())
	userID := uuid.New().String()
	bookingID := createTestBooking(t, service, userID)

	// total = 10000 + 1800 + 500 = 12300
	resp, err := service.RecordPayment(context.Background(), userID, &request.RecordPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Amount:    2300,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPartial, resp.Payment.Status)
	assert.Equal(t, 2300.0, resp.Payment.PaidAmount)
	assert.Equal(t, 10000.0, resp.Payment.DueAmount)
	assert.Equal(t, entity.BookingStatusPendingConfirmation, resp.Status)
	assert.Len(t, resp.Timeline, 1)

	resp, err = service.RecordPayment(context.Background(), userID, &request.RecordPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Amount:    10000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.Payment.Status)
	assert.Equal(t, 0.0, resp.Payment.DueAmount)

	// Full payment confirms the booking with one timeline entry
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	require.Len(t, resp.Timeline, 2)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Timeline[1].Status)
}

func TestRecordPaymentOverpayRejected(t *testing.T) {
	service := newBookingService(&fakeVenueRepo{}, newFakeBookingRepo())
	userID := uuid.New().String()
	bookingID := createTestBooking(t, service, userID)

	_, err := service.RecordPayment(context.Background(), userID, &request.RecordPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Amount:    99999,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds due amount")
}

func TestRecordPaymentWrongUserRejected(t *testing.T) {
	service := newBookingService(&fakeVenueRepo{}, newFakeBookingRepo())
	bookingID := createTestBooking(t, service, uuid.New().String())

	_, err := service.RecordPayment(context.Background(), uuid.New().String(), &request.RecordPaymentRequest{
		BookingID: bookingID,
		Method:    "card",
		Amount:    100,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

// ==================== STATUS TRANSITIONS ====================

func TestBookingLifecycleTransitions(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(&fakeVenueRepo{}, bookingRepo)
	bookingID := createTestBooking(t, service, uuid.New().String())

	require.NoError(t, service.ConfirmBooking(context.Background(), bookingID))
	require.NoError(t, service.StartBooking(context.Background(), bookingID))
	require.NoError(t, service.CompleteBooking(context.Background(), bookingID))

	booking := bookingRepo.byRef[bookingID]
	assert.Equal(t, entity.BookingStatusCompleted, booking.Status)

	// Creation plus three transitions: exactly four timeline entries
	require.Len(t, booking.Timeline, 4)
	wantOrder := []entity.BookingStatus{
		entity.BookingStatusPendingConfirmation,
		entity.BookingStatusConfirmed,
		entity.BookingStatusInProgress,
		entity.BookingStatusCompleted,
	}
	for i, want := range wantOrder {
		assert.Equal(t, want, booking.Timeline[i].Status)
	}
}

func TestIllegalTransitionsRejected(t *testing.T) {
	service := newBookingService(&fakeVenueRepo{}, newFakeBookingRepo())
	bookingID := createTestBooking(t, service, uuid.New().String())

	// pending_confirmation cannot jump to in_progress or completed
	err := service.StartBooking(context.Background(), bookingID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot")

	err = service.CompleteBooking(context.Background(), bookingID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot")
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(&fakeVenueRepo{}, bookingRepo)

	bookingID := createTestBooking(t, service, uuid.New().String())
	require.NoError(t, service.ConfirmBooking(context.Background(), bookingID))
	require.NoError(t, service.CancelBooking(context.Background(), bookingID))

	booking := bookingRepo.byRef[bookingID]
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)

	// Terminal: no further transitions
	err := service.ConfirmBooking(context.Background(), bookingID)
	require.Error(t, err)
	err = service.RefundBooking(context.Background(), bookingID)
	require.Error(t, err)
}

func TestRefundMarksPaymentRefunded(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(&fakeVenueRepo{}, bookingRepo)
	bookingID := createTestBooking(t, service, uuid.New().String())

	require.NoError(t, service.RefundBooking(context.Background(), bookingID))

	booking := bookingRepo.byRef[bookingID]
	assert.Equal(t, entity.BookingStatusRefunded, booking.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, booking.Payment.Status)
}

// ==================== READS ====================

func TestGetUserBookingOwnershipEnforced(t *testing.T) {
	service := newBookingService(&fakeVenueRepo{}, newFakeBookingRepo())
	owner := uuid.New().String()
	bookingID := createTestBooking(t, service, owner)

	resp, err := service.GetUserBooking(context.Background(), owner, bookingID)
	require.NoError(t, err)
	assert.Equal(t, bookingID, resp.BookingID)

	_, err = service.GetUserBooking(context.Background(), uuid.New().String(), bookingID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestGetUserBookingsPagination(t *testing.T) {
	service := newBookingService(&fakeVenueRepo{}, newFakeBookingRepo())
	userID := uuid.New().String()

	for i := 0; i < 3; i++ {
		createTestBooking(t, service, userID)
	}

	resp, err := service.GetUserBookings(context.Background(), userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, int64(3), resp.Pagination.Total)
}

func TestBookingIDAssignedOnce(t *testing.T) {
	bookingRepo := newFakeBookingRepo()
	service := newBookingService(&fakeVenueRepo{}, bookingRepo)
	bookingID := createTestBooking(t, service, uuid.New().String())

	before := bookingRepo.byRef[bookingID].BookingID
	require.NoError(t, service.ConfirmBooking(context.Background(), bookingID))
	after := bookingRepo.byRef[bookingID].BookingID

	assert.Equal(t, before, after)
	assert.WithinDuration(t, time.Now(), bookingRepo.byRef[bookingID].Timeline[0].At, time.Minute)
}
