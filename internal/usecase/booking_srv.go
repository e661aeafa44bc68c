package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/internal/data/repository"
	"event-booking/internal/dto/request"
	"event-booking/internal/dto/response"
	"event-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints (require auth)
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetUserBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error)
	RecordPayment(ctx context.Context, userID string, req *request.RecordPaymentRequest) (*response.BookingResponse, error)

	// Admin endpoints
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context, bookingID string) error
	StartBooking(ctx context.Context, bookingID string) error
	CompleteBooking(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, bookingID string) error
	RefundBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// CreateBooking turns an untrusted client draft into a persisted
// booking. Order matters: venue validation strictly precedes pricing,
// pricing precedes the write.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Checked before anything else so an empty cart never triggers a
	// venue lookup.
	if len(req.Services) == 0 {
		return nil, fmt.Errorf("At least one service is required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	// Venue validation
	var venueID *uuid.UUID
	var venueName string
	if req.VenueID != "" {
		id, err := uuid.Parse(req.VenueID)
		if err != nil {
			return nil, fmt.Errorf("invalid venue ID format %s: %w", req.VenueID, err)
		}

		venue, err := s.repo.Venue.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to fetch venue", zap.Error(err), zap.String("venue_id", req.VenueID))
			return nil, fmt.Errorf("check venue: %w", err)
		}

		if venue == nil || !venue.IsActive || !venue.IsVerified {
			return nil, fmt.Errorf("Venue not available")
		}

		if req.Event.GuestCount < venue.CapacityMin || req.Event.GuestCount > venue.CapacityMax {
			return nil, fmt.Errorf("Guest count exceeds venue capacity")
		}

		if !venue.AvailableOn(req.Event.EventDate) {
			return nil, fmt.Errorf("Venue not available on selected date")
		}

		venueID = &id
		venueName = venue.Name
	}

	// Pricing is always recomputed from the submitted lines; the
	// client-asserted subtotal is ignored.
	lines := make([]entity.ServiceLine, len(req.Services))
	var subtotal float64
	for i, line := range req.Services {
		lines[i] = entity.ServiceLine{
			Type:           entity.ServiceCategory(line.Type),
			ServiceID:      line.ServiceID,
			ServiceName:    line.ServiceName,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			Customizations: line.Customizations,
		}
		subtotal += float64(line.Quantity) * line.UnitPrice
	}

	discount := req.Pricing.Discount
	if discount < 0 {
		discount = 0
	}

	taxes := math.Round(subtotal * s.config.Pricing.TaxRate)
	serviceCharges := math.Round(subtotal * s.config.Pricing.ServiceChargeRate)
	total := subtotal + taxes + serviceCharges - discount

	pricing := entity.Pricing{
		Subtotal:       subtotal,
		Taxes:          taxes,
		ServiceCharges: serviceCharges,
		Discount:       discount,
		Total:          total,
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: utils.GenerateBookingID(),
		UserID:    userUUID,
		VenueID:   venueID,
		VenueName: venueName,
		Services:  lines,
		Event: entity.EventDetails{
			Occasion:        req.Event.Occasion,
			EventDate:       req.Event.EventDate,
			StartTime:       req.Event.StartTime,
			EndTime:         req.Event.EndTime,
			GuestCount:      req.Event.GuestCount,
			SpecialRequests: req.Event.SpecialRequests,
		},
		Contact: entity.ContactDetails{
			Name:  req.Contact.Name,
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		},
		Pricing: pricing,
		Payment: entity.Payment{
			Status:     entity.PaymentStatusPending,
			PaidAmount: 0,
			DueAmount:  total,
		},
	}
	booking.AppendTimeline(entity.BookingStatusPendingConfirmation, "Booking created", now)

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("booking_id", booking.BookingID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("user_id", userID),
		zap.Int("service_count", len(lines)),
		zap.Float64("subtotal", subtotal),
		zap.Float64("total", total),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetUserBooking(ctx context.Context, userID string, bookingID string) (*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to view this booking")
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// RecordPayment applies a customer payment against the booking's due
// amount. A fully-paid pending booking is confirmed in the same write.
func (s *bookingService) RecordPayment(ctx context.Context, userID string, req *request.RecordPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	booking, err := s.repo.Booking.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", req.BookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	if booking.UserID != userUUID {
		return nil, fmt.Errorf("unauthorized to pay for this booking")
	}

	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusRefunded {
		return nil, fmt.Errorf("booking status is %s, cannot record payment", booking.Status)
	}

	if req.Amount > booking.Payment.DueAmount {
		return nil, fmt.Errorf("payment amount %.2f exceeds due amount %.2f", req.Amount, booking.Payment.DueAmount)
	}

	now := time.Now()
	booking.Payment.PaidAmount += req.Amount
	booking.Payment.DueAmount -= req.Amount
	booking.Payment.Method = req.Method
	booking.Payment.TransactionID = req.TransactionID

	if booking.Payment.DueAmount <= 0 {
		booking.Payment.Status = entity.PaymentStatusPaid
	} else {
		booking.Payment.Status = entity.PaymentStatusPartial
	}

	// Full payment confirms a pending booking; this is the only status
	// write outside the admin transitions.
	if booking.Payment.Status == entity.PaymentStatusPaid && booking.Status == entity.BookingStatusPendingConfirmation {
		booking.AppendTimeline(entity.BookingStatusConfirmed, "Payment received in full", now)
	}

	booking.UpdatedAt = now

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to record payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("record payment for %s: %w", req.BookingID, err)
	}

	s.log.Info("Payment recorded",
		zap.String("booking_id", booking.BookingID),
		zap.Float64("amount", req.Amount),
		zap.Float64("due", booking.Payment.DueAmount),
		zap.String("payment_status", string(booking.Payment.Status)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) error {
	return s.transition(ctx, bookingID, entity.BookingStatusConfirmed, "Booking confirmed")
}

func (s *bookingService) StartBooking(ctx context.Context, bookingID string) error {
	return s.transition(ctx, bookingID, entity.BookingStatusInProgress, "Event in progress")
}

func (s *bookingService) CompleteBooking(ctx context.Context, bookingID string) error {
	return s.transition(ctx, bookingID, entity.BookingStatusCompleted, "Event completed")
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	return s.transition(ctx, bookingID, entity.BookingStatusCancelled, "Booking cancelled")
}

func (s *bookingService) RefundBooking(ctx context.Context, bookingID string) error {
	return s.transition(ctx, bookingID, entity.BookingStatusRefunded, "Booking refunded")
}

// allowedTransitions: the forward chain plus cancelled/refunded from
// any non-terminal state.
var allowedTransitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingStatusPendingConfirmation: {entity.BookingStatusConfirmed, entity.BookingStatusCancelled, entity.BookingStatusRefunded},
	entity.BookingStatusConfirmed:           {entity.BookingStatusInProgress, entity.BookingStatusCancelled, entity.BookingStatusRefunded},
	entity.BookingStatusInProgress:          {entity.BookingStatusCompleted, entity.BookingStatusCancelled, entity.BookingStatusRefunded},
}

func canTransition(from, to entity.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// transition moves a booking to the target status, appending exactly
// one timeline entry.
func (s *bookingService) transition(ctx context.Context, bookingID string, target entity.BookingStatus, note string) error {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if !canTransition(booking.Status, target) {
		return fmt.Errorf("booking status is %s, cannot move to %s", booking.Status, target)
	}

	now := time.Now()
	booking.AppendTimeline(target, note, now)
	booking.UpdatedAt = now

	if target == entity.BookingStatusRefunded {
		booking.Payment.Status = entity.PaymentStatusRefunded
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", string(target)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID, target, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(target)),
	)

	return nil
}
