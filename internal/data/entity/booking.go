package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPendingConfirmation BookingStatus = "pending_confirmation"
	BookingStatusConfirmed           BookingStatus = "confirmed"
	BookingStatusInProgress          BookingStatus = "in_progress"
	BookingStatusCompleted           BookingStatus = "completed"
	BookingStatusCancelled           BookingStatus = "cancelled"
	BookingStatusRefunded            BookingStatus = "refunded"
)

// Terminal reports whether no further status transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled || s == BookingStatusRefunded
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ServiceLine is one flattened add-on line of a booking, snapshotted
// from the submitted draft. Immutable once the booking is paid.
type ServiceLine struct {
	Type           ServiceCategory   `json:"type"`
	ServiceID      string            `json:"service_id"`
	ServiceName    string            `json:"service_name"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unit_price"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

type EventDetails struct {
	Occasion        string `json:"occasion"`
	EventDate       string `json:"event_date"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	GuestCount      int    `json:"guest_count"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type ContactDetails struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Pricing is always derived server-side; client-sent totals are
// never persisted.
type Pricing struct {
	Subtotal       float64 `json:"subtotal"`
	Taxes          float64 `json:"taxes"`
	ServiceCharges float64 `json:"service_charges"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
}

type Payment struct {
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method,omitempty"`
	PaidAmount    float64       `json:"paid_amount"`
	DueAmount     float64       `json:"due_amount"`
	TransactionID *string       `json:"transaction_id,omitempty"`
}

// TimelineEntry records one status change. The timeline is
// append-only: exactly one entry per transition.
type TimelineEntry struct {
	Status BookingStatus `json:"status"`
	Note   string        `json:"note,omitempty"`
	At     time.Time     `json:"at"`
}

type Booking struct {
	Base
	// BookingID is the human-facing reference, assigned once at first
	// save and immutable thereafter. Unique index in the database.
	BookingID string          `db:"booking_id"`
	UserID    uuid.UUID       `db:"user_id"`
	VenueID   *uuid.UUID      `db:"venue_id"`
	VenueName string          `db:"venue_name"`
	Services  []ServiceLine   `db:"services"`
	Event     EventDetails    `db:"event_details"`
	Contact   ContactDetails  `db:"contact_details"`
	Pricing   Pricing         `db:"pricing"`
	Payment   Payment         `db:"payment"`
	Status    BookingStatus   `db:"status"`
	Timeline  []TimelineEntry `db:"timeline"`
}

// AppendTimeline records a status change on the booking. Every write
// of Status goes through here so the one-entry-per-transition
// invariant holds.
func (b *Booking) AppendTimeline(status BookingStatus, note string, at time.Time) {
	b.Status = status
	b.Timeline = append(b.Timeline, TimelineEntry{
		Status: status,
		Note:   note,
		At:     at,
	})
}
