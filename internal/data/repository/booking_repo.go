package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"event-booking/internal/data/entity"
	"event-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_id, user_id, venue_id, venue_name, services,
		       event_details, contact_details, pricing, payment, status, timeline,
		       created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	services, eventDetails, contact, pricing, payment, timeline, err := encodeBookingDocs(booking)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", booking.BookingID, err)
	}

	_, err = r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingID,
		booking.UserID,
		booking.VenueID,
		booking.VenueName,
		services,
		eventDetails,
		contact,
		pricing,
		payment,
		booking.Status,
		timeline,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id).Scan)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID).Scan)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", bookingID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

// Update rewrites the mutable booking fields. booking_id is never
// part of the SET list; it is assigned once at creation.
func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET services = $2, event_details = $3, contact_details = $4, pricing = $5,
		    payment = $6, status = $7, timeline = $8, updated_at = $9
		WHERE id = $1
	`

	services, eventDetails, contact, pricing, payment, timeline, err := encodeBookingDocs(booking)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", booking.BookingID, err)
	}

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		services,
		eventDetails,
		contact,
		pricing,
		payment,
		booking.Status,
		timeline,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("update booking %s: %w", booking.BookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.BookingID)
	}

	return nil
}

// encodeBookingDocs marshals the JSONB columns of a booking row.
func encodeBookingDocs(booking *entity.Booking) (services, eventDetails, contact, pricing, payment, timeline []byte, err error) {
	if services, err = json.Marshal(booking.Services); err != nil {
		return
	}
	if eventDetails, err = json.Marshal(booking.Event); err != nil {
		return
	}
	if contact, err = json.Marshal(booking.Contact); err != nil {
		return
	}
	if pricing, err = json.Marshal(booking.Pricing); err != nil {
		return
	}
	if payment, err = json.Marshal(booking.Payment); err != nil {
		return
	}
	timeline, err = json.Marshal(booking.Timeline)
	return
}

func scanBooking(scan func(dest ...any) error) (*entity.Booking, error) {
	var booking entity.Booking
	var services, eventDetails, contact, pricing, payment, timeline []byte

	err := scan(
		&booking.ID,
		&booking.BookingID,
		&booking.UserID,
		&booking.VenueID,
		&booking.VenueName,
		&services,
		&eventDetails,
		&contact,
		&pricing,
		&payment,
		&booking.Status,
		&timeline,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, doc := range []struct {
		raw []byte
		dst any
	}{
		{services, &booking.Services},
		{eventDetails, &booking.Event},
		{contact, &booking.Contact},
		{pricing, &booking.Pricing},
		{payment, &booking.Payment},
		{timeline, &booking.Timeline},
	} {
		if len(doc.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(doc.raw, doc.dst); err != nil {
			return nil, fmt.Errorf("decode booking document: %w", err)
		}
	}

	return &booking, nil
}
