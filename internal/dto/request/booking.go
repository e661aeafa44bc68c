package request

// ServiceLineRequest is one flattened add-on line as submitted by the
// client. Unit prices arrive from the catalog the client browsed; the
// server recomputes every total from these lines and ignores any
// client-side arithmetic.
type ServiceLineRequest struct {
	ServiceID      string            `json:"service_id" validate:"required"`
	ServiceName    string            `json:"service_name,omitempty"`
	Type           string            `json:"type" validate:"required,oneof=venue catering decoration entertainment photography extras"`
	Quantity       int               `json:"quantity" validate:"required,min=1"`
	UnitPrice      float64           `json:"unit_price" validate:"gte=0"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

type EventDetailsRequest struct {
	Occasion        string `json:"occasion" validate:"required"`
	EventDate       string `json:"event_date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	GuestCount      int    `json:"guest_count" validate:"required,min=1"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type ContactDetailsRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// PricingRequest carries the only client pricing inputs the server
// accepts: the discount. A client-computed subtotal may be present for
// display continuity but is never trusted.
type PricingRequest struct {
	Subtotal float64 `json:"subtotal,omitempty"`
	Discount float64 `json:"discount,omitempty"`
}

type CreateBookingRequest struct {
	VenueID  string                `json:"venue_id,omitempty" validate:"omitempty,uuid4"`
	Services []ServiceLineRequest  `json:"services" validate:"required,min=1,dive"`
	Event    EventDetailsRequest   `json:"event_details" validate:"required"`
	Contact  ContactDetailsRequest `json:"contact_details,omitempty"`
	Pricing  PricingRequest        `json:"pricing,omitempty"`
}

type RecordPaymentRequest struct {
	BookingID     string  `json:"booking_id" validate:"required"`
	Method        string  `json:"method" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TransactionID *string `json:"transaction_id,omitempty"`
}
