// Package draft holds the client-side package builder state: the
// venue selection plus the add-on services a customer has toggled on,
// continuously priced. The state is a plain serializable value and
// every mutation goes through Apply, so each transition is testable
// without a UI harness. Nothing here talks to storage or HTTP; the
// server revalidates everything on submission.
package draft

import (
	"event-booking/internal/data/entity"
	"event-booking/internal/dto/request"
)

// VenueSelection is the venue pseudo-category of the draft. It carries
// the event details alongside the base price; it never holds service
// lines.
type VenueSelection struct {
	VenueID         string  `json:"venue_id,omitempty"`
	VenueName       string  `json:"venue_name,omitempty"`
	BasePrice       float64 `json:"base_price"`
	Occasion        string  `json:"occasion"`
	EventDate       string  `json:"event_date"`
	StartTime       string  `json:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty"`
	GuestCount      int     `json:"guest_count"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

// Service identifies a catalog item being toggled on. Prices come from
// the browsed catalog; the server recomputes them on submission.
type Service struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	UnitPrice      float64           `json:"unit_price"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// FromCatalogItem adapts a catalog row to a draft service.
func FromCatalogItem(item *entity.ServiceItem) Service {
	return Service{
		ID:             item.ID.String(),
		Name:           item.Name,
		UnitPrice:      item.UnitPrice,
		Customizations: item.Customizations,
	}
}

// Line is one selected service with its chosen quantity.
type Line struct {
	ServiceID      string            `json:"service_id"`
	ServiceName    string            `json:"service_name"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unit_price"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// CategoryState holds the ordered lines of one add-on category and
// their running total. Total always equals the sum of
// unit price x quantity over Lines.
type CategoryState struct {
	Selected bool    `json:"selected"`
	Lines    []Line  `json:"lines"`
	Total    float64 `json:"total"`
}

// Draft is the in-progress booking. It has no identity of its own;
// submission turns it into an authoritative Booking and the draft is
// discarded.
type Draft struct {
	Venue      VenueSelection                           `json:"venue"`
	Categories map[entity.ServiceCategory]CategoryState `json:"categories"`
	Total      float64                                  `json:"total"`
}

// New returns an empty draft for the given venue selection with every
// add-on category initialized.
func New(venue VenueSelection) Draft {
	categories := make(map[entity.ServiceCategory]CategoryState, len(entity.ServiceCategories()))
	for _, cat := range entity.ServiceCategories() {
		categories[cat] = CategoryState{}
	}

	return Draft{
		Venue:      venue,
		Categories: categories,
		Total:      venue.BasePrice,
	}
}

// Action is a draft state transition. The set is closed: ToggleService
// and SetQuantity.
type Action interface {
	isAction()
}

// ToggleService adds or removes a service from a category. Adding an
// already-selected service is a no-op, as is removing an absent one.
type ToggleService struct {
	Category entity.ServiceCategory
	Service  Service
	Included bool
}

func (ToggleService) isAction() {}

// SetQuantity changes the quantity of an already-selected service.
// Quantities below 1 and unknown category/service ids are ignored.
type SetQuantity struct {
	Category  entity.ServiceCategory
	ServiceID string
	Quantity  int
}

func (SetQuantity) isAction() {}

// Apply is a pure update function: it returns a new draft and never
// mutates its input.
func Apply(d Draft, action Action) Draft {
	switch a := action.(type) {
	case ToggleService:
		return applyToggle(d, a)
	case SetQuantity:
		return applySetQuantity(d, a)
	default:
		return d
	}
}

func applyToggle(d Draft, a ToggleService) Draft {
	state, ok := d.Categories[a.Category]
	if !ok {
		return d
	}

	if a.Included {
		if indexOfLine(state.Lines, a.Service.ID) >= 0 {
			return d
		}
		lines := append(cloneLines(state.Lines), Line{
			ServiceID:      a.Service.ID,
			ServiceName:    a.Service.Name,
			Quantity:       1,
			UnitPrice:      a.Service.UnitPrice,
			Customizations: a.Service.Customizations,
		})
		return withCategory(d, a.Category, lines)
	}

	idx := indexOfLine(state.Lines, a.Service.ID)
	if idx < 0 {
		return d
	}
	lines := cloneLines(state.Lines)
	lines = append(lines[:idx], lines[idx+1:]...)
	return withCategory(d, a.Category, lines)
}

func applySetQuantity(d Draft, a SetQuantity) Draft {
	state, ok := d.Categories[a.Category]
	if !ok || a.Quantity < 1 {
		return d
	}

	idx := indexOfLine(state.Lines, a.ServiceID)
	if idx < 0 {
		return d
	}

	lines := cloneLines(state.Lines)
	lines[idx].Quantity = a.Quantity
	return withCategory(d, a.Category, lines)
}

// withCategory replaces one category's lines, fully recomputing its
// total (full recompute, not incremental, so repeated updates cannot
// drift) and refreshing the cached grand total.
func withCategory(d Draft, cat entity.ServiceCategory, lines []Line) Draft {
	categories := make(map[entity.ServiceCategory]CategoryState, len(d.Categories))
	for k, v := range d.Categories {
		categories[k] = v
	}

	categories[cat] = CategoryState{
		Selected: len(lines) > 0,
		Lines:    lines,
		Total:    sumLines(lines),
	}

	next := Draft{
		Venue:      d.Venue,
		Categories: categories,
	}
	next.Total = next.GrandTotal()
	return next
}

// GrandTotal sums the venue base price and every category total. Pure
// function of the current state.
func (d Draft) GrandTotal() float64 {
	total := d.Venue.BasePrice
	for _, cat := range entity.ServiceCategories() {
		total += sumLines(d.Categories[cat].Lines)
	}
	return total
}

// ToBookingRequest flattens the selected lines in category order into
// the submission payload. The client-side subtotal rides along for
// display continuity only; the server recomputes pricing from the
// lines.
func (d Draft) ToBookingRequest() request.CreateBookingRequest {
	var services []request.ServiceLineRequest

	// The venue travels as the first line so the server-side subtotal
	// over submitted lines matches the draft's grand total.
	if d.Venue.VenueID != "" || d.Venue.BasePrice > 0 {
		services = append(services, request.ServiceLineRequest{
			ServiceID:   d.Venue.VenueID,
			ServiceName: d.Venue.VenueName,
			Type:        string(entity.CategoryVenue),
			Quantity:    1,
			UnitPrice:   d.Venue.BasePrice,
		})
	}

	for _, cat := range entity.ServiceCategories() {
		for _, line := range d.Categories[cat].Lines {
			services = append(services, request.ServiceLineRequest{
				ServiceID:      line.ServiceID,
				ServiceName:    line.ServiceName,
				Type:           string(cat),
				Quantity:       line.Quantity,
				UnitPrice:      line.UnitPrice,
				Customizations: line.Customizations,
			})
		}
	}

	return request.CreateBookingRequest{
		VenueID:  d.Venue.VenueID,
		Services: services,
		Event: request.EventDetailsRequest{
			Occasion:        d.Venue.Occasion,
			EventDate:       d.Venue.EventDate,
			StartTime:       d.Venue.StartTime,
			EndTime:         d.Venue.EndTime,
			GuestCount:      d.Venue.GuestCount,
			SpecialRequests: d.Venue.SpecialRequests,
		},
		Pricing: request.PricingRequest{
			Subtotal: d.GrandTotal(),
			Discount: 0,
		},
	}
}

func indexOfLine(lines []Line, serviceID string) int {
	for i, line := range lines {
		if line.ServiceID == serviceID {
			return i
		}
	}
	return -1
}

func cloneLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

func sumLines(lines []Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
