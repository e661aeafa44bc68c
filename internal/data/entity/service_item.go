package entity

type ServiceCategory string

const (
	// CategoryVenue only appears as a booking line type; the venue is
	// a pseudo-category with no catalog items behind it.
	CategoryVenue         ServiceCategory = "venue"
	CategoryCatering      ServiceCategory = "catering"
	CategoryDecoration    ServiceCategory = "decoration"
	CategoryEntertainment ServiceCategory = "entertainment"
	CategoryPhotography   ServiceCategory = "photography"
	CategoryExtras        ServiceCategory = "extras"
)

// ServiceCategories lists every selectable add-on category.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryCatering,
		CategoryDecoration,
		CategoryEntertainment,
		CategoryPhotography,
		CategoryExtras,
	}
}

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryVenue, CategoryCatering, CategoryDecoration,
		CategoryEntertainment, CategoryPhotography, CategoryExtras:
		return true
	}
	return false
}

// ServiceItem is a read-only catalog row. The booking flow references
// items but never mutates them.
type ServiceItem struct {
	Base
	Name           string            `db:"name"`
	Category       ServiceCategory   `db:"category"`
	Description    *string           `db:"description"`
	UnitPrice      float64           `db:"unit_price"`
	Customizations map[string]string `db:"customizations"`
	IsActive       bool              `db:"is_active"`
}
