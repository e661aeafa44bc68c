package entity

// AvailabilitySlot marks a single date as bookable or not.
// Dates use the 2006-01-02 format.
type AvailabilitySlot struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
}

type Venue struct {
	Base
	Name         string             `db:"name"`
	Location     string             `db:"location"`
	BasePrice    float64            `db:"base_price"`
	CapacityMin  int                `db:"capacity_min"`
	CapacityMax  int                `db:"capacity_max"`
	IsActive     bool               `db:"is_active"`
	IsVerified   bool               `db:"is_verified"`
	Availability []AvailabilitySlot `db:"availability"`
}

// AvailableOn reports whether the venue can be booked on the given
// date. Dates missing from the availability list count as unavailable.
func (v *Venue) AvailableOn(date string) bool {
	for _, slot := range v.Availability {
		if slot.Date == date {
			return slot.IsAvailable
		}
	}
	return false
}
