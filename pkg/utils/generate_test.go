package utils_test

import (
	"regexp"
	"testing"

	"event-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
)

var bookingIDPattern = regexp.MustCompile(`^EVT-[0-9A-Z]{7,}$`)

func TestGenerateBookingIDFormat(t *testing.T) {
	id := utils.GenerateBookingID()

	assert.Regexp(t, bookingIDPattern, id)
}

func TestGenerateBookingIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := utils.GenerateBookingID()
		assert.False(t, seen[id], "duplicate booking id %s", id)
		seen[id] = true
	}
}
