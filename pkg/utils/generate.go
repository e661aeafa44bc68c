package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING ID ====================

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateBookingID creates a human-facing booking reference.
// Format: EVT-<base36 millis><6 random base36 chars>, upper-cased.
// Uniqueness is probabilistic; the bookings table carries a unique
// index on booking_id as the real guarantee.
func GenerateBookingID() string {
	timePart := strconv.FormatInt(time.Now().UnixMilli(), 36)

	b := make([]byte, 6)
	for i := range b {
		b[i] = base36Chars[rand.Intn(len(base36Chars))]
	}

	return "EVT-" + strings.ToUpper(timePart+string(b))
}
