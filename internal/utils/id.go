package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mathrand "math/rand/v2"
	"strconv"
	"time"
)

// NewID returns a best-effort unique identifier.
func NewID() string {
	const size = 12

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}

	// Fallback to timestamp if crypto/rand is unavailable.
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// PlaceholderName derives a default display name from a connection id.
func PlaceholderName(id string) string {
	short := id
	if len(short) > 4 {
		short = short[:4]
	}
	return "User-" + short
}

// RandomColor returns a pseudo-random display color token like "#a3f01c".
func RandomColor() string {
	return fmt.Sprintf("#%06x", mathrand.Uint32N(0x1000000))
}
