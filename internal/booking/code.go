package booking

import "crypto/rand"

const (
	codePrefix   = "BK"
	codeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewCode generates a human-readable booking code: "BK" followed by six
// random uppercase alphanumerics. Uniqueness is enforced by the bookings
// table; collisions are retried by the engine with a fresh code.
func NewCode() string {
	buf := make([]byte, codeLength)

	// rand.Read never returns an error since Go 1.24.
	rand.Read(buf)

	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}

	return codePrefix + string(buf)
}
