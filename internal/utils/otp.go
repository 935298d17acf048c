package utils

import (
	"fmt"
	"time"
)

const (
	digits       = "0123456789"
	upperDigits  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	otpLength    = 6
	idRandLength = 8
)

// GenerateOTP returns a numeric one-time code of the default length.
func GenerateOTP() string {
	return randomFromAlphabet(digits, otpLength)
}

// GenerateRegistrationID returns a registration session id in the form
// REG-<timestamp>-<random>.
func GenerateRegistrationID() string {
	return generatePrefixedID("REG", idRandLength)
}

// GenerateTicketCode returns an event ticket code in the form
// TKT-<timestamp>-<random>.
func GenerateTicketCode() string {
	return generatePrefixedID("TKT", 10)
}

func generatePrefixedID(prefix string, randLen int) string {
	ts := time.Now().UTC().Format("20060102150405")
	return fmt.Sprintf("%s-%s-%s", prefix, ts, randomFromAlphabet(upperDigits, randLen))
}
