package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPExpiry is the window within which a reset code must be verified.
const OTPExpiry = 10 * time.Minute

// GenerateOTP returns a random 6-digit numeric code and its expiry time.
func GenerateOTP() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate otp: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	return code, time.Now().Add(OTPExpiry), nil
}
