package services

import (
	"time"

	"github.com/granapp/grana/internal/security"
)

const (
	recoveryCodeMin = 100000
	recoveryCodeMax = 999999

	// RecoveryCodeTTL bounds how long an issued code validates. The short
	// window is the real protection; the code itself is a usability throttle.
	RecoveryCodeTTL = 5 * time.Minute
)

// RecoveryCodeGenerator produces one-time 6-digit codes with an expiry
// timestamp. Every call regenerates; callers overwrite any prior pair.
type RecoveryCodeGenerator struct {
	now func() time.Time
}

func NewRecoveryCodeGenerator(now func() time.Time) *RecoveryCodeGenerator {
	if now == nil {
		now = time.Now
	}
	return &RecoveryCodeGenerator{now: now}
}

func (generator *RecoveryCodeGenerator) Generate() (int, time.Time, error) {
	code, err := security.RandomInt(recoveryCodeMin, recoveryCodeMax)
	if err != nil {
		return 0, time.Time{}, err
	}
	return code, generator.now().Add(RecoveryCodeTTL), nil
}

// ValidRecoveryCodeFormat reports whether a submitted code even falls inside
// the issued range, letting handlers reject garbage before touching the store.
func ValidRecoveryCodeFormat(code int) bool {
	return code >= recoveryCodeMin && code <= recoveryCodeMax
}
