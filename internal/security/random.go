package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errInvalidRange   = errors.New("max must be greater than min")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// RandomInt returns a uniformly distributed integer in [min, max].
func RandomInt(min int, max int) (int, error) {
	if max <= min {
		return 0, errInvalidRange
	}

	span := big.NewInt(int64(max - min + 1))
	offset, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}
	return min + int(offset.Int64()), nil
}
