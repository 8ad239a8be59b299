package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Decision int

const (
	DecisionAllow Decision = iota
	DecisionLogin
	DecisionHome
)

// Guard decides route accessibility from the session alone. It runs
// synchronously at navigation time; there are no timers, so an expired token
// is only noticed on the next navigation.
type Guard struct {
	now func() time.Time
}

func NewGuard(now func() time.Time) *Guard {
	if now == nil {
		now = time.Now
	}
	return &Guard{now: now}
}

// Protected gates the authenticated subtree. An expired or undecodable access
// token forces a logout before redirecting.
func (guard *Guard) Protected(store *Store) Decision {
	session := store.Session()
	if !session.IsAuthenticated {
		return DecisionLogin
	}
	if guard.tokenExpired(session.AccessToken) {
		_ = store.Logout()
		return DecisionLogin
	}
	return DecisionAllow
}

// PublicOnly mirrors Protected for login/signup/recovery pages: an already
// authenticated session is sent back to the home route.
func (guard *Guard) PublicOnly(store *Store) Decision {
	if store.Session().IsAuthenticated {
		return DecisionHome
	}
	return DecisionAllow
}

// tokenExpired reads the exp claim without verifying the signature; the
// client holds no signing secret, and the server re-verifies every request.
func (guard *Guard) tokenExpired(rawToken string) bool {
	if rawToken == "" {
		return true
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(rawToken, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Time.Before(guard.now())
}
