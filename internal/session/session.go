// Package session extracts the operator identity from the bearer token issued
// by the backend at login. The token is parsed without signature verification:
// the client only needs the claims for local gating, the server re-validates
// the signature on every request.
package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Roles the backend encodes in the token's "role" claim.
const (
	RoleCashier = "cashier"
	RoleAdmin   = "admin"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session is the operator identity carried by the bearer token.
type Session struct {
	UserID int64
	Role   string
}

// CanSync reports whether this operator's session should drive background
// synchronization. Only cashier sessions record offline sales, so only they
// trigger automatic sync cycles.
func (s Session) CanSync() bool {
	return s.Role == RoleCashier
}

// FromToken parses the bearer token and extracts the user id ("sub" claim)
// and role ("role" claim). Returns ErrInvalidToken (wrapped) if the token
// cannot be parsed or the claims are malformed.
func FromToken(tokenString string) (Session, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return Session{}, ErrInvalidToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return Session{}, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}

	var s Session

	sub, err := claims.GetSubject()
	if err != nil {
		return Session{}, errors.Join(ErrInvalidToken, err)
	}
	if sub != "" {
		id, parseErr := strconv.ParseInt(sub, 10, 64)
		if parseErr != nil {
			return Session{}, errors.Join(ErrInvalidToken, parseErr)
		}
		s.UserID = id
	}

	if role, ok := claims["role"].(string); ok {
		s.Role = role
	}

	return s, nil
}
