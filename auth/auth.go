// Package auth resolves session tokens into caller identities. Session
// issuance and role checks live in the identity service; this handler only
// verifies the token signature and hands the subject to the invoicing
// endpoints.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt"

	"encore.dev/beta/auth"
	"encore.dev/beta/errs"
)

var secrets struct {
	// SessionSigningKey is the HMAC key session tokens are signed with.
	SessionSigningKey string
}

//encore:authhandler
func AuthHandler(ctx context.Context, token string) (auth.UID, error) {
	claims := jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secrets.SessionSigningKey), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", &errs.Error{Code: errs.Unauthenticated, Message: "invalid session token"}
	}

	return auth.UID(claims.Subject), nil
}
