package utils // package utils provides helpers for identity token handling

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eduflow/eduflow-api/internal/model"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expiry, malformed token or an unexpected signing method. Callers treat
// all of them identically.
var ErrInvalidToken = errors.New("invalid token")

// NewIdentityToken builds and signs an HS256 JWT carrying the identity
// claims the request gate understands (username, labid, role) plus the
// standard exp/iat claims. Tokens are normally minted by the external auth
// provider; this helper exists for local development and tests.
func NewIdentityToken(secret string, claims model.Claims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": claims.Username,
		"labid":    claims.LabID,
		"role":     claims.Role,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
	})
	return t.SignedString([]byte(secret))
}

// ParseIdentity verifies raw against secret and decodes the identity
// claims. Claims absent from the payload default to the empty string. Any
// verification failure is reported as ErrInvalidToken.
func ParseIdentity(secret, raw string) (model.Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject any signing method other than HMAC; tokens signed with
		// an asymmetric key must not verify against the shared secret.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return model.Claims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return model.Claims{}, ErrInvalidToken
	}
	return model.Claims{
		Username: stringClaim(claims, "username"),
		LabID:    stringClaim(claims, "labid"),
		Role:     stringClaim(claims, "role"),
	}, nil
}

// stringClaim returns the named claim as a string, or "" when the claim is
// missing or not a string.
func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}
