package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens expire exactly two hours after issuance.
const tokenTTL = 2 * time.Hour

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    tokenTTL,
		now:    time.Now,
	}
}

// Issue signs the caller-supplied payload as-is. No shape is enforced: the
// endpoint accepts any JSON object and embeds it. iat/exp are always set by
// the service and shadow same-named payload keys.
func (s *TokenService) Issue(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}

	now := s.now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the embedded payload. Malformed, badly signed and expired
// tokens are all reported the same way: callers only distinguish valid from
// not.
func (s *TokenService) Verify(tokenStr string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return map[string]any(claims), nil
}
