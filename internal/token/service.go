// Package token issues and verifies the signed bearer credentials used
// by the identity-scoped endpoints.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, mis-signed and expired tokens alike;
// the gate does not distinguish between them.
var ErrInvalidToken = errors.New("invalid token")

// Expiry is how long an issued token stays valid.
const Expiry = time.Hour

type Service interface {
	// Issue signs the given claims with a one-hour expiry. Claims are
	// taken as submitted; nothing checks that the caller owns the
	// identity it asserts.
	Issue(claims map[string]interface{}) (string, error)
	// Verify returns the decoded claims, or ErrInvalidToken.
	Verify(tokenString string) (jwt.MapClaims, error)
}

type HMACService struct {
	secret []byte

	now func() time.Time
}

func NewHMACService(secret string) *HMACService {
	return &HMACService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (s *HMACService) Issue(claims map[string]interface{}) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}

	now := s.now()
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(Expiry).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}

func (s *HMACService) Verify(tokenString string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
