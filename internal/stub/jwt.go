package stub

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type jwtService struct {
	secret []byte
	ttl    time.Duration
}

type jwtClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

func newJWTService(secret string, ttl time.Duration) *jwtService {
	return &jwtService{secret: []byte(secret), ttl: ttl}
}

func (s *jwtService) GenerateToken(userID, role string) (string, error) {
	claims := jwtClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtService) ValidateToken(tokenStr string) (*jwtClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &jwtClaims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*jwtClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
