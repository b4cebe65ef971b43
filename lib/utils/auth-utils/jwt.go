package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const ClaimsLocal = "user"

type TokenUser struct {
	ID    string
	Name  string
	Email string
}

func GetToken(secret string, user TokenUser, issuedAt time.Time, ttl time.Duration) (tokenString string, expiresAt time.Time, err error) {
	expiresAt = issuedAt.Add(ttl)
	claims := jwt.MapClaims{
		"name":  user.Name,
		"email": user.Email,
		"sub":   user.ID,
		"exp":   expiresAt.Unix(),
		"iat":   issuedAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "error signing token")
	}
	return tokenString, expiresAt, nil
}

func ParseToken(secret, tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals(ClaimsLocal).(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func ClaimString(claims jwt.MapClaims, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}
