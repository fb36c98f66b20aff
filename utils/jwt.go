package utils

import (
	"errors"
	"os"
	"time"

	"gobookhotel/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.AccessTokenSecret
	if secret == "" {
		secret = os.Getenv("ACCESS_TOKEN_SECRET")
	}
	if secret == "" {
		secret = "go-book-hotel"
	}
	return []byte(secret)
}

// GenerateToken signs the given payload as HS256 claims with the shared secret.
// The payload is carried wholesale; only iat/exp are added on top.
func GenerateToken(payload map[string]interface{}, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(duration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns its claims.
// Expired or tampered tokens yield an error.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
