package mockapi

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "crescent-mockapi"

// tokenService mints and validates the mock backend's HS256 bearer tokens.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

func newTokenService(secret string, expiry time.Duration) *tokenService {
	return &tokenService{secret: []byte(secret), expiry: expiry}
}

// generate signs a token for the given user and wallet address.
func (s *tokenService) generate(userID, walletAddress string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":            userID,
		"wallet_address": walletAddress,
		"iat":            now.Unix(),
		"exp":            now.Add(s.expiry).Unix(),
		"iss":            tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// validate parses a token and returns the user id and wallet address.
func (s *tokenService) validate(tokenString string) (userID, walletAddress string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", "", fmt.Errorf("missing subject claim")
	}
	addr, _ := claims["wallet_address"].(string)
	return sub, addr, nil
}
