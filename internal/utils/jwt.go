package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-address-book/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

const bearerScheme = "bearer"

// TokenParams describes how session tokens are signed and verified.
type TokenParams struct {
	// Issuer is written into and required from the "iss" claim.
	Issuer string
	// Algorithm is one of HS256, HS384, HS512.
	Algorithm string
	// Duration is the validity window added to the issue time.
	Duration time.Duration
	// SignKey is the shared HMAC secret.
	SignKey string
}

func (p TokenParams) signingMethod() (*jwt.SigningMethodHMAC, error) {
	switch p.Algorithm {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", p.Algorithm)
	}
}

// GenerateJWTToken creates a signed HMAC JWT for username.
//
// The token includes the standard claims iss, sub (the username), iat and
// exp (issue time plus params.Duration).
func GenerateJWTToken(params TokenParams, username string, now time.Time) (models.Token, error) {
	if params.Issuer == "" || params.Duration <= 0 || params.SignKey == "" || username == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := params.signingMethod()
	if err != nil {
		return models.Token{}, err
	}

	claims := jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		Username:         username,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its subject.
//
// The signature must be valid under params.SignKey using exactly
// params.Algorithm, the issuer must equal params.Issuer, exp must be in the
// future and sub must be non-empty.
func ValidateAndParseJWTToken(tokenString string, params TokenParams) (models.Token, error) {
	method, err := params.signingMethod()
	if err != nil {
		return models.Token{}, err
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	},
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		Username:         claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
