package jwt

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const BearerPrefix = "Bearer "

var (
	ErrMissingSecret   = errors.New("jwt secret is required")
	ErrMalformedHeader = errs.New("authorization header must use the Bearer scheme")
)

var signingMethod = jwt.SigningMethodHS512

type Config struct {
	Secret string
	TTL    time.Duration
}

// Claims: sub carries the email, id the principal id.
type Claims struct {
	PrincipalRef string `json:"id"`
	RoleName     string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) PrincipalID() int64 {
	id, _ := strconv.ParseInt(c.PrincipalRef, 10, 64)
	return id
}

func (c *Claims) Role() principal.Role {
	return principal.Role(c.RoleName)
}

func (c *Claims) Email() string {
	return c.Subject
}

// Verification is the fail-closed result of Verify. Claims is nil unless Valid.
type Verification struct {
	Valid  bool
	Claims *Claims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	clock     clock.Clock
}

func NewService(cfg Config, clk clock.Clock) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		secretKey: []byte(cfg.Secret),
		ttl:       ttl,
		clock:     clk,
	}, nil
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Issue(principalID int64, email string, role principal.Role) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		PrincipalRef: strconv.FormatInt(principalID, 10),
		RoleName:     role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	return token.SignedString(s.secretKey)
}

// Verify never returns an error; every failure is reported as an invalid result.
func (s *Service) Verify(tokenString string) Verification {
	if tokenString == "" {
		return Verification{}
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid {
		return Verification{}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !wellFormed(claims) {
		return Verification{}
	}

	return Verification{Valid: true, Claims: claims}
}

func wellFormed(c *Claims) bool {
	return c.Subject != "" && c.PrincipalID() > 0 && c.Role().IsValid()
}

// StripPrefix turns an Authorization header value into a bare token.
func StripPrefix(header string) (string, error) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", errs.Mark(ErrMalformedHeader, errs.ErrAuthentication)
	}
	token := strings.TrimSpace(header[len(BearerPrefix):])
	if token == "" {
		return "", errs.Mark(ErrMalformedHeader, errs.ErrAuthentication)
	}
	return token, nil
}
