package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("jwt secret is required")
)

// Payload is the set of claims carried by an access token.
type Payload struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Scope is the authenticated caller attached to a request context.
type Scope struct {
	Subject string
	Role    string
}

// Manager issues and verifies access tokens.
type Manager interface {
	CreateToken(subject, role string) (string, error)
	Verify(token string) (Payload, error)
}

type manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns an HS256 token Manager.
func New(secret string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// DefaultTTL is used when no positive ttl is configured.
const DefaultTTL = 24 * time.Hour

func (m *manager) CreateToken(subject, role string) (string, error) {
	now := m.now()
	claims := Payload{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (m *manager) Verify(token string) (Payload, error) {
	var payload Payload
	parsed, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}

type scopeKey struct{}

// SetScopeToContext stores sc on ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the Scope stored on ctx, if any.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok
}
