package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

const defaultTTL = 24 * time.Hour

type claims struct {
	Name string            `json:"name"`
	Kind model.AccountKind `json:"kind"`
	jwt.RegisteredClaims
}

// JWTStrategy signs identity tokens with HS256.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken generates a signed token for the identity.
func (s *JWTStrategy) IssueToken(identity model.Identity) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name: identity.Name,
		Kind: identity.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return token.SignedString(s.secret)
}

// ParseToken validates token and returns the identity it carries.
func (s *JWTStrategy) ParseToken(token string) (model.Identity, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil {
		return model.Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil || !c.Kind.Valid() {
		return model.Identity{}, ErrInvalidToken
	}

	return model.Identity{UserID: userID, Name: c.Name, Kind: c.Kind}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}
