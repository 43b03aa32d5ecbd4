package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cinelog/review-server-go/internal/model"
)

var (
	// ErrTokenExpired means the signature checked out but the token is past
	// its encoded expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers everything else: bad signature, malformed token,
	// wrong signing method.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims are the identity facts embedded in a session token.
type Claims struct {
	UserID int64      `json:"id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"tipoUsuario"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited session tokens. The
// signing secret is injected once at construction and never re-read from the
// environment. There is no revocation: a token stays valid until its encoded
// expiry regardless of later account changes.
type TokenService struct {
	secret    []byte
	loginTTL  time.Duration
	signupTTL time.Duration
}

func NewTokenService(secret string, loginTTL, signupTTL time.Duration) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		loginTTL:  loginTTL,
		signupTTL: signupTTL,
	}
}

// LoginTTL is the short validity window used when logging in.
func (s *TokenService) LoginTTL() time.Duration { return s.loginTTL }

// SignupTTL is the longer validity window issued at registration. The
// asymmetry with LoginTTL is part of the API contract, kept configurable.
func (s *TokenService) SignupTTL() time.Duration { return s.signupTTL }

func (s *TokenService) Issue(user *model.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature integrity and expiry, returning the embedded claims
// on success and a typed failure otherwise. An expired or forged token is an
// expected outcome, not an exceptional one.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
