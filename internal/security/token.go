package security

import (
	"context"
	"errors"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Identity is what a verified bearer token says about the caller.
type Identity struct {
	UID   string
	Email string
	Admin bool
}

// TokenVerifier turns a bearer token into an Identity. The production
// implementation asks the identity provider; the local implementation
// checks an HS256 signature (dev and tests).
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// UserClaims defines the claims carried by locally-issued tokens
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Admin bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies local HS256 tokens. Sign-in flows live
// with the identity provider; this exists so the API and its tests can run
// without one.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

func (m *TokenManager) Generate(uid, email string, admin bool, ttl time.Duration) (string, error) {
	claims := UserClaims{
		Email: email,
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gearshed-local",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UID: claims.Subject, Email: claims.Email, Admin: claims.Admin}, nil
}

// FirebaseVerifier verifies identity-provider ID tokens. Admin status comes
// from the "admin" custom claim set on the account.
type FirebaseVerifier struct {
	client *firebaseauth.Client
}

func NewFirebaseVerifier(client *firebaseauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, tokenString)
	if err != nil {
		return nil, ErrInvalidToken
	}

	identity := &Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if admin, ok := token.Claims["admin"].(bool); ok {
		identity.Admin = admin
	}
	return identity, nil
}
