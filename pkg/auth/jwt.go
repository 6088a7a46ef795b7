package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/venuebook/config"
)

// TokenTTL is the lifetime of a login token.
const TokenTTL = 24 * time.Hour

// Claims is the signed payload of a login token.
type Claims struct {
	UserID   string `json:"uid"`
	UserName string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// IssueToken signs an HS256 token for p.
func IssueToken(p Principal) (string, error) {
	if p.UserID == "" || (p.Role != RoleUser && p.Role != RoleAdmin) {
		return "", fmt.Errorf("auth: cannot issue token for %q as %q", p.UserID, p.Role)
	}
	now := time.Now()
	claims := Claims{
		UserID:   p.UserID,
		UserName: p.UserName,
		Role:     p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Verify checks token and that it was issued for role. Every failure is
// ErrLogin; the cause is wrapped for logs.
func Verify(token, role string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrLogin
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrLogin, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Principal{}, fmt.Errorf("%w: %v", ErrLogin, jwt.ErrTokenInvalidClaims)
	}
	if claims.Role != role {
		return Principal{}, fmt.Errorf("%w: token role %q, want %q", ErrLogin, claims.Role, role)
	}

	return Principal{UserID: claims.UserID, UserName: claims.UserName, Role: claims.Role}, nil
}

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword reports whether plain matches hash.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
