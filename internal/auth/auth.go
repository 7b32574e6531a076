// Package auth issues and verifies the admin bearer token.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/apperr"
)

const claimsKey = "authClaims"

// Claims is what the token carries: just the admin username.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Gate checks the single configured admin identity and signs HS256 tokens
// for it. There is no refresh and no revocation; expiry is the only bound.
type Gate struct {
	secret       []byte
	username     string
	password     string
	passwordHash string // bcrypt; preferred over the plaintext when set
	TTL          time.Duration
}

func NewGate(secret, username, password, passwordHash string) *Gate {
	return &Gate{
		secret:       []byte(secret),
		username:     username,
		password:     password,
		passwordHash: passwordHash,
		TTL:          24 * time.Hour,
	}
}

// Login compares the supplied credentials against the configured admin
// identity and returns a signed token on match.
func (g *Gate) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1

	var passOK bool
	if g.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	}

	if !userOK || !passOK {
		return "", apperr.Unauthorized("Invalid credentials")
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (g *Gate) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.Forbidden("Invalid token")
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Forbidden("Invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperr.Forbidden("Invalid token")
	}
	return claims, nil
}

// Middleware guards mutation routes: 401 when the header is missing,
// 403 when a token is present but fails verification.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		claims, err := g.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by Middleware, if any.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
