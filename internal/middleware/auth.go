package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates the bearer tokens protecting the
// serve-mode API. A nil *AuthService means authentication is disabled.
type AuthService struct {
	secret      []byte
	tokenExpiry time.Duration
}

// Claims carries the host the token was issued for.
type Claims struct {
	Host string `json:"host"`
	jwt.RegisteredClaims
}

// NewAuthService returns nil when secret is empty, which disables
// authentication entirely.
func NewAuthService(secret string) *AuthService {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil
	}
	return &AuthService{
		secret:      []byte(secret),
		tokenExpiry: 90 * 24 * time.Hour,
	}
}

// GenerateToken creates a signed HS256 token for the given host.
func (a *AuthService) GenerateToken(host string) (string, error) {
	now := time.Now()
	claims := Claims{
		Host: host,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "hwdoctor",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken verifies the signature and parses the claims.
func (a *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireAuth checks the Authorization header (or a token query
// parameter for websocket clients) on every request. A nil receiver
// passes everything through.
func (a *AuthService) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a == nil {
			c.Next()
			return
		}
		token := c.Query("token")
		if token == "" {
			header := c.GetHeader("Authorization")
			token = strings.TrimPrefix(header, "Bearer ")
			if token == header {
				token = ""
			}
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		claims, err := a.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("host", claims.Host)
		c.Next()
	}
}
