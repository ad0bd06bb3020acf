package middleware

import (
	"net/http"
	"strings"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

func parseToken(tokenString, secret string) (domain.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, domain.ErrUnauthorized
	}

	session := domain.Session{Role: domain.RoleCustomer}
	if sub, ok := claims["sub"].(string); ok {
		session.UserID = sub
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		session.Role = domain.Role(role)
	}
	if !session.Authenticated() {
		return domain.Session{}, domain.ErrUnauthorized
	}

	return session, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's session in the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "authentication required",
			})
			return
		}

		session, err := parseToken(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired token",
			})
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// OptionalAuth stores a session when a valid token is present but lets
// anonymous requests through. Public catalog endpoints use it so admins and
// customers can see unfiltered data where allowed.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if session, err := parseToken(token, secret); err == nil {
				c.Set(sessionKey, session)
			}
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "admin access required",
			})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the caller's session, or the zero session for
// anonymous requests.
func SessionFrom(c *gin.Context) domain.Session {
	if value, exists := c.Get(sessionKey); exists {
		if session, ok := value.(domain.Session); ok {
			return session
		}
	}
	return domain.Session{}
}
