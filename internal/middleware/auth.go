package middleware

import (
	"errors"
	"net/http"
	"strings"

	"carimport/internal/model"
	"carimport/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by the auth middleware
const (
	ContextUserID       = "userID"
	ContextUserRole     = "userRole"
	ContextAccessPolicy = "accessPolicy"
)

var (
	errMissingToken = errors.New("authorization is missing")
	errTokenFormat  = errors.New("invalid authorization format, expected 'Bearer <token>'")
)

// extractToken reads the access_token cookie, falling back to the
// Authorization header.
func extractToken(c *gin.Context) (string, error) {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errTokenFormat
	}
	return parts[1], nil
}

func parseClaims(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// OptionalAuth never rejects a request. A valid token grants full access to
// restricted figures; a missing or invalid one leaves the caller anonymous.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		policy := model.AccessPolicy{}
		if tokenString, err := extractToken(c); err == nil {
			if claims, err := parseClaims(tokenString, secret); err == nil {
				policy.HasFullAccess = true
				c.Set(ContextUserID, claims["sub"])
				if role, ok := claims["role"].(string); ok {
					c.Set(ContextUserRole, role)
				}
			}
		}
		c.Set(ContextAccessPolicy, policy)
		c.Next()
	}
}

// RequireAuth rejects requests without a valid token.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return RequireRole(secret)
}

// RequireRole validates the JWT token and checks if the user's role exists in
// the allowedRoles list. No roles means any authenticated caller.
func RequireRole(secret []byte, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
			return
		}

		claims, err := parseClaims(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token: "+err.Error()))
			return
		}

		userRole, _ := claims["role"].(string)
		if len(allowedRoles) > 0 {
			if userRole == "" {
				c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Role not found in token"))
				return
			}

			roleAllowed := false
			for _, role := range allowedRoles {
				if userRole == role {
					roleAllowed = true
					break
				}
			}
			if !roleAllowed {
				c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
				return
			}
		}

		c.Set(ContextUserID, claims["sub"])
		c.Set(ContextUserRole, userRole)
		c.Set(ContextAccessPolicy, model.AccessPolicy{HasFullAccess: true})

		c.Next()
	}
}

// AccessPolicyFrom returns the policy set by the auth middleware, defaulting
// to anonymous.
func AccessPolicyFrom(c *gin.Context) model.AccessPolicy {
	if v, ok := c.Get(ContextAccessPolicy); ok {
		if policy, ok := v.(model.AccessPolicy); ok {
			return policy
		}
	}
	return model.AccessPolicy{}
}
