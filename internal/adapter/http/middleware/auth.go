package middleware

import (
	"net/http"
	"os"
	"strings"

	"toyauction/internal/usecase/interfaces"
	"toyauction/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth validates the Bearer token (HS256, issued by the account
// service) and loads user identity into the request context. When a session
// store is provided, the token's jti must still map to a live session, so a
// logout invalidates tokens before their natural expiry.
func RequireAuth(sessions interfaces.ISessionStore) gin.HandlerFunc {
	secret := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		var cl claims
		parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid || cl.Subject == "" {
			abortUnauthorized(c, "Invalid token")
			return
		}

		if sessions != nil && cl.ID != "" {
			live, err := sessions.Get(c.Request.Context(), "session:"+cl.ID)
			if err != nil || live == "" {
				abortUnauthorized(c, "Session expired")
				return
			}
		}

		c.Set(ContextUserID, cl.Subject)
		c.Set(ContextUserEmail, cl.Email)
		c.Set(ContextUserRole, cl.Role)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != "admin" {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Admin access required", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
