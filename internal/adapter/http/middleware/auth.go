package middleware

import (
	"errors"
	"net/http"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/infrastructure/auth"
	"mass_oss/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const principalKey = "principal"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	errTokenExpired = pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Token expired", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have permission to perform this action", http.StatusForbidden)
)

// ITokenValidator turns a bearer token into a principal.

type ITokenValidator interface {
	ValidateToken(token string) (auth.Principal, error)
}

// Authenticate resolves the caller from the Authorization header. With a nil
// validator every request runs as auth.Operator.
func Authenticate(v ITokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v == nil {
			setPrincipal(c, auth.Operator)
			c.Next()
			return
		}

		p, err := v.ValidateToken(c.GetHeader("Authorization"))
		if err != nil {
			appErr := errUnauthorized
			if errors.Is(err, auth.ErrExpiredToken) {
				appErr = errTokenExpired
			}
			log.WithError(err).WithField("path", c.FullPath()).Warn("[http][auth] rejected token")
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		setPrincipal(c, p)
		c.Next()
	}
}

// setPrincipal stores p on the gin context and, as the mutation actor, on the
// request context the use cases receive.
func setPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(principalKey, p)
	ctx := entities.WithActor(c.Request.Context(), entities.Actor{ID: p.Subject, Role: p.Role})
	c.Request = c.Request.WithContext(ctx)
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// RequireOrgAccess rejects callers whose token belongs to another org than
// the :org_id path parameter.
func RequireOrgAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		orgID := c.Param("org_id")
		if !p.CanAccessOrg(orgID) {
			log.WithFields(log.Fields{"subject": p.Subject, "org_id": orgID}).Warn("[http][auth] cross-org access denied")
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func RequirePermission(perm entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !p.Can(perm) {
			log.WithFields(log.Fields{"subject": p.Subject, "role": p.Role, "permission": perm}).Warn("[http][auth] permission denied")
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}
