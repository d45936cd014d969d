package httpapi

import (
	"net/http"

	"github.com/MarkoPoloResearchLab/engagement/internal/servicetoken"
	"github.com/gin-gonic/gin"
)

// serviceTokenMiddleware admits requests carrying a valid collaborator bearer token.
func serviceTokenMiddleware(signingKey string, issuer string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := servicetoken.FromAuthorization(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errorCodeUnauthorized, "missing bearer token"))
			return
		}
		claims, err := servicetoken.Parse(signingKey, issuer, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(errorCodeUnauthorized, "invalid service token"))
			return
		}
		ctx.Set(contextKeyServiceClaims, claims)
		ctx.Next()
	}
}

func callerService(ctx *gin.Context) string {
	claimsValue, ok := ctx.Get(contextKeyServiceClaims)
	if !ok {
		return ""
	}
	claims, _ := claimsValue.(*servicetoken.Claims)
	if claims == nil {
		return ""
	}
	return claims.Service
}
