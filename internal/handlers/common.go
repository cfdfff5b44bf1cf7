package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/softdesk-dev/softdesk/db"
	"github.com/softdesk-dev/softdesk/internal/authz"
	"github.com/softdesk-dev/softdesk/internal/resolver"
	"github.com/softdesk-dev/softdesk/internal/utils"
)

// resolveRequest runs the resolver for the current request and writes
// the error response itself when resolution fails. Handlers only
// proceed when the second return value is true.
func resolveRequest(ctx *gin.Context) (resolver.Context, bool) {
	actor, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return resolver.Context{}, false
	}

	rc, err := resolver.Resolve(db.DB, actor, resolver.ParamsFrom(ctx))

	if err != nil {
		if errors.Is(err, resolver.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		} else {
			log.Printf("Failed to resolve request resources: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return resolver.Context{}, false
	}

	return rc, true
}

// requireAllowed consults the policy and writes the 403 when it denies.
func requireAllowed(ctx *gin.Context, action authz.Action, rc resolver.Context) bool {
	if !authz.Allowed(action, rc) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author may perform this action"})
		return false
	}
	return true
}
