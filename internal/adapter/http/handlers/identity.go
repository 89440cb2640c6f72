package handlers

import (
	"net/http"
	"os"
	"strings"

	"archmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingUser = pkg.NewDomainErrorSimple("MISSING_USER", "Missing user identity", http.StatusUnauthorized)

// callerIdentity resolves who the request is for. Session auth lives at the
// edge; the gateway forwards identity as headers. DEV_USER_ID/DEV_USER_EMAIL
// keep local setups usable without the gateway.
func callerIdentity(c *gin.Context) (userID, userEmail string) {
	userID = strings.TrimSpace(c.GetHeader("X-User-ID"))
	if userID == "" {
		userID = strings.TrimSpace(os.Getenv("DEV_USER_ID"))
	}
	userEmail = strings.TrimSpace(c.GetHeader("X-User-Email"))
	if userEmail == "" {
		userEmail = strings.TrimSpace(os.Getenv("DEV_USER_EMAIL"))
	}
	return userID, userEmail
}

// requireUser aborts with 401 when no identity reached the service.
func requireUser(c *gin.Context) (userID, userEmail string, ok bool) {
	userID, userEmail = callerIdentity(c)
	if userID == "" {
		c.JSON(errMissingUser.HTTPStatus, errMissingUser.ToHTTPError())
		return "", "", false
	}
	return userID, userEmail, true
}
