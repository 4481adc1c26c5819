package handlers

import (
	"net/http"
	"strings"

	"freelanceflow/pkg"

	"github.com/gin-gonic/gin"
)

// Identity headers are set by the API gateway after token validation; this
// service trusts them as-is.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserName = "X-User-Name"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("MISSING_USER_IDENTITY", "Missing user identity", http.StatusUnauthorized)

// requireIdentity pulls the caller identity from the request headers. When the
// user id is absent it writes the 401 response and returns ok=false.
func requireIdentity(c *gin.Context) (userID, displayName string, ok bool) {
	userID = strings.TrimSpace(c.GetHeader(HeaderUserID))
	if userID == "" {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return "", "", false
	}
	return userID, strings.TrimSpace(c.GetHeader(HeaderUserName)), true
}
