package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/tdstudios/storefront/storage/db"
)

// Context keys for auth data populated by the middleware.
const (
	DBUserKey          = "db_user"
	IsAuthenticatedKey = "is_authenticated"
)

// GetDBUser returns the synced database user for the current request.
func GetDBUser(c echo.Context) (*db.User, bool) {
	user, ok := c.Get(DBUserKey).(*db.User)
	return user, ok && user != nil
}

// IsAuthenticated reports whether the current request carries a verified
// session.
func IsAuthenticated(c echo.Context) bool {
	isAuth, _ := c.Get(IsAuthenticatedKey).(bool)
	return isAuth
}
