package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/task-manager/internal/api/middleware"
)

// ctxUserID returns the caller identity stored by the Auth middleware. An
// empty value means the middleware did not run, which is treated as 401.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}
