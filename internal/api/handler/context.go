package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

// ctxClaims rebuilds the verified claims injected by the Auth middleware.
// A missing username or role means the middleware never ran for this route;
// reject rather than proceed with an anonymous caller.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	if username == "" || role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(int64)
	return &domain.Claims{UserID: userID, Username: username, Role: role}, nil
}
