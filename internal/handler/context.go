package handler

import (
	"net/http"
	"strings"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/saraccmululo/auction-platform-app/internal/auth"
)

// userClaims is the authenticated caller's identity as carried in the JWT.
type userClaims struct {
	UserID   uuid.UUID
	Username string
}

// currentUser extracts the authenticated user from the token set by the JWT
// middleware.
func currentUser(c echo.Context) (*userClaims, error) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	mapClaims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	rawID, _ := mapClaims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	username, _ := mapClaims["username"].(string)
	return &userClaims{UserID: userID, Username: username}, nil
}

// optionalViewer returns the caller's user ID when a valid bearer token is
// present on a public route, nil otherwise.
func optionalViewer(c echo.Context, jwtService *auth.JWTService) *uuid.UUID {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}
	claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil
	}
	id := claims.UserID
	return &id
}

// parseIDParam parses a uuid path parameter, failing with 400 on garbage.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
